// Package domain defines the core models shared by the interview prep client.
package domain

import "time"

// Session is a named interview-preparation collection of questions tied to a
// role/experience/topic configuration. The JSON tags follow the REST API's
// wire format.
type Session struct {
	ID            string     `json:"_id"`
	Role          string     `json:"role"`
	Experience    string     `json:"experience"`
	TopicsToFocus string     `json:"topicToFocus"`
	Description   string     `json:"description"`
	Questions     []Question `json:"questions"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Question is a single Q&A pair belonging to exactly one session.
type Question struct {
	ID       string `json:"_id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Note     string `json:"note,omitempty"`
	IsPinned bool   `json:"isPinned,omitempty"`
}

// Explanation is an AI-generated concept explanation. It is ephemeral view
// state: it lives only while the drawer showing it is open.
type Explanation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// User is the authenticated user. Token is the bearer token used for all
// authenticated requests.
type User struct {
	ID              string `json:"_id,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Token           string `json:"token,omitempty"`
}

// FeedbackEntry is one scored answer from a completed mock interview.
type FeedbackEntry struct {
	Question    string  `json:"question"`
	UserAnswer  string  `json:"user_ans"`
	IdealAnswer string  `json:"correct_ans"`
	Rating      float64 `json:"rating"`
	Feedback    string  `json:"feedback,omitempty"`
}

// AverageRating returns the mean rating across entries, or 0 for none.
func AverageRating(entries []FeedbackEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Rating
	}
	return sum / float64(len(entries))
}
