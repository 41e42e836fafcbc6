package api

// REST endpoint paths consumed by the client.
const (
	PathLogin               = "/api/auth/login"
	PathRegister            = "/api/auth/register"
	PathProfile             = "/api/auth/profile"
	PathUploadImage         = "/api/auth/upload-image"
	PathGenerateQuestions   = "/api/ai/generate-questions"
	PathGenerateExplanation = "/api/ai/generate-explanation"
	PathCreateSession       = "/api/sessions/create"
	PathMySessions          = "/api/sessions/my-sessions"
	PathAddQuestions        = "/api/questions/add"
	PathTestQuestions       = "/api/interview/questions"
	PathTestAnswers         = "/api/interview/answers"
)

// PathSession builds the path for a single session.
func PathSession(id string) string {
	return "/api/sessions/" + id
}

// PathPinQuestion builds the pin-toggle path for a question.
func PathPinQuestion(id string) string {
	return "/api/questions/" + id + "/pin"
}

// PathQuestionNote builds the note-update path for a question.
func PathQuestionNote(id string) string {
	return "/api/questions/" + id + "/note"
}

// PathFeedback builds the feedback path for a mock interview session.
func PathFeedback(sessionID string) string {
	return PathTestAnswers + "/" + sessionID
}
