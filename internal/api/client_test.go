package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeTokens struct {
	token   string
	cleared int
}

func (f *fakeTokens) Token() string { return f.token }

func (f *fakeTokens) Clear() error {
	f.token = ""
	f.cleared++
	return nil
}

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"_id":"u1","name":"Dana","email":"dana@example.com"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &fakeTokens{token: "tok123"}, nil)
	user, err := client.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if user.Name != "Dana" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClientOmitsAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("expected no Authorization header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"_id":"u1","name":"Dana","email":"d@e.com","token":"fresh"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &fakeTokens{}, nil)
	if _, err := client.Login(context.Background(), Credentials{Email: "d@e.com", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
}

func TestClientEvictsTokenOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"token expired"}`)
	}))
	defer server.Close()

	tokens := &fakeTokens{token: "stale"}
	var redirected bool
	client := NewClient(server.URL, time.Second, tokens, func() { redirected = true })

	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if tokens.cleared != 1 || tokens.token != "" {
		t.Fatalf("token not evicted: %+v", tokens)
	}
	if !redirected {
		t.Fatalf("unauthorized hook not invoked")
	}
}

func TestClientNo401HandlingOnOtherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"boom"}`)
	}))
	defer server.Close()

	tokens := &fakeTokens{token: "tok"}
	client := NewClient(server.URL, time.Second, tokens, func() { t.Fatalf("hook must not fire") })

	_, err := client.Profile(context.Background())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected server message in error, got %v", err)
	}
	if tokens.cleared != 0 {
		t.Fatalf("token must not be evicted on 500")
	}
}

func TestLoginRejectsTokenlessResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"_id":"u1","name":"Dana","email":"d@e.com"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	if _, err := client.Login(context.Background(), Credentials{Email: "d@e.com", Password: "pw"}); err == nil {
		t.Fatalf("expected error for response without token")
	}
}

func TestGenerateQuestionsNormalizesDataShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathGenerateQuestions {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"question":"Q1","answer":"A1"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	qs, err := client.GenerateQuestions(context.Background(), GenerateQuestionsRequest{Role: "Backend"})
	if err != nil {
		t.Fatalf("GenerateQuestions failed: %v", err)
	}
	if len(qs) != 1 || qs[0].Question != "Q1" {
		t.Fatalf("unexpected questions: %+v", qs)
	}
}

func TestListSessionsBothShapes(t *testing.T) {
	for _, body := range []string{
		`[{"_id":"s1","role":"Backend"}]`,
		`{"sessions":[{"_id":"s1","role":"Backend"}]}`,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		}))

		client := NewClient(server.URL, time.Second, nil, nil)
		sessions, err := client.ListSessions(context.Background())
		server.Close()
		if err != nil {
			t.Fatalf("ListSessions failed for %s: %v", body, err)
		}
		if len(sessions) != 1 || sessions[0].ID != "s1" {
			t.Fatalf("unexpected sessions for %s: %+v", body, sessions)
		}
	}
}

func TestGenerateExplanation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"data":{"title":"Goroutines","explanation":"lightweight threads"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	exp, err := client.GenerateExplanation(context.Background(), "What is a goroutine?")
	if err != nil {
		t.Fatalf("GenerateExplanation failed: %v", err)
	}
	if exp.Title != "Goroutines" || exp.Content != "lightweight threads" {
		t.Fatalf("unexpected explanation: %+v", exp)
	}
}

func TestGenerateExplanationFallsBackToQuestionTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"data":{"content":"body text"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	exp, err := client.GenerateExplanation(context.Background(), "What is a channel?")
	if err != nil {
		t.Fatalf("GenerateExplanation failed: %v", err)
	}
	if exp.Title != "What is a channel?" || exp.Content != "body text" {
		t.Fatalf("unexpected explanation: %+v", exp)
	}
}

func TestAddQuestionsRejectsUnsuccessfulBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":false,"message":"quota exceeded"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	err := client.AddQuestions(context.Background(), "s1", nil)
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected quota error, got %v", err)
	}
}

func TestGenerateTestQuestionsAligned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathTestQuestions {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"questions":["Q1","Q2"],"idealAnswers":["I1","I2"]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	qs, ideals, err := client.GenerateTestQuestions(context.Background(), TestQuestionsRequest{Role: "Backend"})
	if err != nil {
		t.Fatalf("GenerateTestQuestions failed: %v", err)
	}
	if len(qs) != 2 || len(ideals) != 2 || ideals[1] != "I2" {
		t.Fatalf("unexpected lists: %v %v", qs, ideals)
	}
}

func TestUploadImageMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("no image field: %v", err)
		}
		defer file.Close()
		if header.Filename != "avatar.png" {
			t.Fatalf("unexpected filename: %s", header.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"imageUrl":"http://cdn/avatar.png"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	url, err := client.UploadImage(context.Background(), "avatar.png", strings.NewReader("pngdata"))
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if url != "http://cdn/avatar.png" {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestGetFeedback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathFeedback("mock1") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"question":"Q1","user_ans":"mine","correct_ans":"ideal","rating":7}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil, nil)
	entries, err := client.GetFeedback(context.Background(), "mock1")
	if err != nil {
		t.Fatalf("GetFeedback failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Rating != 7 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
