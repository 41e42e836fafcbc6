package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NormalizeQuestions decodes an AI question-generation response into a uniform
// question list. The service has been observed to answer with three shapes: a
// bare array, {"questions":[...]} and {"data":[...]}. Entries without question
// text are dropped; question and answer text is trimmed.
func NormalizeQuestions(raw json.RawMessage) ([]Question, error) {
	var direct []Question
	if err := json.Unmarshal(raw, &direct); err == nil {
		return filterQuestions(direct), nil
	}

	var wrapped struct {
		Questions []Question `json:"questions"`
		Data      []Question `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unsupported question response format: %w", err)
	}
	switch {
	case wrapped.Questions != nil:
		return filterQuestions(wrapped.Questions), nil
	case wrapped.Data != nil:
		return filterQuestions(wrapped.Data), nil
	}
	return nil, fmt.Errorf("unsupported question response format: %s", snippet(raw))
}

func filterQuestions(in []Question) []Question {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		q.Question = strings.TrimSpace(q.Question)
		q.Answer = strings.TrimSpace(q.Answer)
		if q.Question == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

// NormalizeSessions decodes a session list returned either as a bare array or
// as {"sessions":[...]}.
func NormalizeSessions(raw json.RawMessage) ([]Session, error) {
	var direct []Session
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Sessions []Session `json:"sessions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unsupported session list format: %w", err)
	}
	if wrapped.Sessions == nil {
		return nil, fmt.Errorf("unsupported session list format: %s", snippet(raw))
	}
	return wrapped.Sessions, nil
}

// SortPinnedFirst returns the questions with pinned ones first, preserving the
// original relative order within each group.
func SortPinnedFirst(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return out
}

// StripEmphasis removes markdown bold markers. Question text is stored with
// emphasis markers; they are stripped before display and speech playback.
func StripEmphasis(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

func snippet(raw json.RawMessage) string {
	const max = 120
	s := string(raw)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
