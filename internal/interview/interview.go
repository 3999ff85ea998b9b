// Package interview walks a visitor through an ordered list of prompts,
// recording one answer per prompt.
package interview

import (
	"slices"
	"strings"
)

// CompletionMessage is shown once every prompt has an answer.
const CompletionMessage = "Interactive profile setup complete. Ready for collaboration!"

// Answer pairs a prompt with the reply given to it.
type Answer struct {
	Prompt string `json:"prompt"`
	Reply  string `json:"reply"`
}

// Session is the state of one walk through the prompts.
type Session struct {
	prompts []string
	replies []string
}

func New(prompts []string) *Session {
	return &Session{prompts: slices.Clone(prompts)}
}

// Current returns the prompt awaiting an answer.
func (s *Session) Current() (string, bool) {
	if s.Complete() {
		return "", false
	}
	return s.prompts[len(s.replies)], true
}

// Answer records text for the current prompt. Blank text and answers after
// completion are ignored; the return value reports whether text was taken.
func (s *Session) Answer(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || s.Complete() {
		return false
	}
	s.replies = append(s.replies, text)
	return true
}

// Complete reports whether every prompt has been answered.
func (s *Session) Complete() bool {
	return len(s.replies) >= len(s.prompts)
}

// Progress returns answered and total prompt counts.
func (s *Session) Progress() (answered, total int) {
	return len(s.replies), len(s.prompts)
}

// Transcript returns the answered prompts in order.
func (s *Session) Transcript() []Answer {
	out := make([]Answer, len(s.replies))
	for i, r := range s.replies {
		out[i] = Answer{Prompt: s.prompts[i], Reply: r}
	}
	return out
}

func (s *Session) Reset() { s.replies = nil }
