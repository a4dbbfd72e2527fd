// Package lesson turns a how-to question into a generated lesson,
// grounding fresh questions on search snippets and follow-ups on the
// session's dialogue history.
package lesson

import (
	"context"
	"fmt"
	"log"

	"github.com/howtolabs/howto-teacher/internal/service/session"
)

// Searcher supplies grounding snippets for a fresh lesson. It never
// fails; an empty result just means an ungrounded lesson.
type Searcher interface {
	Search(ctx context.Context, query string) []string
}

// Chatter generates text from an assembled prompt.
type Chatter interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Recorder appends a processed exchange to the transcript log.
type Recorder interface {
	Record(sessionID, question, answer string) error
}

// Result is a generated lesson plus the session it belongs to.
type Result struct {
	Answer    string
	SessionID string
}

// Service orchestrates one question end to end.
type Service struct {
	store      session.Store
	search     Searcher
	chat       Chatter
	transcript Recorder
}

// NewService wires the orchestrator to its collaborators.
func NewService(store session.Store, search Searcher, chat Chatter, transcript Recorder) *Service {
	return &Service{
		store:      store,
		search:     search,
		chat:       chat,
		transcript: transcript,
	}
}

// Process answers question within the session identified by sessionID
// (empty means start a new session). A session with recorded turns gets
// a follow-up answer built on its history; anything else gets a fresh
// lesson grounded on search snippets.
func (s *Service) Process(ctx context.Context, sessionID, question string) (Result, error) {
	sess, _ := s.store.GetOrCreate(ctx, sessionID)

	var prompt string
	if len(sess.Turns) > 0 {
		prompt = buildFollowUpPrompt(sess.Turns, question)
	} else {
		snippets := s.search.Search(ctx, question)
		prompt = buildLessonPrompt(question, snippets)
	}

	raw, err := s.chat.Chat(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("chat completion failed: %w", err)
	}

	answer := cleanAnswer(raw)
	if answer == "" {
		answer = emptyAnswerPlaceholder
	}

	if err := s.store.AppendTurn(ctx, sess.ID, question, answer); err != nil {
		// The session was reset mid-flight; the answer still stands.
		log.Printf("[lesson] could not record turn for session=%s: %v", sess.ID, err)
	}

	if err := s.transcript.Record(sess.ID, question, answer); err != nil {
		log.Printf("[lesson] transcript write failed for session=%s: %v", sess.ID, err)
	}

	return Result{Answer: answer, SessionID: sess.ID}, nil
}

// Reset clears the session's history. Unknown ids are a no-op.
func (s *Service) Reset(ctx context.Context, sessionID string) {
	s.store.Reset(ctx, sessionID)
}
