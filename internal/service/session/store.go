package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/howtolabs/howto-teacher/internal/model/lesson"
)

var ErrSessionNotFound = errors.New("session not found")

// Store is the session contract the request-handling layer depends on.
type Store interface {
	// GetOrCreate returns a snapshot of the session for id, creating it
	// first when id is empty or unknown. The flag reports creation.
	GetOrCreate(ctx context.Context, id string) (lesson.Session, bool)
	AppendTurn(ctx context.Context, id, question, answer string) error
	// Reset removes the session unconditionally; unknown ids are a no-op.
	Reset(ctx context.Context, id string)
}

// MemoryStore keeps all sessions in process memory. Mutations are
// serialized by the mutex, so concurrent requests against the same
// session id cannot lose or duplicate turns.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*lesson.Session
}

// NewMemoryStore bootstraps the in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*lesson.Session),
	}
}

// NewToken generates a fresh 32-character session token.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GetOrCreate looks up a session by id. An empty id always provisions a
// fresh session under a new token; a non-empty unknown id is adopted as
// the key, so clients that outlive a server restart keep their token.
func (s *MemoryStore) GetOrCreate(_ context.Context, id string) (lesson.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return snapshot(sess), false
		}
	}

	if id == "" {
		id = NewToken()
	}

	sess := &lesson.Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[id] = sess
	return snapshot(sess), true
}

// AppendTurn records a completed question/answer exchange.
func (s *MemoryStore) AppendTurn(_ context.Context, id, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.Turns = append(sess.Turns, lesson.Turn{
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Reset drops the session for id. Resetting an unknown id succeeds.
func (s *MemoryStore) Reset(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// snapshot copies the session so callers never alias store-owned state.
func snapshot(sess *lesson.Session) lesson.Session {
	copied := *sess
	copied.Turns = make([]lesson.Turn, len(sess.Turns))
	copy(copied.Turns, sess.Turns)
	return copied
}
