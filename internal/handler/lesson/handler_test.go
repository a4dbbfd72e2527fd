package lesson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	lessonService "github.com/howtolabs/howto-teacher/internal/service/lesson"
	"github.com/howtolabs/howto-teacher/internal/service/session"
)

type fakeSearcher struct {
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) []string {
	f.calls++
	return []string{"a snippet"}
}

type fakeChatter struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeChatter) Chat(_ context.Context, message string) (string, error) {
	f.prompts = append(f.prompts, message)
	return f.answer, f.err
}

type noopRecorder struct{}

func (noopRecorder) Record(_, _, _ string) error { return nil }

func setupRouter(chatter *fakeChatter) (*chi.Mux, *fakeSearcher) {
	searcher := &fakeSearcher{}
	svc := lessonService.NewService(session.NewMemoryStore(), searcher, chatter, noopRecorder{})
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, searcher
}

func postJSON(t *testing.T, r http.Handler, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestProcessNewSession(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{answer: "A lesson."})

	resp := postJSON(t, r, "/process", map[string]string{"text": "bake sourdough bread"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body)
	}

	var body struct {
		Result    string `json:"result"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Result == "" {
		t.Fatal("expected a non-empty result")
	}
	if len(body.SessionID) != 32 {
		t.Fatalf("expected 32-character session id, got %q", body.SessionID)
	}
}

func TestProcessEmptyQuestion(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{answer: "A lesson."})

	for _, text := range []string{"", "   ", "\n\t "} {
		resp := postJSON(t, r, "/process", map[string]string{"text": text})
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("text=%q: expected 400, got %d", text, resp.Code)
		}
	}
}

func TestProcessInvalidBody(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{answer: "A lesson."})

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProcessFollowUpCarriesHistory(t *testing.T) {
	chatter := &fakeChatter{answer: "A lesson."}
	r, searcher := setupRouter(chatter)

	resp := postJSON(t, r, "/process", map[string]string{"text": "bake sourdough bread"})
	var first struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	resp = postJSON(t, r, "/process", map[string]string{
		"text":       "why does my loaf not rise?",
		"session_id": first.SessionID,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var second struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if second.SessionID != first.SessionID {
		t.Fatalf("session id not echoed back: %s vs %s", second.SessionID, first.SessionID)
	}

	if searcher.calls != 1 {
		t.Fatalf("follow-up must not trigger search, got %d calls", searcher.calls)
	}
	followUp := chatter.prompts[1]
	if !strings.Contains(followUp, "Student: bake sourdough bread") {
		t.Fatalf("history missing from follow-up prompt:\n%s", followUp)
	}
}

func TestResetThenProcessBehavesLikeNewSession(t *testing.T) {
	chatter := &fakeChatter{answer: "A lesson."}
	r, searcher := setupRouter(chatter)

	resp := postJSON(t, r, "/process", map[string]string{"text": "bake sourdough bread"})
	var first struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	resp = postJSON(t, r, "/reset", map[string]string{"session_id": first.SessionID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from reset, got %d", resp.Code)
	}

	resp = postJSON(t, r, "/process", map[string]string{
		"text":       "bake rye bread",
		"session_id": first.SessionID,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	if searcher.calls != 2 {
		t.Fatalf("post-reset question must search again, got %d calls", searcher.calls)
	}
	if strings.Contains(chatter.prompts[1], "Student:") {
		t.Fatalf("post-reset prompt must carry no history:\n%s", chatter.prompts[1])
	}
}

func TestResetUnknownSession(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{answer: "A lesson."})

	resp := postJSON(t, r, "/reset", map[string]string{"session_id": "never-seen"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Reset bool `json:"reset"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Reset {
		t.Fatal("expected reset=true")
	}
}

func TestResetMissingSessionID(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{answer: "A lesson."})

	resp := postJSON(t, r, "/reset", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProcessChatFailure(t *testing.T) {
	r, _ := setupRouter(&fakeChatter{err: errors.New("provider exploded")})

	resp := postJSON(t, r, "/process", map[string]string{"text": "bake bread"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "provider exploded") {
		t.Fatalf("diagnostic missing from error body: %s", resp.Body)
	}
}
