package convo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/binarysemantics/ichatrobo/internal/fallback"
	"github.com/binarysemantics/ichatrobo/internal/model/convo"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
)

type cannedAnswerer struct{}

func (cannedAnswerer) Fetch(_ context.Context, query string) *convo.StructuredResponse {
	return fallback.Select(query)
}

func setupRouter() (*chi.Mux, *session.Service) {
	sessions := session.NewService(cannedAnswerer{})
	handler := New(sessions)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, sessions
}

func awaitIdle(t *testing.T, sessions *session.Service, sessionID string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := sessions.Snapshot(context.Background(), sessionID)
		if err != nil {
			t.Fatalf("Snapshot err: %v", err)
		}
		if !snapshot.Pending {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("session stayed pending")
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var snapshot session.Snapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snapshot.Session.ID == "" {
		t.Fatal("session id missing")
	}
	if snapshot.Pending {
		t.Fatal("fresh session should not be pending")
	}
}

func TestCreateSessionWithInitialQuery(t *testing.T) {
	r, sessions := setupRouter()

	body := []byte(`{"initialQuery": "insurance claims"}`)
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var snapshot session.Snapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	awaitIdle(t, sessions, snapshot.Session.ID)

	messages, err := sessions.Transcript(context.Background(), snapshot.Session.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected the initial turn in the log, got %d messages", len(messages))
	}
}

func TestSubmitAcceptedAndResolved(t *testing.T) {
	r, sessions := setupRouter()

	sess, _, _ := sessions.CreateSession(context.Background(), "")

	body := []byte(`{"query": "How can fleet tracking help?"}`)
	req := httptest.NewRequest(http.MethodPost, "/session/"+sess.ID+"/messages", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	var result submitResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Accepted {
		t.Fatal("submit not accepted")
	}

	awaitIdle(t, sessions, sess.ID)

	messages, _ := sessions.Transcript(context.Background(), sess.ID)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
}

func TestSubmitEmptyQueryRejectedQuietly(t *testing.T) {
	r, sessions := setupRouter()

	sess, _, _ := sessions.CreateSession(context.Background(), "")

	req := httptest.NewRequest(http.MethodPost, "/session/"+sess.ID+"/messages", bytes.NewReader([]byte(`{"query": "   "}`)))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result submitResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Accepted {
		t.Fatal("empty query should not be accepted")
	}

	messages, _ := sessions.Transcript(context.Background(), sess.ID)
	if len(messages) != 0 {
		t.Fatal("empty submit changed the message log")
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/session/missing/messages", bytes.NewReader([]byte(`{"query": "hello"}`)))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSuggestions(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		Placeholder string   `json:"placeholder"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Suggestions) != 6 {
		t.Fatalf("expected 6 chips, got %d", len(payload.Suggestions))
	}
	if payload.Placeholder == "" {
		t.Fatal("placeholder missing")
	}
}

func TestShareLink(t *testing.T) {
	r, _ := setupRouter()

	body := []byte(`{"channel": "whatsapp", "url": "https://www.binarysemantics.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/share", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestShareUnknownChannel(t *testing.T) {
	r, _ := setupRouter()

	body := []byte(`{"channel": "fax", "url": "https://www.binarysemantics.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/share", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCloseSession(t *testing.T) {
	r, sessions := setupRouter()

	sess, _, _ := sessions.CreateSession(context.Background(), "")

	req := httptest.NewRequest(http.MethodDelete, "/session/"+sess.ID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	if _, err := sessions.Snapshot(context.Background(), sess.ID); err == nil {
		t.Fatal("session still reachable after close")
	}
}
