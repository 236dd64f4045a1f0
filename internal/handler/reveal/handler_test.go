package reveal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/binarysemantics/ichatrobo/internal/fallback"
	"github.com/binarysemantics/ichatrobo/internal/model/convo"
	revealcore "github.com/binarysemantics/ichatrobo/internal/reveal"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
)

type cannedAnswerer struct{}

func (cannedAnswerer) Fetch(_ context.Context, query string) *convo.StructuredResponse {
	return fallback.Select(query)
}

type instantClock struct{}

func (instantClock) NewTimer(time.Duration) revealcore.Timer {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return instantTimer{ch}
}

type instantTimer struct {
	ch chan time.Time
}

func (t instantTimer) C() <-chan time.Time { return t.ch }
func (t instantTimer) Stop() bool          { return true }

func setupServer(t *testing.T) (*httptest.Server, *session.Service) {
	t.Helper()

	sessions := session.NewService(cannedAnswerer{})
	h := New(sessions, revealcore.Options{})
	h.clock = instantClock{}

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, sessions
}

// resolveTurn runs one turn to completion and returns the bot message.
func resolveTurn(t *testing.T, sessions *session.Service, query string) (string, convo.Message) {
	t.Helper()

	sess, _, err := sessions.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	turn, err := sessions.Submit(context.Background(), sess.ID, query)
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	select {
	case <-turn.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("turn did not resolve")
	}
	return sess.ID, turn.Bot()
}

func TestRevealReplaysStoredMessage(t *testing.T) {
	srv, sessions := setupServer(t)
	sessionID, bot := resolveTurn(t, sessions, "fleet tracking")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/reveal/" + sessionID + "/" + bot.ID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	defer conn.Close()

	var intro string
	sections := 0
	for {
		var event revealcore.Event
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				break
			}
			t.Fatalf("read err: %v", err)
		}
		switch event.Kind {
		case revealcore.KindChar:
			intro += event.Char
		case revealcore.KindSections:
			sections++
		}
	}

	if intro != bot.StructuredAnswer.Intro {
		t.Fatalf("replayed intro %q != stored intro %q", intro, bot.StructuredAnswer.Intro)
	}
	if sections != 1 {
		t.Fatalf("expected one sections event, got %d", sections)
	}
}

func TestRevealUnknownMessage(t *testing.T) {
	srv, sessions := setupServer(t)

	sess, _, _ := sessions.CreateSession(context.Background(), "")

	resp, err := http.Get(srv.URL + "/reveal/" + sess.ID + "/missing")
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRevealRejectsUserMessage(t *testing.T) {
	srv, sessions := setupServer(t)
	sessionID, _ := resolveTurn(t, sessions, "hello")

	messages, err := sessions.Transcript(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	userMsg := messages[0]
	if userMsg.Role != convo.RoleUser {
		t.Fatalf("expected user message first, got %s", userMsg.Role)
	}

	resp, err := http.Get(srv.URL + "/reveal/" + sessionID + "/" + userMsg.ID)
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
