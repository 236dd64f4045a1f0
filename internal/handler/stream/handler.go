// Package stream serves a full conversation turn over Server-Sent Events:
// the submit, the resolved structured answer, then the staged reveal played
// in real time. The reveal is local synthetic timing over a complete answer,
// not model token streaming.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
	"github.com/binarysemantics/ichatrobo/internal/reveal"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
	"github.com/binarysemantics/ichatrobo/pkg/utils"
)

// Handler plays conversation turns over SSE.
type Handler struct {
	sessions *session.Service
	clock    reveal.Clock
	opts     reveal.Options
}

// New creates the stream handler. Zero opts fields keep the production
// reveal timings.
func New(sessions *session.Service, opts reveal.Options) *Handler {
	return &Handler{
		sessions: sessions,
		clock:    reveal.WallClock,
		opts:     opts,
	}
}

// turnEvent is the SSE payload envelope.
type turnEvent struct {
	SessionID string         `json:"sessionId,omitempty"`
	Message   *convo.Message `json:"message,omitempty"`
	Reveal    *reveal.Event  `json:"reveal,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// HandleTurn submits the query and streams the resolved answer plus its
// reveal sequence. Tearing the connection down mid-reveal cancels every
// pending reveal timer through the request context.
func (h *Handler) HandleTurn(ctx context.Context, w http.ResponseWriter, sessionID, query string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	turn, err := h.sessions.Submit(ctx, sessionID, query)
	switch {
	case errors.Is(err, session.ErrEmptyQuery), errors.Is(err, session.ErrTurnInFlight):
		// Silent no-ops by contract; tell the shell why and end the stream.
		utils.SendSSEEvent(w, flusher, "rejected", turnEvent{SessionID: sessionID, Reason: err.Error()})
		return nil
	case err != nil:
		utils.SendSSEEvent(w, flusher, "error", turnEvent{SessionID: sessionID, Error: err.Error()})
		return err
	}

	utils.SendSSEEvent(w, flusher, "start", turnEvent{SessionID: sessionID, Message: &turn.User})

	select {
	case <-ctx.Done():
		// Client went away; the turn still resolves into the log.
		return nil
	case <-turn.Done():
	}

	bot := turn.Bot()
	utils.SendSSEEvent(w, flusher, "answer", turnEvent{SessionID: sessionID, Message: &bot})

	plan := reveal.Plan(bot.StructuredAnswer, h.opts)
	for event := range reveal.Play(ctx, h.clock, plan) {
		ev := event
		utils.SendSSEEvent(w, flusher, "reveal", turnEvent{SessionID: sessionID, Reveal: &ev})
	}
	if ctx.Err() != nil {
		return nil
	}

	utils.SendSSEEvent(w, flusher, "end", turnEvent{SessionID: sessionID})
	log.Printf("[stream] completed turn for session=%s message=%s", sessionID, bot.ID)
	return nil
}
