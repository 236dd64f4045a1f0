// Package reveal replays the staged reveal of a stored bot message over a
// websocket, so a remounted widget can restart the animation from the
// message alone.
package reveal

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
	revealcore "github.com/binarysemantics/ichatrobo/internal/reveal"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
	"github.com/binarysemantics/ichatrobo/pkg/utils"
)

// Handler streams reveal events for a single stored message.
type Handler struct {
	sessions *session.Service
	clock    revealcore.Clock
	opts     revealcore.Options
	upgrader websocket.Upgrader
}

// New creates the reveal handler. Zero opts fields keep the production
// timings.
func New(sessions *session.Service, opts revealcore.Options) *Handler {
	return &Handler{
		sessions: sessions,
		clock:    revealcore.WallClock,
		opts:     opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes wires the reveal replay endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reveal/{sessionID}/{messageID}", h.handleReveal)
}

func (h *Handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	messageID := chi.URLParam(r, "messageID")

	msg, err := h.sessions.Message(r.Context(), sessionID, messageID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if msg.Role != convo.RoleBot || msg.StructuredAnswer == nil {
		utils.RespondError(w, http.StatusBadRequest, "message has no structured answer to reveal")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[reveal] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// The read pump only watches for the peer closing; a close cancels the
	// reveal so no timer outlives the connection.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	plan := revealcore.Plan(msg.StructuredAnswer, h.opts)
	for event := range revealcore.Play(ctx, h.clock, plan) {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("[reveal] write failed for session=%s message=%s: %v", sessionID, messageID, err)
			return
		}
	}

	if ctx.Err() == nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "reveal complete"))
	}
}
