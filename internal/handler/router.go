package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/binarysemantics/ichatrobo/internal/handler/convo"
	revealhandler "github.com/binarysemantics/ichatrobo/internal/handler/reveal"
	"github.com/binarysemantics/ichatrobo/internal/handler/stream"
	middlewarePkg "github.com/binarysemantics/ichatrobo/internal/middleware"
	"github.com/binarysemantics/ichatrobo/internal/reveal"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
	"github.com/binarysemantics/ichatrobo/pkg/utils"
)

// NewRouter wires HTTP routes to the conversation engine.
func NewRouter(sessions *session.Service, revealOpts reveal.Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	convoHandler := convo.New(sessions)
	streamHandler := stream.New(sessions, revealOpts)
	revealHandler := revealhandler.New(sessions, revealOpts)

	r.Route("/api", func(api chi.Router) {
		convoHandler.RegisterRoutes(api)
		revealHandler.RegisterRoutes(api)

		// Submit-and-reveal in one connection: the widget's happy path.
		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			query := r.URL.Query().Get("message")

			if query == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleTurn(r.Context(), w, sessionID, query); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
