package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/binarysemantics/ichatrobo/internal/config"
	"github.com/binarysemantics/ichatrobo/internal/corpus"
	"github.com/binarysemantics/ichatrobo/internal/handler"
	"github.com/binarysemantics/ichatrobo/internal/reveal"
	"github.com/binarysemantics/ichatrobo/internal/service/answer"
	"github.com/binarysemantics/ichatrobo/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	siteCorpus := loadCorpus(cfg.Corpus)
	generator := newGenerator(ctx, cfg.AI, siteCorpus.Text())

	answerClient := answer.NewClient(generator, cfg.AI.AnswerTimeout)
	sessionService := session.NewService(answerClient)

	revealOpts := reveal.Options{
		CharEvery:    cfg.Reveal.CharEvery,
		SectionPause: cfg.Reveal.SectionPause,
	}

	router := handler.NewRouter(sessionService, revealOpts)
	startServer(ctx, cfg.Server, router)
}

// loadCorpus reads the scraped site content. A missing or broken corpus is
// not fatal: answers degrade to instruction-only grounding plus the fallback
// path.
func loadCorpus(cfg config.CorpusConfig) *corpus.Corpus {
	if cfg.Path == "" {
		log.Println("CORPUS_PATH not set, starting without grounding content")
		return corpus.Empty()
	}

	c, err := corpus.Load(cfg.Path, cfg.MaxChars)
	if err != nil {
		log.Printf("warning: failed to load corpus: %v", err)
		return corpus.Empty()
	}

	log.Printf("corpus loaded from %s (%d chars)", cfg.Path, c.Len())
	return c
}

// newGenerator builds the configured answer backend. Without credentials the
// engine still runs; every turn is served by the fallback selector.
func newGenerator(ctx context.Context, cfg config.AIConfig, corpusText string) answer.Generator {
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := answer.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, corpusText)
		if err != nil {
			log.Printf("warning: failed to initialize gemini backend: %v", err)
			return nil
		}
		log.Printf("gemini answer backend initialized (model=%s)", cfg.GeminiModel)
		return gen
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize ark chat model: %v", err)
			return nil
		}
		gen, err := answer.NewArkGenerator(ctx, chatModel, corpusText)
		if err != nil {
			log.Printf("warning: failed to initialize ark backend: %v", err)
			return nil
		}
		log.Printf("ark answer backend initialized (model=%s)", cfg.ArkModel)
		return gen
	default:
		log.Println("no AI credentials configured, serving canned fallback answers only")
		return nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("iChatrobo backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
