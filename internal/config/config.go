package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Provider names for the structured-answer backend.
const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
)

// Config aggregates all service configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Corpus CorpusConfig
	Reveal RevealConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	corpus, err := loadCorpusConfig()
	if err != nil {
		return nil, err
	}

	reveal, err := loadRevealConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Corpus: corpus, Reveal: reveal}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the generative backend for structured answers.
type AIConfig struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	ArkAPIKey    string
	ArkAccessKey string
	ArkSecretKey string
	ArkModel     string
	ArkBaseURL   string
	ArkRegion    string
	Temperature  *float64
	TopP         *float64
	MaxTokens    *int

	// AnswerTimeout bounds one remote structured-answer call; past it the
	// turn is served by the fallback selector.
	AnswerTimeout time.Duration
}

// CorpusConfig points at the pre-scraped site content.
type CorpusConfig struct {
	Path     string
	MaxChars int
}

// GeminiEnabled reports whether the Gemini provider can be constructed.
func (c AIConfig) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

// ArkEnabled reports whether the Ark provider can be constructed.
func (c AIConfig) ArkEnabled() bool {
	return c.ArkModel != "" && (c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != ""))
}

// NewChatModel builds the Ark chat model from configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.ArkEnabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.ArkBaseURL,
		Region:      c.ArkRegion,
		APIKey:      c.ArkAPIKey,
		AccessKey:   c.ArkAccessKey,
		SecretKey:   c.ArkSecretKey,
		Model:       c.ArkModel,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("AI_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("ANSWER_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	cfg := AIConfig{
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
		ArkAPIKey:     strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:  strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:  strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		ArkModel:      strings.TrimSpace(os.Getenv("ARK_MODEL")),
		ArkBaseURL:    getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:     getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:   temperature,
		TopP:          topP,
		MaxTokens:     maxTokens,
		AnswerTimeout: time.Duration(timeoutSeconds) * time.Second,
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
	switch provider {
	case "":
		// Pick whichever backend has credentials, preferring Gemini.
		if cfg.GeminiEnabled() {
			provider = ProviderGemini
		} else if cfg.ArkEnabled() {
			provider = ProviderArk
		}
	case ProviderGemini, ProviderArk:
	default:
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value: %q", provider)
	}
	cfg.Provider = provider

	return cfg, nil
}

// RevealConfig overrides the reveal cadence. Zero values keep the production
// timings.
type RevealConfig struct {
	CharEvery    time.Duration
	SectionPause time.Duration
}

func loadRevealConfig() (RevealConfig, error) {
	var cfg RevealConfig

	if override, err := parseOptionalIntEnv("REVEAL_CHAR_MS"); err != nil {
		return RevealConfig{}, err
	} else if override != nil && *override > 0 {
		cfg.CharEvery = time.Duration(*override) * time.Millisecond
	}

	if override, err := parseOptionalIntEnv("REVEAL_SECTION_PAUSE_MS"); err != nil {
		return RevealConfig{}, err
	} else if override != nil && *override > 0 {
		cfg.SectionPause = time.Duration(*override) * time.Millisecond
	}

	return cfg, nil
}

func loadCorpusConfig() (CorpusConfig, error) {
	maxChars := 400000
	if override, err := parseOptionalIntEnv("CORPUS_MAX_CHARS"); err != nil {
		return CorpusConfig{}, err
	} else if override != nil && *override > 0 {
		maxChars = *override
	}

	return CorpusConfig{
		Path:     strings.TrimSpace(os.Getenv("CORPUS_PATH")),
		MaxChars: maxChars,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
