package oracle

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"neet-quiz/internal/config"
	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// New builds the oracle selected by cfg.Provider. The returned close function
// releases provider resources and is never nil.
func New(ctx context.Context, cfg config.LLMConfig) (domain.Oracle, func() error, error) {
	noop := func() error { return nil }
	l := logger.Get()

	switch cfg.Provider {
	case config.ProviderGemini:
		l.Info("Initializing Gemini oracle", zap.String("model", cfg.Model))
		g, err := NewGeminiOracle(ctx, cfg.APIKey, cfg.Model, float32(cfg.Temperature), cfg.Timeout)
		if err != nil {
			return nil, noop, err
		}
		return g, g.Close, nil

	case config.ProviderOllama:
		l.Info("Initializing Ollama oracle", zap.String("server_url", cfg.ServerURL), zap.String("model", cfg.Model))
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLangchainOracle(llm, cfg.Temperature, cfg.Timeout), noop, nil

	case config.ProviderOpenAI:
		l.Info("Initializing OpenAI oracle", zap.String("model", cfg.Model))
		llm, err := openai.New(openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model))
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewLangchainOracle(llm, cfg.Temperature, cfg.Timeout), noop, nil
	}
	return nil, noop, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
}

// withTimeout bounds a single oracle call. A zero timeout leaves ctx unchanged.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// stripThinkBlock removes a leading <think>...</think> section emitted by
// reasoning models.
func stripThinkBlock(s string) string {
	s = strings.TrimSpace(s)
	thinkStart := strings.Index(s, "<think>")
	if thinkStart == -1 {
		return s
	}
	thinkEnd := strings.Index(s, "</think>")
	if thinkEnd == -1 || thinkEnd < thinkStart {
		return s
	}
	return strings.TrimSpace(s[:thinkStart] + s[thinkEnd+len("</think>"):])
}
