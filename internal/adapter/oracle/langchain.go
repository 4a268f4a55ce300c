package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangchainOracle adapts any langchaingo model (ollama, openai) to domain.Oracle.
type LangchainOracle struct {
	llm         llms.Model
	temperature float64
	timeout     time.Duration
}

func NewLangchainOracle(llm llms.Model, temperature float64, timeout time.Duration) *LangchainOracle {
	return &LangchainOracle{llm: llm, temperature: temperature, timeout: timeout}
}

// GenerateContent implements domain.Oracle
func (o *LangchainOracle) GenerateContent(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := withTimeout(ctx, o.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, o.llm, prompt, llms.WithTemperature(o.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err), zap.Duration("timeout", o.timeout))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return stripThinkBlock(response), nil
}

var _ domain.Oracle = (*LangchainOracle)(nil)
