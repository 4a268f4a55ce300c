package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// contentGenerator is the subset of *genai.GenerativeModel used by GeminiOracle.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiOracle calls a Google Gemini model through the generative-ai-go SDK.
type GeminiOracle struct {
	client  *genai.Client
	model   contentGenerator
	name    string
	timeout time.Duration
}

// NewGeminiOracle creates a Gemini client authenticated with apiKey.
func NewGeminiOracle(ctx context.Context, apiKey, modelName string, temperature float32, timeout time.Duration) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)

	return &GeminiOracle{client: client, model: model, name: modelName, timeout: timeout}, nil
}

// GenerateContent implements domain.Oracle
func (g *GeminiOracle) GenerateContent(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Gemini request timed out", zap.Error(err), zap.Duration("timeout", g.timeout))
			return "", fmt.Errorf("Gemini request timed out: %w", err)
		}
		l.Error("Failed to get response from Gemini", zap.Error(err), zap.String("model", g.name))
		return "", fmt.Errorf("Gemini call failed: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		l.Warn("Gemini returned no text", zap.String("model", g.name))
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return stripThinkBlock(text), nil
}

// Close releases the underlying client.
func (g *GeminiOracle) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		// Only the first candidate carries the answer.
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}

var _ domain.Oracle = (*GeminiOracle)(nil)
