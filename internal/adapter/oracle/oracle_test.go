package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"neet-quiz/internal/config"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// --- Mocks ---

type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, parts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func geminiResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, genai.Text(t))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

// --- Tests ---

func TestLangchainOracle_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("success strips think block", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.Anything).
			Return(textResponse("<think>planning</think>\n## Question 1: Q"), nil).Once()

		o := NewLangchainOracle(m, 0.2, time.Second)
		got, err := o.GenerateContent(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "## Question 1: Q", got)
		m.AssertExpectations(t)
	})

	t.Run("prompt is sent as a single human message", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.MatchedBy(func(msgs []llms.MessageContent) bool {
			if len(msgs) != 1 || msgs[0].Role != llms.ChatMessageTypeHuman || len(msgs[0].Parts) != 1 {
				return false
			}
			part, ok := msgs[0].Parts[0].(llms.TextContent)
			return ok && part.Text == "the prompt"
		})).Return(textResponse("ok"), nil).Once()

		_, err := NewLangchainOracle(m, 0, 0).GenerateContent(ctx, "the prompt")
		require.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("failure is propagated without retry", func(t *testing.T) {
		m := new(MockModel)
		cause := errors.New("quota exceeded")
		m.On("GenerateContent", mock.Anything, mock.Anything).Return(nil, cause).Once()

		_, err := NewLangchainOracle(m, 0, time.Second).GenerateContent(ctx, "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		m.AssertNumberOfCalls(t, "GenerateContent", 1)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

		_, err := NewLangchainOracle(m, 0, time.Millisecond).GenerateContent(ctx, "prompt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out")
	})
}

func TestGeminiOracle_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("joins text parts", func(t *testing.T) {
		g := new(MockGenerator)
		g.On("GenerateContent", mock.Anything, []genai.Part{genai.Text("prompt")}).
			Return(geminiResponse("## Question 1: ", "What?"), nil).Once()

		o := &GeminiOracle{model: g, name: "gemini-test", timeout: time.Second}
		got, err := o.GenerateContent(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "## Question 1: What?", got)
		g.AssertExpectations(t)
	})

	t.Run("empty response is an error", func(t *testing.T) {
		g := new(MockGenerator)
		g.On("GenerateContent", mock.Anything, mock.Anything).
			Return(&genai.GenerateContentResponse{}, nil).Once()

		o := &GeminiOracle{model: g, name: "gemini-test"}
		_, err := o.GenerateContent(ctx, "prompt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})

	t.Run("api error", func(t *testing.T) {
		g := new(MockGenerator)
		cause := errors.New("permission denied")
		g.On("GenerateContent", mock.Anything, mock.Anything).Return(nil, cause).Once()

		o := &GeminiOracle{model: g, name: "gemini-test"}
		_, err := o.GenerateContent(ctx, "prompt")

		assert.ErrorIs(t, err, cause)
		assert.NoError(t, o.Close())
	})
}

func TestNewGeminiOracle_Validation(t *testing.T) {
	_, err := NewGeminiOracle(context.Background(), "", "gemini-flash-latest", 0.7, time.Second)
	assert.Error(t, err)

	_, err = NewGeminiOracle(context.Background(), "key", "", 0.7, time.Second)
	assert.Error(t, err)
}

func TestNew_Providers(t *testing.T) {
	ctx := context.Background()

	o, closeFn, err := New(ctx, config.LLMConfig{Provider: config.ProviderOllama, ServerURL: "http://localhost:11434", Model: "qwen3:0.6b"})
	require.NoError(t, err)
	assert.IsType(t, &LangchainOracle{}, o)
	assert.NoError(t, closeFn())

	o, _, err = New(ctx, config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &LangchainOracle{}, o)

	_, closeFn, err = New(ctx, config.LLMConfig{Provider: "bard"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestStripThinkBlock(t *testing.T) {
	assert.Equal(t, "answer", stripThinkBlock("<think>hmm</think>answer"))
	assert.Equal(t, "before after", stripThinkBlock("before <think>x</think>after"))
	assert.Equal(t, "<think>unterminated", stripThinkBlock("<think>unterminated"))
	assert.Equal(t, "plain", stripThinkBlock("  plain \n"))
}
