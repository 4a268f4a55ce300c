package service

import (
	"context"
	"errors"
	"time"

	"neet-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockOracle ---
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockQuizBatchCache ---
type MockQuizBatchCache struct {
	mock.Mock
}

func (m *MockQuizBatchCache) Put(ctx context.Context, questions []domain.QuizQuestion) (string, error) {
	args := m.Called(ctx, questions)
	return args.String(0), args.Error(1)
}

func (m *MockQuizBatchCache) Get(ctx context.Context, quizID string) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

func (m *MockQuizBatchCache) Status(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

// ManualMockCache for the domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
