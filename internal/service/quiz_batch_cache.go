package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"neet-quiz/internal/cache"
	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"
	"neet-quiz/internal/util"

	"go.uber.org/zap"
)

// ErrQuizBatchNotFound is returned when a batch id is unknown or expired.
var ErrQuizBatchNotFound = errors.New("quiz batch not found in cache")

// Cache status values reported by Status.
const (
	CacheStatusOK       = "ok"
	CacheStatusDisabled = "disabled"
	CacheStatusError    = "error"
)

// QuizBatchCache stores generated question batches for a limited time so a
// client can submit answers by quiz id.
type QuizBatchCache interface {
	// Put stores the batch and returns its id. The no-op cache returns "".
	Put(ctx context.Context, questions []domain.QuizQuestion) (string, error)
	Get(ctx context.Context, quizID string) ([]domain.QuizQuestion, error)
	Status(ctx context.Context) string
}

type quizBatchCacheImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizBatchCache returns a cache-backed QuizBatchCache, or a no-op one when c is nil.
func NewQuizBatchCache(c domain.Cache, ttl time.Duration) QuizBatchCache {
	if c == nil {
		logger.Get().Info("Quiz batch cache disabled, quizId will not be issued")
		return &noopQuizBatchCache{}
	}
	return &quizBatchCacheImpl{cache: c, ttl: ttl}
}

func (s *quizBatchCacheImpl) generateKey(quizID string) string {
	return cache.GenerateCacheKey("quiz", "batch", quizID)
}

func (s *quizBatchCacheImpl) Put(ctx context.Context, questions []domain.QuizQuestion) (string, error) {
	if len(questions) == 0 {
		return "", domain.NewInvalidInputError("cannot cache an empty quiz batch")
	}

	quizID := util.NewULID()
	key := s.generateKey(quizID)
	data, err := json.Marshal(questions)
	if err != nil {
		return "", domain.NewInternalError("failed to marshal quiz batch for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache quiz batch", zap.Error(err), zap.String("key", key))
		return "", domain.NewInternalError(fmt.Sprintf("failed to set quiz batch for key %s", key), err)
	}
	logger.Get().Debug("Cached quiz batch",
		zap.String("key", key),
		zap.Int("questions", len(questions)),
		zap.Duration("ttl", s.ttl))
	return quizID, nil
}

func (s *quizBatchCacheImpl) Get(ctx context.Context, quizID string) ([]domain.QuizQuestion, error) {
	key := s.generateKey(quizID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quiz batch cache miss", zap.String("key", key))
			return nil, ErrQuizBatchNotFound
		}
		logger.Get().Error("Failed to get quiz batch from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz batch for key %s", key), err)
	}
	if data == "" {
		return nil, ErrQuizBatchNotFound
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		logger.Get().Error("Failed to unmarshal quiz batch", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal quiz batch for key %s", key), err)
	}
	return questions, nil
}

func (s *quizBatchCacheImpl) Status(ctx context.Context) string {
	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		return CacheStatusError
	}
	return CacheStatusOK
}

type noopQuizBatchCache struct{}

func (noopQuizBatchCache) Put(context.Context, []domain.QuizQuestion) (string, error) {
	return "", nil
}

func (noopQuizBatchCache) Get(_ context.Context, quizID string) ([]domain.QuizQuestion, error) {
	logger.Get().Debug("Quiz batch cache disabled, lookup skipped", zap.String("quizId", quizID))
	return nil, ErrQuizBatchNotFound
}

func (noopQuizBatchCache) Status(context.Context) string {
	return CacheStatusDisabled
}
