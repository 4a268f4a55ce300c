package service

import (
	"context"
	"time"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchJob names one quiz to generate in a batch run.
type BatchJob struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
}

// BatchResult is the outcome of one BatchJob. Error is set instead of Quiz on failure.
type BatchResult struct {
	BatchJob
	Quiz  *dto.GenerateQuizResponse `json:"quiz,omitempty"`
	Error string                    `json:"error,omitempty"`
}

// BatchService generates quizzes for many chapters in one run.
type BatchService interface {
	GenerateQuizzes(ctx context.Context, jobs []BatchJob) ([]BatchResult, error)
}

type batchService struct {
	quizService QuizService
	template    domain.GenerationRequest
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a batch generator. template supplies limit, language
// and style for every job; at most concurrency oracle calls run at once.
func NewBatchService(quizService QuizService, template domain.GenerationRequest, concurrency int, logger *zap.Logger) BatchService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &batchService{
		quizService: quizService,
		template:    template,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GenerateQuizzes runs every job and returns results in job order. A failed
// job is recorded in its result and does not stop the others; only context
// cancellation aborts the run.
func (s *batchService) GenerateQuizzes(ctx context.Context, jobs []BatchJob) ([]BatchResult, error) {
	start := time.Now()
	s.logger.Info("Starting batch quiz generation", zap.Int("jobs", len(jobs)), zap.Int("concurrency", s.concurrency))

	results := make([]BatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req := s.template
			req.Subject = job.Subject
			req.Chapter = job.Chapter

			results[i].BatchJob = job
			quiz, err := s.quizService.GenerateQuiz(gctx, req)
			if err != nil {
				s.logger.Warn("Batch job failed",
					zap.String("subject", job.Subject),
					zap.String("chapter", job.Chapter),
					zap.Error(err))
				results[i].Error = err.Error()
				return nil
			}
			results[i].Quiz = quiz
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	s.logger.Info("Batch quiz generation finished",
		zap.Int("jobs", len(jobs)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)))
	return results, nil
}
