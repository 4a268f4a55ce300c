package service

import (
	"context"
	"errors"
	"strings"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"
	"neet-quiz/internal/logger"
	"neet-quiz/internal/quizgen"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, req domain.GenerationRequest) (*dto.GenerateQuizResponse, error)
	AnalyzeResults(ctx context.Context, req *dto.AnalyzeResultsRequest) (*domain.AnalysisResult, error)
	CacheStatus(ctx context.Context) string
}

type quizService struct {
	oracle  domain.Oracle
	parser  *quizgen.Parser
	batches QuizBatchCache
}

// NewQuizService creates a new instance of quizService. A nil batches uses the no-op cache.
func NewQuizService(oracle domain.Oracle, batches QuizBatchCache) QuizService {
	if batches == nil {
		batches = NewQuizBatchCache(nil, 0)
	}
	return &quizService{
		oracle:  oracle,
		parser:  quizgen.NewParser(quizgen.AllTagSets()...),
		batches: batches,
	}
}

// GenerateQuiz prompts the oracle, parses its answer and reconciles every
// correct answer against the options.
func (s *quizService) GenerateQuiz(ctx context.Context, req domain.GenerationRequest) (*dto.GenerateQuizResponse, error) {
	l := logger.Get()
	prompt := quizgen.BuildGenerationPrompt(req)

	raw, err := s.oracle.GenerateContent(ctx, prompt)
	if err != nil {
		l.Error("Quiz generation failed",
			zap.String("subject", req.Subject),
			zap.String("chapter", req.Chapter),
			zap.Error(err))
		return nil, domain.NewLLMServiceError("Failed to generate quiz from AI", err)
	}
	l.Debug("Raw quiz response", zap.String("response", raw))

	result := s.parser.Parse(raw)
	if len(result.Questions) == 0 {
		l.Warn("No parsable questions in oracle response",
			zap.Int("failed_blocks", len(result.Failures)),
			zap.Int("response_length", len(raw)))
		return nil, domain.NewNoParsableQuestionsError(raw)
	}

	questions, unmatched := quizgen.ReconcileAll(result.Questions)
	for _, id := range unmatched {
		l.Warn("Correct answer matches no option", zap.Int("question_id", id))
	}

	resp := &dto.GenerateQuizResponse{
		Questions:        questions,
		SkippedBlocks:    len(result.Failures),
		UnmatchedAnswers: len(unmatched),
	}

	// The batch cache is optional; a failure only costs the caller the quiz id.
	quizID, err := s.batches.Put(ctx, questions)
	if err != nil {
		l.Warn("Failed to cache quiz batch", zap.Error(err))
	} else {
		resp.QuizID = quizID
	}

	l.Info("Quiz generated",
		zap.String("subject", req.Subject),
		zap.String("chapter", req.Chapter),
		zap.String("language", string(req.Language)),
		zap.String("strategy", result.Strategy),
		zap.Int("requested", req.Limit),
		zap.Int("questions", len(questions)),
		zap.Int("skipped_blocks", resp.SkippedBlocks),
		zap.Int("unmatched_answers", resp.UnmatchedAnswers))
	return resp, nil
}

// AnalyzeResults scores the answers locally, then asks the oracle for feedback.
// The score is attached to an oracle failure.
func (s *quizService) AnalyzeResults(ctx context.Context, req *dto.AnalyzeResultsRequest) (*domain.AnalysisResult, error) {
	quiz := req.Quiz
	if len(quiz) == 0 {
		var err error
		quiz, err = s.batches.Get(ctx, req.QuizID)
		if err != nil {
			if errors.Is(err, ErrQuizBatchNotFound) {
				return nil, domain.NewQuizNotFoundError(req.QuizID)
			}
			return nil, err
		}
	}

	score, wrong := domain.ScoreQuiz(quiz, req.UserAnswers)

	prompt, err := quizgen.BuildAnalysisPrompt(score, len(quiz), wrong, domain.ParseLanguage(req.Language))
	if err != nil {
		return nil, domain.NewInternalError("Failed to build analysis prompt", err).WithContext(domain.ContextScore, score)
	}

	feedback, err := s.oracle.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Get().Error("Result analysis failed", zap.Int("score", score), zap.Error(err))
		return nil, domain.NewLLMServiceError("Failed to get AI analysis", err).WithContext(domain.ContextScore, score)
	}

	return &domain.AnalysisResult{
		OverallFeedback: strings.TrimSpace(feedback),
		Score:           score,
	}, nil
}

func (s *quizService) CacheStatus(ctx context.Context) string {
	return s.batches.Status(ctx)
}
