package handler

import (
	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"
	"neet-quiz/internal/middleware"
	"neet-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Prompts the AI for multiple-choice questions on a chapter and returns the parsed questions
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate_quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.LocalsGenerationRequest).(domain.GenerationRequest)
	if !ok {
		return domain.NewInternalError("generation request was not validated", nil)
	}

	resp, err := h.service.GenerateQuiz(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AnalyzeResults godoc
// @Summary Analyze quiz results
// @Description Scores the answers and asks the AI for feedback. The quiz is given inline or by quizId.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeResultsRequest true "Quiz and answers"
// @Success 200 {object} domain.AnalysisResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze_results [post]
func (h *QuizHandler) AnalyzeResults(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.LocalsAnalyzeRequest).(*dto.AnalyzeResultsRequest)
	if !ok {
		return domain.NewInternalError("analysis request was not validated", nil)
	}

	result, err := h.service.AnalyzeResults(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Health godoc
// @Summary Health check
// @Description Reports liveness and the state of the quiz cache
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Cache:  h.service.CacheStatus(c.UserContext()),
	})
}
