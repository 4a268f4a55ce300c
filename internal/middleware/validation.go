package middleware

import (
	"neet-quiz/internal/config"
	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"
	"neet-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys holding validated request values.
const (
	LocalsGenerationRequest = "validated_generation_request"
	LocalsAnalyzeRequest    = "validated_analyze_request"
)

// ValidationMiddleware parses and validates request bodies before the handler runs.
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(quizCfg config.QuizConfig) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(quizCfg),
	}
}

// ValidateGenerateQuiz stores a domain.GenerationRequest in Locals.
func (vm *ValidationMiddleware) ValidateGenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
		}

		genReq, errs := vm.validator.ValidateGenerateQuizRequest(&req)
		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsGenerationRequest, genReq)
		return c.Next()
	}
}

// ValidateAnalyzeResults stores a *dto.AnalyzeResultsRequest in Locals.
func (vm *ValidationMiddleware) ValidateAnalyzeResults() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AnalyzeResultsRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
		}

		if errs := vm.validator.ValidateAnalyzeResultsRequest(&req); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsAnalyzeRequest, &req)
		return c.Next()
	}
}
