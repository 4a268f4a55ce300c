package validation

import (
	"strings"

	"neet-quiz/internal/config"
	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"
	"neet-quiz/internal/util"
)

// Validator provides request validation functionality
type Validator struct {
	defaultLimit int
	maxLimit     int
}

// NewValidator creates a new validator instance
func NewValidator(quizCfg config.QuizConfig) *Validator {
	return &Validator{
		defaultLimit: quizCfg.DefaultLimit,
		maxLimit:     quizCfg.MaxLimit,
	}
}

// ValidateGenerateQuizRequest checks the request and converts it to a
// GenerationRequest. An absent limit takes the configured default.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) (domain.GenerationRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	chapter := strings.TrimSpace(req.Chapter)
	if chapter == "" {
		errors = append(errors, domain.NewMissingFieldError("chapter"))
	}

	limit := v.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
		switch {
		case limit == 0:
			errors = append(errors, domain.NewMissingFieldError("limit"))
		case limit < 0 || limit > v.maxLimit:
			errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, v.maxLimit))
		}
	}

	if len(errors) > 0 {
		return domain.GenerationRequest{}, errors
	}
	return domain.GenerationRequest{
		Subject:     subject,
		Chapter:     chapter,
		Limit:       limit,
		Language:    domain.ParseLanguage(req.Language),
		StylePrompt: strings.TrimSpace(req.StylePrompt),
	}, nil
}

// ValidateAnalyzeResultsRequest requires answers and either an inline quiz or a quiz id.
func (v *Validator) ValidateAnalyzeResultsRequest(req *dto.AnalyzeResultsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Quiz) == 0 {
		quizID := strings.TrimSpace(req.QuizID)
		switch {
		case quizID == "":
			errors = append(errors, domain.NewMissingFieldError("quiz"))
		case !util.IsULID(quizID):
			errors = append(errors, domain.NewInvalidFormatError("quizId", req.QuizID))
		}
	}
	if len(req.UserAnswers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("userAnswers"))
	}
	return errors
}
