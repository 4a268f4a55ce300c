package dto

import "neet-quiz/internal/domain"

// GenerateQuizRequest is the body of POST /generate_quiz
// @Description Parameters for generating a quiz
type GenerateQuizRequest struct {
	Subject     string `json:"subject" example:"biology"`
	Chapter     string `json:"chapter" example:"Cell: The Unit of Life"`
	Limit       *int   `json:"limit,omitempty" example:"10"`
	Language    string `json:"language,omitempty" example:"english"`
	StylePrompt string `json:"style_prompt,omitempty" example:"assertion-reason format"`
}

// GenerateQuizResponse carries the parsed questions of one generation
// @Description Generated quiz questions
type GenerateQuizResponse struct {
	QuizID    string                `json:"quizId,omitempty"`
	Questions []domain.QuizQuestion `json:"questions"`
	// SkippedBlocks counts malformed blocks dropped by the parser.
	SkippedBlocks int `json:"skippedBlocks"`
	// UnmatchedAnswers counts questions whose correct answer matched no option.
	UnmatchedAnswers int `json:"unmatchedAnswers"`
}

// AnalyzeResultsRequest is the body of POST /analyze_results. Either Quiz or
// QuizID identifies the questions.
// @Description A finished quiz and the user's answers
type AnalyzeResultsRequest struct {
	Quiz        []domain.QuizQuestion `json:"quiz,omitempty"`
	QuizID      string                `json:"quizId,omitempty"`
	UserAnswers []domain.AnswerRecord `json:"userAnswers"`
	Language    string                `json:"language,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error       string                   `json:"error"`
	Code        string                   `json:"code,omitempty"`
	RawResponse string                   `json:"raw_response,omitempty"`
	Score       *int                     `json:"score,omitempty"`
	Errors      []domain.ValidationError `json:"errors,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
