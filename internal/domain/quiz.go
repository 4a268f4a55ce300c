package domain

import "strings"

// Language selects the tag vocabulary and the output language of the oracle.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// ParseLanguage maps a request value to a supported language.
// Unknown or empty values fall back to English.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageHindi:
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// GenerationRequest holds the parameters of one quiz generation.
type GenerationRequest struct {
	Subject     string
	Chapter     string
	Limit       int
	Language    Language
	StylePrompt string
}

// QuizQuestion is one multiple-choice question parsed from an oracle response.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Solution      string   `json:"solution"`
}

// AnswerRecord is the option a user selected for one question.
type AnswerRecord struct {
	QuestionID     int    `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
}

// WrongAnswerDetail describes an incorrectly answered question. It is embedded
// verbatim in the analysis prompt.
type WrongAnswerDetail struct {
	Question         string `json:"question"`
	YourAnswer       string `json:"your_answer"`
	CorrectAnswer    string `json:"correct_answer"`
	ProvidedSolution string `json:"provided_solution"`
}

// AnalysisResult is the outcome of analysing a completed quiz.
type AnalysisResult struct {
	OverallFeedback string `json:"overallFeedback"`
	Score           int    `json:"score"`
}
