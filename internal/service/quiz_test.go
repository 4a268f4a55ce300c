package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const twoQuestionResponse = `Here is your quiz.

## Question 1: What is 2+2?
Options:
A. 3
B. 4
C. 5
D. 6
Correct Answer: B. 4
Solution: Basic arithmetic.

## Question 2: Which gas do plants absorb?
Options:
A. O2
B. CO2
C. N2
D. He
Correct Answer: Carbon dioxide
Solution: Photosynthesis uses CO2.

## Question 3: Broken block without options
Correct Answer: x
`

func generationRequest() domain.GenerationRequest {
	return domain.GenerationRequest{Subject: "biology", Chapter: "Plant physiology", Limit: 3, Language: domain.LanguageEnglish}
}

func TestGenerateQuiz_Success(t *testing.T) {
	oracle := new(MockOracle)
	batches := new(MockQuizBatchCache)
	oracle.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"Plant physiology"`) && strings.Contains(p, "Generate 3 multiple-choice")
	})).Return(twoQuestionResponse, nil)
	batches.On("Put", mock.Anything, mock.AnythingOfType("[]domain.QuizQuestion")).Return("01HGZ8VNRYXS8QKNJV5GRWPWDQ", nil)

	svc := NewQuizService(oracle, batches)
	resp, err := svc.GenerateQuiz(context.Background(), generationRequest())

	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "4", resp.Questions[0].CorrectAnswer)
	assert.Equal(t, "Carbon dioxide", resp.Questions[1].CorrectAnswer)
	assert.Equal(t, 1, resp.SkippedBlocks)
	assert.Equal(t, 1, resp.UnmatchedAnswers)
	assert.Equal(t, "01HGZ8VNRYXS8QKNJV5GRWPWDQ", resp.QuizID)
	oracle.AssertExpectations(t)
	batches.AssertExpectations(t)
}

func TestGenerateQuiz_CacheFailureIsNotFatal(t *testing.T) {
	oracle := new(MockOracle)
	batches := new(MockQuizBatchCache)
	oracle.On("GenerateContent", mock.Anything, mock.Anything).Return(twoQuestionResponse, nil)
	batches.On("Put", mock.Anything, mock.Anything).Return("", errors.New("redis down"))

	resp, err := NewQuizService(oracle, batches).GenerateQuiz(context.Background(), generationRequest())

	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Empty(t, resp.QuizID)
}

func TestGenerateQuiz_NoParsableQuestions(t *testing.T) {
	oracle := new(MockOracle)
	oracle.On("GenerateContent", mock.Anything, mock.Anything).Return("Sorry, I can't do that.", nil)

	resp, err := NewQuizService(oracle, nil).GenerateQuiz(context.Background(), generationRequest())

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNoParsableQuestions, domainErr.Code)
	assert.Equal(t, "Sorry, I can't do that.", domainErr.Context[domain.ContextRawResponse])
}

func TestGenerateQuiz_OracleFailure(t *testing.T) {
	oracle := new(MockOracle)
	oracle.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := NewQuizService(oracle, nil).GenerateQuiz(context.Background(), generationRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
	assert.Contains(t, domainErr.Message, "quota exceeded")
}

func TestAnalyzeResults_InlineQuiz(t *testing.T) {
	quiz := []domain.QuizQuestion{
		{ID: 1, Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: "a", Solution: "S1"},
		{ID: 2, Question: "Q2", Options: []string{"c", "d"}, CorrectAnswer: "d", Solution: "S2"},
	}
	oracle := new(MockOracle)
	oracle.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "answered 1 out of 2") &&
			strings.Contains(p, `"your_answer": "c"`) &&
			strings.Contains(p, "हिंदी")
	})).Return("  Keep going!\n", nil)

	result, err := NewQuizService(oracle, nil).AnalyzeResults(context.Background(), &dto.AnalyzeResultsRequest{
		Quiz: quiz,
		UserAnswers: []domain.AnswerRecord{
			{QuestionID: 1, SelectedAnswer: "a"},
			{QuestionID: 2, SelectedAnswer: "c"},
			{QuestionID: 9, SelectedAnswer: "z"},
		},
		Language: "hindi",
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.AnalysisResult{OverallFeedback: "Keep going!", Score: 1}, result)
	oracle.AssertExpectations(t)
}

func TestAnalyzeResults_ByQuizID(t *testing.T) {
	oracle := new(MockOracle)
	batches := new(MockQuizBatchCache)
	batches.On("Get", mock.Anything, "01HGZ8VNRYXS8QKNJV5GRWPWDQ").Return(sampleBatch, nil)
	oracle.On("GenerateContent", mock.Anything, mock.Anything).Return("Perfect.", nil)

	result, err := NewQuizService(oracle, batches).AnalyzeResults(context.Background(), &dto.AnalyzeResultsRequest{
		QuizID:      "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		UserAnswers: []domain.AnswerRecord{{QuestionID: 1, SelectedAnswer: "4"}, {QuestionID: 2, SelectedAnswer: "केंद्रक"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
}

func TestAnalyzeResults_UnknownQuizID(t *testing.T) {
	oracle := new(MockOracle)

	_, err := NewQuizService(oracle, nil).AnalyzeResults(context.Background(), &dto.AnalyzeResultsRequest{
		QuizID:      "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		UserAnswers: []domain.AnswerRecord{{QuestionID: 1, SelectedAnswer: "a"}},
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
	oracle.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything)
}

func TestAnalyzeResults_OracleFailureCarriesScore(t *testing.T) {
	oracle := new(MockOracle)
	oracle.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	_, err := NewQuizService(oracle, nil).AnalyzeResults(context.Background(), &dto.AnalyzeResultsRequest{
		Quiz:        sampleBatch,
		UserAnswers: []domain.AnswerRecord{{QuestionID: 1, SelectedAnswer: "4"}},
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
	assert.Equal(t, 1, domainErr.Context[domain.ContextScore])
}

func TestCacheStatus(t *testing.T) {
	batches := new(MockQuizBatchCache)
	batches.On("Status", mock.Anything).Return(CacheStatusOK)
	assert.Equal(t, CacheStatusOK, NewQuizService(new(MockOracle), batches).CacheStatus(context.Background()))
	assert.Equal(t, CacheStatusDisabled, NewQuizService(new(MockOracle), nil).CacheStatus(context.Background()))
}
