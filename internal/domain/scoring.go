package domain

import "github.com/samber/lo"

// ScoreQuiz counts the answers equal to their question's correct answer.
// Answers referencing an unknown question id are skipped. When ids repeat in
// quiz, the first question wins.
func ScoreQuiz(quiz []QuizQuestion, answers []AnswerRecord) (int, []WrongAnswerDetail) {
	correct := 0
	wrong := make([]WrongAnswerDetail, 0)

	for _, ans := range answers {
		q, found := lo.Find(quiz, func(q QuizQuestion) bool {
			return q.ID == ans.QuestionID
		})
		if !found {
			continue
		}
		if ans.SelectedAnswer == q.CorrectAnswer {
			correct++
			continue
		}
		wrong = append(wrong, WrongAnswerDetail{
			Question:         q.Question,
			YourAnswer:       ans.SelectedAnswer,
			CorrectAnswer:    q.CorrectAnswer,
			ProvidedSolution: q.Solution,
		})
	}
	return correct, wrong
}
