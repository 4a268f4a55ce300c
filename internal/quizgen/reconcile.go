package quizgen

import "neet-quiz/internal/domain"

// ReconcileCorrectAnswer replaces the correct answer with the exact stored
// option it names. Both sides are compared after marker stripping and
// trimming; the first option that matches wins and is copied unchanged. When
// no option matches, the cleaned answer is kept and matched is false.
func ReconcileCorrectAnswer(q domain.QuizQuestion) (reconciled domain.QuizQuestion, matched bool) {
	cleaned := StripMarker(q.CorrectAnswer)
	if opt, ok := findOption(q.Options, cleaned); ok {
		q.CorrectAnswer = opt
		return q, true
	}
	q.CorrectAnswer = cleaned
	return q, false
}

// ReconcileAll reconciles every question and returns the ids left unmatched.
func ReconcileAll(questions []domain.QuizQuestion) ([]domain.QuizQuestion, []int) {
	out := make([]domain.QuizQuestion, 0, len(questions))
	var unmatched []int
	for _, q := range questions {
		r, ok := ReconcileCorrectAnswer(q)
		if !ok {
			unmatched = append(unmatched, r.ID)
		}
		out = append(out, r)
	}
	return out, unmatched
}

func findOption(options []string, answer string) (string, bool) {
	for _, opt := range options {
		if StripMarker(opt) == answer {
			return opt, true
		}
	}
	return "", false
}
