package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"neet-quiz/internal/domain"
)

const generationTemplate = `You are an expert quiz generator for NEET medical entrance exams.
Generate %[1]d multiple-choice questions for NEET students on the topic of "%[2]s" in the subject "%[3]s".
Each question must be high-quality, conceptually accurate, and at a competitive exam level.
Each question must have exactly 4 options (A, B, C, D).
For each question, also provide the correct answer and a detailed explanation (solution).
%[4]s
Format the output strictly as follows, with no extra text before or after the list:

## %[5]s 1: [Question text]
%[6]s:
A. [Option A text]
B. [Option B text]
C. [Option C text]
D. [Option D text]
%[7]s: [Exact text of the correct option]
%[8]s: [Detailed explanation]

## %[5]s 2: [Question text]
...and so on for %[1]d questions.
`

// BuildGenerationPrompt renders the instruction sent to the oracle for one
// quiz. It is a pure function of req.
func BuildGenerationPrompt(req domain.GenerationRequest) string {
	tags := TagsFor(req.Language)

	var extra strings.Builder
	if req.Language == domain.LanguageHindi {
		fmt.Fprintf(&extra, "\nGenerate all content (questions, options, correct answers, solutions) in HINDI.\n")
		fmt.Fprintf(&extra, "All options and explanations must also be written in Hindi.\n")
		fmt.Fprintf(&extra, "The topic is %q in the subject %q.\n", req.Chapter, req.Subject)
		fmt.Fprintf(&extra, "Use the Hindi formatting tags shown below.\n")
	}
	if style := strings.TrimSpace(req.StylePrompt); style != "" {
		extra.WriteString("\n")
		if req.Language == domain.LanguageHindi {
			fmt.Fprintf(&extra, "इसके अतिरिक्त, सभी प्रश्नों पर निम्नलिखित शैली बाधा लागू करें: '%s'।\n", style)
		} else {
			fmt.Fprintf(&extra, "Additionally, apply the following style constraint to all questions: '%s'.\n", style)
		}
	}

	return fmt.Sprintf(generationTemplate,
		req.Limit, req.Chapter, req.Subject, extra.String(),
		tags.Question, tags.Options, tags.CorrectAnswer, tags.Solution)
}

// BuildAnalysisPrompt asks the oracle for feedback on a finished quiz.
func BuildAnalysisPrompt(correct, total int, wrong []domain.WrongAnswerDetail, lang domain.Language) (string, error) {
	if wrong == nil {
		wrong = []domain.WrongAnswerDetail{}
	}
	var details strings.Builder
	enc := json.NewEncoder(&details)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wrong); err != nil {
		return "", fmt.Errorf("failed to encode wrong answers: %w", err)
	}

	langInstruction := "Please provide your feedback and analysis in English."
	if lang == domain.LanguageHindi {
		langInstruction = "कृपया अपनी प्रतिक्रिया और विश्लेषण हिंदी में प्रदान करें।"
	}

	return fmt.Sprintf(`A NEET student just completed a quiz. They answered %d out of %d questions correctly.
Here are the details of the questions they answered incorrectly:
%s
Based on this information, provide:
1. An overall feedback message.
2. Suggest 2-3 specific sub-topics for improvement.
3. Encourage them and suggest practical ways to practice.
%s`, correct, total, strings.TrimSpace(details.String()), langInstruction), nil
}
