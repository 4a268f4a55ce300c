package quizgen

import (
	"regexp"
	"strings"

	"neet-quiz/internal/domain"
)

// TagSet is the vocabulary the oracle is told to use for one language.
type TagSet struct {
	Question      string
	Options       string
	CorrectAnswer string
	Solution      string
	// MarkerLetters is a regexp character-class body for option list markers ("A. ").
	MarkerLetters string
}

var tagTable = map[domain.Language]TagSet{
	domain.LanguageEnglish: {
		Question:      "Question",
		Options:       "Options",
		CorrectAnswer: "Correct Answer",
		Solution:      "Solution",
		MarkerLetters: "A-D",
	},
	domain.LanguageHindi: {
		Question:      "प्रश्न",
		Options:       "विकल्प",
		CorrectAnswer: "सही उत्तर",
		Solution:      "समाधान",
		MarkerLetters: "अबसदकखगघ",
	},
}

// tagOrder fixes the alternation order so compiled patterns are deterministic.
var tagOrder = []domain.Language{domain.LanguageEnglish, domain.LanguageHindi}

// TagsFor returns the tag set for lang, falling back to English.
func TagsFor(lang domain.Language) TagSet {
	if tags, ok := tagTable[lang]; ok {
		return tags
	}
	return tagTable[domain.LanguageEnglish]
}

// AllTagSets returns every known tag set. The parser accepts tags from any of them.
func AllTagSets() []TagSet {
	sets := make([]TagSet, 0, len(tagOrder))
	for _, lang := range tagOrder {
		sets = append(sets, tagTable[lang])
	}
	return sets
}

// alternation builds a non-capturing group matching the field of any tag set.
func alternation(sets []TagSet, field func(TagSet) string) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		parts = append(parts, regexp.QuoteMeta(field(s)))
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

func markerClass(sets []TagSet) string {
	var b strings.Builder
	for _, s := range sets {
		b.WriteString(s.MarkerLetters)
	}
	return "[" + b.String() + "]"
}
