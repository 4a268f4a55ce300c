package quizgen

import (
	"fmt"
	"regexp"
	"strings"

	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BlockFailure records a question block that was dropped during parsing.
type BlockFailure struct {
	// Index is the 0-based position of the block in the segmented response.
	Index  int
	Reason string
	Block  string
}

// ParseResult separates successfully parsed questions from dropped blocks.
type ParseResult struct {
	Questions []domain.QuizQuestion
	Failures  []BlockFailure
	// Strategy names the segmentation strategy that produced the blocks, empty if none did.
	Strategy string
}

// Parser turns tagged free text into quiz questions.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	segmenters []segmenter

	blockPrefix  *regexp.Regexp
	optionsLine  *regexp.Regexp
	answerLine   *regexp.Regexp
	solutionLine *regexp.Regexp
	marker       *regexp.Regexp
}

// NewParser compiles a parser accepting the tags of every given set.
func NewParser(sets ...TagSet) *Parser {
	if len(sets) == 0 {
		sets = AllTagSets()
	}
	q := alternation(sets, func(s TagSet) string { return s.Question })
	opts := alternation(sets, func(s TagSet) string { return s.Options })
	ans := alternation(sets, func(s TagSet) string { return s.CorrectAnswer })
	sol := alternation(sets, func(s TagSet) string { return s.Solution })

	return &Parser{
		segmenters:   newSegmenters(sets),
		blockPrefix:  regexp.MustCompile(`(?i)^(?:##\s*)?` + q + `\s*\p{Nd}+:\s*`),
		optionsLine:  regexp.MustCompile(`(?i)\n\s*` + opts + `:`),
		answerLine:   regexp.MustCompile(`(?i)\n\s*` + ans + `:`),
		solutionLine: regexp.MustCompile(`(?i)\n\s*` + sol + `:`),
		marker:       regexp.MustCompile(`(?i)^` + markerClass(sets) + `\.\s*`),
	}
}

var defaultParser = NewParser(AllTagSets()...)

// ParseQuizResponse parses raw oracle text with the default bilingual parser.
func ParseQuizResponse(raw string) ParseResult {
	return defaultParser.Parse(raw)
}

// StripMarker removes a leading option marker such as "B. " using the default parser.
func StripMarker(s string) string {
	return defaultParser.StripMarker(s)
}

// Parse segments raw into blocks and extracts one question per valid block.
// Invalid blocks are logged and reported in Failures; they never abort the batch.
func (p *Parser) Parse(raw string) ParseResult {
	l := logger.Get()
	result := ParseResult{Questions: make([]domain.QuizQuestion, 0)}

	var blocks []string
	for _, s := range p.segmenters {
		if blocks = s.segment(raw); len(blocks) > 0 {
			result.Strategy = s.name
			break
		}
	}
	if len(blocks) == 0 {
		l.Debug("No question blocks found in response", zap.Int("response_length", len(raw)))
		return result
	}

	for i, block := range blocks {
		body := p.blockPrefix.ReplaceAllString(strings.TrimSpace(block), "")
		q, err := p.parseBlock(body)
		if err != nil {
			l.Warn("Failed to parse a question block",
				zap.Int("block_index", i),
				zap.String("strategy", result.Strategy),
				zap.String("reason", err.Error()),
				zap.String("block", body))
			result.Failures = append(result.Failures, BlockFailure{Index: i, Reason: err.Error(), Block: body})
			continue
		}
		q.ID = len(result.Questions) + 1
		result.Questions = append(result.Questions, q)
	}
	return result
}

// parseBlock reads the four fields in order. Each tag is searched at a line
// start after the previous one, so tag words inside the question stem are
// ignored.
func (p *Parser) parseBlock(block string) (domain.QuizQuestion, error) {
	var q domain.QuizQuestion

	optLine := p.optionsLine.FindStringIndex(block)
	if optLine == nil {
		return q, fmt.Errorf("missing question text before options")
	}
	question := strings.TrimSpace(block[:optLine[0]])
	afterOptions := block[optLine[1]:]

	ansLine := p.answerLine.FindStringIndex(afterOptions)
	if ansLine == nil {
		return q, fmt.Errorf("missing correct answer")
	}
	optionsText := afterOptions[:ansLine[0]]
	afterAnswer := afterOptions[ansLine[1]:]

	solLine := p.solutionLine.FindStringIndex(afterAnswer)
	if solLine == nil {
		return q, fmt.Errorf("missing solution")
	}
	correct := p.StripMarker(afterAnswer[:solLine[0]])
	solution := strings.TrimSpace(afterAnswer[solLine[1]:])
	options := p.cleanOptions(optionsText)

	switch {
	case question == "":
		return q, fmt.Errorf("empty question text")
	case len(options) == 0:
		return q, fmt.Errorf("empty options")
	case correct == "":
		return q, fmt.Errorf("empty correct answer")
	case solution == "":
		return q, fmt.Errorf("empty solution")
	}

	q.Question = question
	q.Options = options
	q.CorrectAnswer = correct
	q.Solution = solution
	return q, nil
}

func (p *Parser) cleanOptions(text string) []string {
	lines := lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return p.StripMarker(line)
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != ""
	})
}

// StripMarker trims s and removes one leading option marker ("A. ", "ब. ").
func (p *Parser) StripMarker(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(p.marker.ReplaceAllString(s, ""))
}
