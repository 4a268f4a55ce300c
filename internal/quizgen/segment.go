package quizgen

import "regexp"

// segmenter splits raw oracle text into question blocks.
type segmenter struct {
	name string
	// start marks the beginning of a block.
	start *regexp.Regexp
	// boundary marks where the previous block ends.
	boundary *regexp.Regexp
}

func newSegmenters(sets []TagSet) []segmenter {
	q := alternation(sets, func(s TagSet) string { return s.Question })
	loose := regexp.MustCompile(`(?i)` + q + `\s*\p{Nd}+:`)
	return []segmenter{
		{
			name:     "heading",
			start:    regexp.MustCompile(`(?im)^##\s*` + q + `\s*\p{Nd}+:`),
			boundary: regexp.MustCompile(`(?im)^##\s*` + q),
		},
		{
			name:     "loose",
			start:    loose,
			boundary: loose,
		},
	}
}

// segment returns the text of every block, each running from a start match up
// to the next boundary after it or the end of text.
func (s segmenter) segment(text string) []string {
	starts := s.start.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}
	bounds := s.boundary.FindAllStringIndex(text, -1)

	blocks := make([]string, 0, len(starts))
	b := 0
	for _, loc := range starts {
		end := len(text)
		for b < len(bounds) && bounds[b][0] < loc[1] {
			b++
		}
		if b < len(bounds) {
			end = bounds[b][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}
