package pageaudit

import (
	"regexp"
	"strconv"
	"strings"
)

// TextBlockLabel is the label of a flattened paragraph-like block.
const TextBlockLabel = "TEXT"

var (
	skipTags = map[string]bool{"nav": true, "script": true, "style": true}

	headingTags = map[string]bool{
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	}

	blockTags = map[string]bool{
		"p": true, "li": true, "blockquote": true, "figcaption": true,
	}

	wordRe     = regexp.MustCompile(`[A-Za-z']+`)
	sentenceRe = regexp.MustCompile(`[.!?]`)
)

// TextBlock is one unit of visible text. Label is "H1".."H6" for headings
// and TextBlockLabel otherwise.
type TextBlock struct {
	Label string
	Text  string
}

// IsHeading reports whether the block came from a heading element.
func (b TextBlock) IsHeading() bool {
	return b.Label != TextBlockLabel
}

// FlattenOptions configures Flatten.
type FlattenOptions struct {
	// PreserveLineBreaks keeps the newline a br element contributes inside a
	// block instead of collapsing it like other whitespace.
	PreserveLineBreaks bool
}

// Flatten walks the visible text under root, skipping nav, script and style
// subtrees, and returns its text blocks in document order.
func Flatten(root *Element, opts FlattenOptions) []TextBlock {
	var blocks []TextBlock
	normalize := NormalizeSpace
	if opts.PreserveLineBreaks {
		normalize = normalizeLines
	}

	var traverse func(el *Element)
	traverse = func(el *Element) {
		switch {
		case skipTags[el.Tag]:
			return
		case headingTags[el.Tag]:
			if text := normalize(el.TextContent()); text != "" {
				blocks = append(blocks, TextBlock{Label: strings.ToUpper(el.Tag), Text: text})
			}
			return
		case blockTags[el.Tag]:
			if text := normalize(el.TextContent()); text != "" {
				blocks = append(blocks, TextBlock{Label: TextBlockLabel, Text: text})
			}
			return
		}
		for _, child := range el.Children {
			switch c := child.(type) {
			case *Element:
				traverse(c)
			case Text:
				if text := NormalizeSpace(string(c)); text != "" {
					blocks = append(blocks, TextBlock{Label: TextBlockLabel, Text: text})
				}
			}
		}
	}
	traverse(root)
	return blocks
}

// normalizeLines normalizes each line separately and drops empty lines.
func normalizeLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = NormalizeSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// Readability holds the flattened text of a page and its statistics.
type Readability struct {
	Text      string
	Words     int
	Sentences int
	Syllables int

	// Score is the Flesch reading ease rounded to two decimals.
	Score float64
}

// ComputeReadability renders blocks as flattened text and computes the
// Flesch reading ease. The score is 0 when there are no words.
func ComputeReadability(blocks []TextBlock) Readability {
	var r Readability
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.IsHeading() {
			lines = append(lines, block.Label+": "+block.Text)
		} else {
			lines = append(lines, block.Text)
		}

		tokens := wordRe.FindAllString(block.Text, -1)
		r.Words += len(tokens)
		r.Sentences += max(len(sentenceRe.FindAllStringIndex(block.Text, -1)), 1)
		for _, token := range tokens {
			r.Syllables += max(CountSyllables(token), 1)
		}
	}
	r.Text = strings.Join(lines, "\n\n")
	r.Sentences = max(r.Sentences, 1)

	if r.Words == 0 {
		return r
	}
	words := float64(r.Words)
	score := 206.835 - 1.015*(words/float64(r.Sentences)) - 84.6*(float64(r.Syllables)/words)
	r.Score = roundScore(score)
	return r
}

// roundScore rounds to two decimals from the exact binary value, with exact
// halves going to the even digit. 103.625 becomes 103.62 while 97.025,
// stored slightly above the half, becomes 97.03.
func roundScore(score float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', 2, 64), 64)
	if err != nil {
		return score
	}
	return rounded
}

// CountSyllables estimates the syllables of an English word by counting
// vowel groups. Words with letters count at least one syllable; a trailing
// silent "e" is discounted when more than one group was found.
func CountSyllables(word string) int {
	var letters strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			letters.WriteRune(r)
		}
	}
	w := letters.String()
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	return max(count, 1)
}
