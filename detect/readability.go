package detect

import (
	"strings"
	"unicode"

	"github.com/fwojciec/pith"
)

var _ pith.ReadabilityScorer = (*ReadabilityScorer)(nil)

// ReadabilityScorer computes Flesch reading-ease scores from plain text.
type ReadabilityScorer struct{}

// NewReadabilityScorer creates a new ReadabilityScorer.
func NewReadabilityScorer() *ReadabilityScorer {
	return &ReadabilityScorer{}
}

// Readability scores text on the Flesch reading-ease scale, clamped to
// [0, 100], with the conventional US grade-level label.
func (s *ReadabilityScorer) Readability(text string) *pith.ReadabilityScore {
	words := strings.Fields(text)
	if len(words) == 0 {
		return &pith.ReadabilityScore{Grade: "unknown"}
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*float64(len(words))/float64(sentences) -
		84.6*float64(syllables)/float64(len(words))
	score = min(100, max(0, score))

	return &pith.ReadabilityScore{Score: score, Grade: fleschGrade(score)}
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

// countSyllables approximates syllables as vowel groups with a silent-e
// adjustment. Words without letters count as one syllable so the formula
// never divides weirdly on numeric tokens.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 1
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouy", r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && groups > 1 {
		groups--
	}
	if groups == 0 {
		groups = 1
	}
	return groups
}

func fleschGrade(score float64) string {
	switch {
	case score >= 90:
		return "5th grade"
	case score >= 80:
		return "6th grade"
	case score >= 70:
		return "7th grade"
	case score >= 60:
		return "8th-9th grade"
	case score >= 50:
		return "10th-12th grade"
	case score >= 30:
		return "college"
	default:
		return "college graduate"
	}
}
