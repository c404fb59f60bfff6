package pith

// ViewportHeight is the synthetic fold position. Paragraphs whose top edge
// sits above it earn an importance bonus.
const ViewportHeight = 800.0

// ImportanceSignals capture the markup and layout evidence that feeds
// paragraph importance scoring.
type ImportanceSignals struct {
	TextLength    int
	WordCount     int
	AnchorCount   int
	Top           float64
	InsideArticle bool
	Tag           string
	IsQuote       bool
	IsCode        bool
}

// ScoreImportance estimates how central a paragraph is to the main content
// of a page. Scores start from a neutral base and move with text length,
// position, semantic context and link saturation. The result is clamped to
// [0, 1].
func ScoreImportance(sig ImportanceSignals) float64 {
	score := 0.5

	if sig.TextLength > 100 {
		score += 0.1
	}
	if sig.TextLength > 300 {
		score += 0.1
	}
	if sig.Top < ViewportHeight {
		score += 0.1
	}
	if sig.InsideArticle {
		score += 0.1
	}
	if sig.Tag == "p" {
		score += 0.05
	}
	if sig.IsQuote {
		score -= 0.2
	}
	if sig.IsCode {
		score -= 0.3
	}
	if sig.WordCount > 0 {
		score -= 0.5 * float64(sig.AnchorCount) / float64(sig.WordCount)
	}

	return min(1, max(0, score))
}
