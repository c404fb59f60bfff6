package pith

import "context"

// SentimentScore is the result of sentiment analysis over a span of text.
// Score runs from -1 (negative) through 0 (neutral) to 1 (positive).
type SentimentScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Entity is a named entity recognized in a span of text.
type Entity struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// ReadabilityScore is the result of a readability formula over a span of
// text. Higher scores indicate easier reading.
type ReadabilityScore struct {
	Score float64 `json:"score"`
	Grade string  `json:"grade"`
}

// SentimentAnalyzer scores the sentiment of text. Implementations are
// treated as black boxes; the pipeline never inspects how the score is
// produced.
type SentimentAnalyzer interface {
	Sentiment(ctx context.Context, text string) (*SentimentScore, error)
}

// EntityRecognizer extracts named entities from text.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// ReadabilityScorer computes a readability score for text.
type ReadabilityScorer interface {
	Readability(text string) *ReadabilityScore
}

// LanguageDetector identifies the language of text, returning an ISO 639-1
// code such as "en". Implementations return false when no language can be
// determined with confidence.
type LanguageDetector interface {
	DetectLanguage(text string) (string, bool)
}

// Summarizer produces a short abstract of extracted content.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}
