package mock

import (
	"context"

	"github.com/fwojciec/pith"
)

var _ pith.SentimentAnalyzer = (*SentimentAnalyzer)(nil)

// SentimentAnalyzer is a mock implementation of pith.SentimentAnalyzer.
type SentimentAnalyzer struct {
	SentimentFn func(ctx context.Context, text string) (*pith.SentimentScore, error)
}

func (a *SentimentAnalyzer) Sentiment(ctx context.Context, text string) (*pith.SentimentScore, error) {
	return a.SentimentFn(ctx, text)
}

var _ pith.EntityRecognizer = (*EntityRecognizer)(nil)

// EntityRecognizer is a mock implementation of pith.EntityRecognizer.
type EntityRecognizer struct {
	EntitiesFn func(ctx context.Context, text string) ([]pith.Entity, error)
}

func (r *EntityRecognizer) Entities(ctx context.Context, text string) ([]pith.Entity, error) {
	return r.EntitiesFn(ctx, text)
}

var _ pith.ReadabilityScorer = (*ReadabilityScorer)(nil)

// ReadabilityScorer is a mock implementation of pith.ReadabilityScorer.
type ReadabilityScorer struct {
	ReadabilityFn func(text string) *pith.ReadabilityScore
}

func (s *ReadabilityScorer) Readability(text string) *pith.ReadabilityScore {
	return s.ReadabilityFn(text)
}

var _ pith.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of pith.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}

var _ pith.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pith.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	return s.SummarizeFn(ctx, title, text)
}
