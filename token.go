package pith

import "context"

// TokenCounter reports how many model tokens a piece of text costs. The
// summarizer uses it to trim article text to the model's input budget
// before sending an analysis request.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
