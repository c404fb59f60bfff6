package gemini

import (
	"context"

	"github.com/fwojciec/pith"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pith.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens with the local Gemini tokenizer, so trimming
// article text to the model's input budget costs no API calls.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for model. It fails when no local
// tokenizer vocabulary exists for the model name.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the token count of text under the counter's model.
// Empty text counts zero without touching the tokenizer.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	res, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, "user"),
	}, nil)
	if err != nil {
		return 0, err
	}
	return int(res.TotalTokens), nil
}
