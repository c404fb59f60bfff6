// Package gemini provides LLM-backed implementations of the content
// analysis interfaces (summarization, sentiment, entity recognition) and a
// local token counter, all using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pith"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Compile-time interface verification.
var (
	_ pith.Summarizer        = (*Analyzer)(nil)
	_ pith.SentimentAnalyzer = (*Analyzer)(nil)
	_ pith.EntityRecognizer  = (*Analyzer)(nil)
)

// Analyzer implements the LLM-backed analysis interfaces using Google
// Gemini. The pipeline treats it as a black box from text to scores and
// labels.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Summarize produces a short abstract of the content.
func (a *Analyzer) Summarize(ctx context.Context, title, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pith.Errorf(pith.EINVALID, "text required")
	}

	result, err := a.generate(ctx, BuildSummaryPrompt(title, text), BuildSummaryConfig())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Sentiment scores the sentiment of text from -1 (negative) to 1 (positive).
func (a *Analyzer) Sentiment(ctx context.Context, text string) (*pith.SentimentScore, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pith.Errorf(pith.EINVALID, "text required")
	}

	result, err := a.generate(ctx, BuildSentimentPrompt(text), BuildAnalysisConfig())
	if err != nil {
		return nil, err
	}
	return ParseSentiment(result)
}

// Entities extracts named entities from text.
func (a *Analyzer) Entities(ctx context.Context, text string) ([]pith.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pith.Errorf(pith.EINVALID, "text required")
	}

	result, err := a.generate(ctx, BuildEntityPrompt(text), BuildAnalysisConfig())
	if err != nil {
		return nil, err
	}
	return ParseEntities(result)
}

func (a *Analyzer) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pith.Errorf(pith.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildSummaryConfig returns the GenerateContentConfig for summarization.
func BuildSummaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web articles. Reply with two to three plain sentences covering the article's main points. Do not add commentary or headings.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildAnalysisConfig returns the GenerateContentConfig for the structured
// analysis calls. Responses are requested as JSON with zero temperature so
// identical inputs score identically.
func BuildAnalysisConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temp,
	}
}

// BuildSummaryPrompt builds the user prompt for summarization.
func BuildSummaryPrompt(title, text string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	if title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", text)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Summarize this article.")
	return sb.String()
}

// BuildSentimentPrompt builds the user prompt for sentiment analysis.
func BuildSentimentPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Score the sentiment of the following text. Reply with a JSON object ")
	sb.WriteString(`{"label": "positive"|"neutral"|"negative", "score": <number from -1 to 1>}.`)
	sb.WriteString("\n\n<text>")
	sb.WriteString(text)
	sb.WriteString("</text>")
	return sb.String()
}

// BuildEntityPrompt builds the user prompt for entity recognition.
func BuildEntityPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Extract the named entities from the following text. Reply with a JSON array ")
	sb.WriteString(`[{"text": <entity>, "type": "PERSON"|"ORG"|"LOC"|"DATE"|"OTHER"}]. `)
	sb.WriteString("Reply with an empty array when there are none.")
	sb.WriteString("\n\n<text>")
	sb.WriteString(text)
	sb.WriteString("</text>")
	return sb.String()
}

// ParseSentiment decodes a sentiment JSON response. Scores are clamped to
// [-1, 1] and labels normalized to lowercase.
func ParseSentiment(raw string) (*pith.SentimentScore, error) {
	var score pith.SentimentScore
	if err := json.Unmarshal([]byte(trimJSON(raw)), &score); err != nil {
		return nil, pith.Errorf(pith.EINTERNAL, "decode sentiment response: %v", err)
	}

	score.Label = strings.ToLower(strings.TrimSpace(score.Label))
	switch score.Label {
	case "positive", "neutral", "negative":
	default:
		return nil, pith.Errorf(pith.EINTERNAL, "unexpected sentiment label %q", score.Label)
	}

	score.Score = min(1, max(-1, score.Score))
	return &score, nil
}

// ParseEntities decodes an entity JSON response.
func ParseEntities(raw string) ([]pith.Entity, error) {
	var entities []pith.Entity
	if err := json.Unmarshal([]byte(trimJSON(raw)), &entities); err != nil {
		return nil, pith.Errorf(pith.EINTERNAL, "decode entity response: %v", err)
	}
	return entities, nil
}

// trimJSON strips the markdown code fences some models wrap around JSON
// responses.
func trimJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
