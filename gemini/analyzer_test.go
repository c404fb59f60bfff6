package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil) // nil client ok for this test

	_, err := analyzer.Summarize(context.Background(), "Title", "   ")

	require.Error(t, err)
	assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	assert.Contains(t, pith.ErrorMessage(err), "text required")
}

func TestAnalyzer_Sentiment_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil)

	_, err := analyzer.Sentiment(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
}

func TestAnalyzer_Entities_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil)

	_, err := analyzer.Entities(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
}

func TestBuildSummaryConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSummaryConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summarize")
}

func TestBuildSummaryConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSummaryConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildAnalysisConfig_RequestsJSON(t *testing.T) {
	t.Parallel()

	config := gemini.BuildAnalysisConfig()

	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0, *config.Temperature, 0.001)
}

func TestBuildSummaryPrompt_ContainsArticle(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Go Concurrency", "Goroutines are lightweight threads.")

	assert.Contains(t, prompt, "<article>")
	assert.Contains(t, prompt, "<title>Go Concurrency</title>")
	assert.Contains(t, prompt, "Goroutines are lightweight threads.")
	assert.Contains(t, prompt, "</article>")
}

func TestBuildSummaryPrompt_OmitsTitleWhenEmpty(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("", "Some content.")

	assert.NotContains(t, prompt, "<title>")
	assert.Contains(t, prompt, "Some content.")
}

func TestBuildSentimentPrompt_ContainsText(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSentimentPrompt("This library is wonderful.")

	assert.Contains(t, prompt, "<text>This library is wonderful.</text>")
	assert.Contains(t, prompt, `"label"`)
	assert.Contains(t, prompt, `"score"`)
}

func TestBuildEntityPrompt_ContainsText(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildEntityPrompt("Ada Lovelace worked in London.")

	assert.Contains(t, prompt, "<text>Ada Lovelace worked in London.</text>")
	assert.Contains(t, prompt, `"type"`)
}

func TestParseSentiment(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid response", func(t *testing.T) {
		t.Parallel()

		score, err := gemini.ParseSentiment(`{"label": "positive", "score": 0.8}`)

		require.NoError(t, err)
		assert.Equal(t, "positive", score.Label)
		assert.InDelta(t, 0.8, score.Score, 0.001)
	})

	t.Run("strips code fences", func(t *testing.T) {
		t.Parallel()

		score, err := gemini.ParseSentiment("```json\n{\"label\": \"negative\", \"score\": -0.5}\n```")

		require.NoError(t, err)
		assert.Equal(t, "negative", score.Label)
		assert.InDelta(t, -0.5, score.Score, 0.001)
	})

	t.Run("normalizes label case", func(t *testing.T) {
		t.Parallel()

		score, err := gemini.ParseSentiment(`{"label": "Neutral", "score": 0}`)

		require.NoError(t, err)
		assert.Equal(t, "neutral", score.Label)
	})

	t.Run("clamps score to range", func(t *testing.T) {
		t.Parallel()

		score, err := gemini.ParseSentiment(`{"label": "positive", "score": 1.7}`)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, score.Score, 0.001)
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSentiment(`{"label": "ecstatic", "score": 1}`)

		require.Error(t, err)
		assert.Equal(t, pith.EINTERNAL, pith.ErrorCode(err))
		assert.Contains(t, pith.ErrorMessage(err), "ecstatic")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSentiment("the sentiment is positive")

		require.Error(t, err)
		assert.Equal(t, pith.EINTERNAL, pith.ErrorCode(err))
	})
}

func TestParseEntities(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid response", func(t *testing.T) {
		t.Parallel()

		entities, err := gemini.ParseEntities(`[{"text": "Ada Lovelace", "type": "PERSON"}, {"text": "London", "type": "LOC"}]`)

		require.NoError(t, err)
		require.Len(t, entities, 2)
		assert.Equal(t, pith.Entity{Text: "Ada Lovelace", Type: "PERSON"}, entities[0])
		assert.Equal(t, pith.Entity{Text: "London", Type: "LOC"}, entities[1])
	})

	t.Run("decodes empty array", func(t *testing.T) {
		t.Parallel()

		entities, err := gemini.ParseEntities("[]")

		require.NoError(t, err)
		assert.Empty(t, entities)
	})

	t.Run("strips code fences", func(t *testing.T) {
		t.Parallel()

		entities, err := gemini.ParseEntities("```json\n[{\"text\": \"Go\", \"type\": \"OTHER\"}]\n```")

		require.NoError(t, err)
		require.Len(t, entities, 1)
		assert.Equal(t, "Go", entities[0].Text)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseEntities("no entities found")

		require.Error(t, err)
		assert.Equal(t, pith.EINTERNAL, pith.ErrorCode(err))
	})
}
