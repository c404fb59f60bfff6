package pith

import "strings"

// Content validation thresholds.
const (
	MinValidWordCount    = 50
	MinValidQualityScore = 0.3
)

// ValidationResult is the outcome of a post-hoc content quality check.
// It is informational: validation failures are returned as rule violations,
// never as errors.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateContent checks a content record against the minimum quality rules:
// non-empty title, at least one paragraph, word count of at least
// MinValidWordCount, and quality score of at least MinValidQualityScore.
// Each violated rule appends one error string.
func ValidateContent(c *ExtractedContent) ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(c.Title) == "" {
		result.Errors = append(result.Errors, "Missing title")
	}
	if len(c.Paragraphs) == 0 {
		result.Errors = append(result.Errors, "No paragraphs extracted")
	}
	if c.WordCount < MinValidWordCount {
		result.Errors = append(result.Errors, "Word count below minimum (50)")
	}
	if c.Quality.Score < MinValidQualityScore {
		result.Errors = append(result.Errors, "Quality score below threshold (0.3)")
	}

	result.Valid = len(result.Errors) == 0
	return result
}
