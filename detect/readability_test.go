package detect_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/detect"
	"github.com/stretchr/testify/assert"
)

func TestReadabilityScorer_Readability(t *testing.T) {
	t.Parallel()

	s := detect.NewReadabilityScorer()

	t.Run("short monosyllabic sentences score at the top", func(t *testing.T) {
		t.Parallel()

		sc := s.Readability("The cat sat on the mat. The dog ran to the park.")
		assert.Equal(t, 100.0, sc.Score)
		assert.Equal(t, "5th grade", sc.Grade)
	})

	t.Run("denser prose lands mid scale", func(t *testing.T) {
		t.Parallel()

		sc := s.Readability("Reading measures depend on sentence length and syllable density. Longer words with many syllables reduce the computed score.")
		assert.InDelta(t, 42.6, sc.Score, 0.001)
		assert.Equal(t, "college", sc.Grade)
	})

	t.Run("polysyllabic run-ons clamp at zero", func(t *testing.T) {
		t.Parallel()

		sc := s.Readability("Consequential considerations regarding implementation invariably necessitate comprehensive organizational deliberation.")
		assert.Equal(t, 0.0, sc.Score)
		assert.Equal(t, "college graduate", sc.Grade)
	})

	t.Run("empty text is unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, &pith.ReadabilityScore{Grade: "unknown"}, s.Readability(""))
		assert.Equal(t, &pith.ReadabilityScore{Grade: "unknown"}, s.Readability("  \n\t "))
	})
}
