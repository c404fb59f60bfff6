// Package lingua provides a pith.LanguageDetector backed by the lingua-go
// n-gram language detection library.
package lingua

import (
	"strings"

	"github.com/fwojciec/pith"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements pith.LanguageDetector at compile time.
var _ pith.LanguageDetector = (*Detector)(nil)

// Detector identifies the language of text using statistical n-gram models.
// Construction loads the models, so detectors should be built once and
// shared; DetectLanguage is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the given languages. With fewer than
// two candidate languages it considers every language lingua knows, which
// costs startup time and memory; callers that know their corpus should pass
// a narrower set.
func NewDetector(languages ...lingua.Language) *Detector {
	builder := lingua.NewLanguageDetectorBuilder()
	if len(languages) < 2 {
		return &Detector{detector: builder.FromAllLanguages().Build()}
	}
	return &Detector{detector: builder.FromLanguages(languages...).Build()}
}

// DetectLanguage returns the ISO 639-1 code of the most likely language of
// text, or false when no language can be determined with confidence.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
