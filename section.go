package pith

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in extracted content.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`

	// ParagraphIDs lists the ids of the paragraphs under this heading,
	// up to but not including the next heading of any level.
	ParagraphIDs []string `json:"paragraphIds,omitempty"`
}

// BuildSections derives the section outline from heading paragraphs.
// It generates URL-safe anchors and handles duplicate titles with numeric
// suffixes. Paragraphs preceding the first heading belong to no section.
func BuildSections(paragraphs []Paragraph) []Section {
	var sections []Section
	anchorCounts := make(map[string]int)

	for i := range paragraphs {
		p := &paragraphs[i]
		if !p.IsHeading {
			if len(sections) > 0 {
				last := &sections[len(sections)-1]
				last.ParagraphIDs = append(last.ParagraphIDs, p.ID)
			}
			continue
		}

		title := strings.TrimSpace(p.Text)
		baseAnchor := generateAnchor(title)

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		level := p.HeadingLevel
		if level < 1 || level > 6 {
			level = 1
		}

		sections = append(sections, Section{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	return sections
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
