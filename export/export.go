// Package export serializes content records to Markdown, HTML, and JSON,
// and reads JSON records back in.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/pith"
)

var _ pith.Exporter = (*Exporter)(nil)

// Exporter serializes pith.ExtractedContent records. The zero value is
// usable; Converter, when set, renders plain paragraph bodies from their
// HTML instead of falling back to the bare text.
type Exporter struct {
	Converter pith.Converter
}

// NewExporter returns an Exporter that renders paragraph bodies with the
// given converter. A nil converter falls back to paragraph text.
func NewExporter(converter pith.Converter) *Exporter {
	return &Exporter{Converter: converter}
}

// Export serializes content in the requested format.
func (e *Exporter) Export(content *pith.ExtractedContent, format pith.ExportFormat) ([]byte, error) {
	if content == nil {
		return nil, pith.Errorf(pith.EINVALID, "no content to export")
	}

	switch format {
	case pith.FormatJSON:
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return nil, pith.Errorf(pith.EINTERNAL, "encode content: %v", err)
		}
		return data, nil
	case pith.FormatMarkdown:
		return e.exportMarkdown(content), nil
	case pith.FormatHTML:
		return e.exportHTML(content), nil
	}
	return nil, pith.Errorf(pith.EINVALID, "unsupported export format %q", format)
}

// Import decodes a JSON record previously produced by Export. Re-importing
// exported JSON yields a record equal to the original.
func (e *Exporter) Import(data []byte) (*pith.ExtractedContent, error) {
	var content pith.ExtractedContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, pith.Errorf(pith.EINVALID, "decode content: %v", err)
	}
	return &content, nil
}

func (e *Exporter) exportMarkdown(content *pith.ExtractedContent) []byte {
	var blocks []string

	if title := strings.TrimSpace(content.Title); title != "" {
		blocks = append(blocks, "# "+title)
	}
	if header := metadataHeader(content); header != "" {
		blocks = append(blocks, header)
	}
	if summary := strings.TrimSpace(content.Summary); summary != "" {
		blocks = append(blocks, summary)
	}

	if len(content.Sections) > 0 {
		blocks = append(blocks, e.sectionBlocks(content)...)
	} else {
		for i := range content.Paragraphs {
			blocks = append(blocks, e.paragraphMarkdown(&content.Paragraphs[i]))
		}
	}

	return []byte(strings.Join(blocks, "\n\n") + "\n")
}

// sectionBlocks renders paragraphs grouped under their section headings.
// Paragraphs preceding the first heading belong to no section and come
// first.
func (e *Exporter) sectionBlocks(content *pith.ExtractedContent) []string {
	byID := make(map[string]*pith.Paragraph, len(content.Paragraphs))
	for i := range content.Paragraphs {
		byID[content.Paragraphs[i].ID] = &content.Paragraphs[i]
	}

	var blocks []string
	for i := range content.Paragraphs {
		p := &content.Paragraphs[i]
		if p.IsHeading {
			break
		}
		blocks = append(blocks, e.paragraphMarkdown(p))
	}

	for _, section := range content.Sections {
		level := section.Level
		if level < 1 || level > 6 {
			level = 1
		}
		blocks = append(blocks, strings.Repeat("#", level)+" "+section.Title)
		for _, id := range section.ParagraphIDs {
			if p, ok := byID[id]; ok {
				blocks = append(blocks, e.paragraphMarkdown(p))
			}
		}
	}
	return blocks
}

func (e *Exporter) paragraphMarkdown(p *pith.Paragraph) string {
	switch {
	case p.IsHeading:
		level := p.HeadingLevel
		if level < 1 || level > 6 {
			level = 1
		}
		return strings.Repeat("#", level) + " " + p.Text
	case p.IsQuote:
		lines := strings.Split(p.Text, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")
	case p.IsCode:
		return "```\n" + p.Text + "\n```"
	}

	if e.Converter != nil && p.HTML != "" {
		if md, err := e.Converter.Convert(p.HTML); err == nil && strings.TrimSpace(md) != "" {
			return strings.TrimSpace(md)
		}
	}
	return p.Text
}

func metadataHeader(content *pith.ExtractedContent) string {
	var lines []string
	if content.Metadata.Author != "" {
		lines = append(lines, "**Author:** "+content.Metadata.Author)
	}
	if content.Metadata.Published != "" {
		lines = append(lines, "**Published:** "+content.Metadata.Published)
	}
	if content.URL != "" {
		lines = append(lines, "**Source:** "+content.URL)
	}
	return strings.Join(lines, "\n")
}

func (e *Exporter) exportHTML(content *pith.ExtractedContent) []byte {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(content.Title))
	b.WriteString("</head>\n<body>\n<article>\n")

	if content.Title != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(content.Title))
	}
	if content.Metadata.Author != "" {
		fmt.Fprintf(&b, "<p class=\"author\">%s</p>\n", html.EscapeString(content.Metadata.Author))
	}
	if content.Metadata.Published != "" {
		fmt.Fprintf(&b, "<p class=\"published\">%s</p>\n", html.EscapeString(content.Metadata.Published))
	}

	for i := range content.Paragraphs {
		p := &content.Paragraphs[i]
		if p.HTML != "" {
			b.WriteString(p.HTML)
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(p.Text))
	}

	b.WriteString("</article>\n</body>\n</html>\n")
	return []byte(b.String())
}
