// Package htmltomarkdown provides a pith.Converter that turns HTML
// fragments into Markdown, used by the Markdown export path.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pith"
)

var _ pith.Converter = (*Converter)(nil)

// Converter renders HTML fragments as CommonMark. It is called once per
// paragraph during export, so the output carries no trailing blank lines;
// the exporter controls paragraph separation itself.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with table support enabled. Extracted
// content keeps td cells as paragraphs, so tables show up in exports.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert returns the Markdown rendering of html.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pith.Errorf(pith.EINVALID, "no HTML to convert")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(md, "\n"), nil
}
