package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ReportHTML renders the markdown report as HTML. Pure: the same markdown
// always yields the same bytes. Raw HTML inside the model's markdown stays
// escaped; the report is text, tables and emphasis, not markup passthrough.
func ReportHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown report: %w", err)
	}
	return buf.String(), nil
}
