// Package render turns model prose into HTML for display.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// ExplanationHTML converts a revision explanation (markdown) to HTML. Raw
// HTML in the input is dropped by goldmark's default renderer.
func ExplanationHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
