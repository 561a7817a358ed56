// Package render turns article body markup into sanitized HTML.
//
// Bodies are blank-line separated paragraphs. A line starting with "## " is a section
// heading and "**text**" is bold. Single line breaks inside a paragraph are kept.
package render

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Body renders markup to HTML safe for embedding in a page.
func Body(markup string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markup), &buf); err != nil {
		return "<p>" + html.EscapeString(markup) + "</p>"
	}

	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}
