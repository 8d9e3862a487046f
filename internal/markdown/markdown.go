// Package markdown converts Markdown bodies (frontmatter already removed) to HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Convert renders a Markdown body to HTML with tables, strikethrough,
// footnotes and task lists enabled. Raw HTML in the source passes through
// unchanged; content files are trusted input.
func Convert(body []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Footnote,
			extension.TaskList,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
