package site

import (
	"strings"

	"golang.org/x/net/html"
)

// summarize extracts plain text from an HTML fragment, collapsing whitespace
// and truncating at a rune limit on a word boundary.
func summarize(fragment string, limit int) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(z.Text())
		}
	}

	text := strings.Join(strings.Fields(sb.String()), " ")
	if len([]rune(text)) <= limit {
		return text
	}

	runes := []rune(text)[:limit]
	if idx := strings.LastIndex(string(runes), " "); idx > 0 {
		return string(runes)[:idx] + "…"
	}
	return string(runes) + "…"
}
