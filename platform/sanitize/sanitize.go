// Package sanitize strips markup from user-supplied text before it is stored and
// shared publicly.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripHTML returns the text content of s with tags removed and entities decoded.
// Script and style bodies are dropped entirely. Entity-encoded markup is stripped
// as well, so "&lt;b&gt;hi&lt;/b&gt;" becomes "hi".
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	text := textContent(s)
	if strings.Contains(text, "<") {
		text = textContent(text)
	}
	return strings.TrimSpace(text)
}

// Text sanitizes a free-text field such as a customer name, job description or note.
func Text(s string) string {
	return StripHTML(s)
}

func textContent(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skipping := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; keep what was read
			return b.String()
		case html.TextToken:
			if !skipping {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); a == atom.Script || a == atom.Style {
				skipping = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); a == atom.Script || a == atom.Style {
				skipping = false
			}
		}
	}
}
