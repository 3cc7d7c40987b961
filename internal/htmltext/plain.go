// Package htmltext turns story bodies into terminal-friendly plain text.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements end the current paragraph.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "blockquote": true, "pre": true,
	"table": true, "tr": true,
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"script": true, "style": true, "head": true, "noscript": true,
}

// PlainText converts an HTML fragment into paragraphs separated by blank
// lines. Plain input without markup passes through with whitespace
// normalized.
func PlainText(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	w := &paragraphWriter{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			w.text(n.Data)
			return
		}

		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)
			if skippedElements[tag] {
				return
			}
			switch {
			case tag == "br":
				w.lineBreak()
				return
			case tag == "li":
				w.paragraph()
				w.text("• ")
			case blockElements[tag]:
				w.paragraph()
			}

			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}

			if blockElements[tag] {
				w.paragraph()
			}
			return
		}

		// Recurse into document and other container nodes
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return w.String(), nil
}

// paragraphWriter collapses whitespace and tracks paragraph boundaries.
type paragraphWriter struct {
	paragraphs []string
	current    strings.Builder
	pendingSp  bool // whitespace seen since the last word
}

func (w *paragraphWriter) text(s string) {
	if s == "" {
		return
	}
	if isSpace(rune(s[0])) {
		w.pendingSp = true
	}
	for _, field := range strings.FieldsFunc(s, isSpace) {
		if w.pendingSp && w.current.Len() > 0 && !endsWithBreak(&w.current) {
			w.current.WriteByte(' ')
		}
		w.current.WriteString(field)
		w.pendingSp = false
	}
	if isSpace(rune(s[len(s)-1])) {
		w.pendingSp = true
	}
}

func (w *paragraphWriter) lineBreak() {
	w.current.WriteByte('\n')
	w.pendingSp = false
}

func (w *paragraphWriter) paragraph() {
	text := strings.TrimSpace(w.current.String())
	if text != "" {
		w.paragraphs = append(w.paragraphs, text)
	}
	w.current.Reset()
	w.pendingSp = false
}

func (w *paragraphWriter) String() string {
	w.paragraph()
	return strings.Join(w.paragraphs, "\n\n")
}

func endsWithBreak(b *strings.Builder) bool {
	s := b.String()
	return s[len(s)-1] == '\n'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
