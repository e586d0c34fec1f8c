/*
Package spans flattens a parsed markdown tree into the flat, fully styled
span list handed to renderers.
*/
package spans

import (
	"strings"
	"unicode/utf8"

	"github.com/flytaly/cardtext/pkg/style"
)

// Span is a run of text with one resolved style. A Break span has no text
// and tells the renderer to start a new line.
type Span struct {
	Text  string
	Style style.Resolved
	Link  string
	Break bool
}

// Len is the number of runes the span occupies. Break spans occupy none.
func (s Span) Len() int {
	if s.Break {
		return 0
	}
	return utf8.RuneCountInString(s.Text)
}

func (s Span) mergeable(next Span) bool {
	return !s.Break && !next.Break && s.Link == next.Link && s.Style == next.Style
}

// Result is the output of a conversion.
type Result struct {
	Spans     []Span
	Truncated bool
}

// Text concatenates the span texts, writing forced breaks as newlines.
func (r Result) Text() string {
	var sb strings.Builder
	for _, s := range r.Spans {
		if s.Break {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Merge drops empty text spans and joins neighbours that share style and
// link and have no break between them. The input is not modified.
func Merge(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.Break && s.Text == "" {
			continue
		}
		if last := len(out) - 1; last >= 0 && out[last].mergeable(s) {
			out[last].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
