package spans

import (
	"github.com/mattn/go-runewidth"
)

// LineMeasurer decides where text stops fitting in maxLines lines.
// CutPoint returns the rune offset, counted over the concatenated span
// texts, at which the first line past maxLines begins, and false when
// everything fits. Break spans occupy no offset.
type LineMeasurer interface {
	CutPoint(spans []Span, maxLines int) (cut int, ok bool)
}

// ColumnMeasurer lays text out in lines of Width terminal cells, wrapping
// greedily at rune boundaries. Forced breaks and newlines always start a
// new line. Width 0 means only explicit breaks end a line.
type ColumnMeasurer struct {
	Width int
}

type cell struct {
	offset  int
	width   int
	newline bool
}

func cells(spans []Span) []cell {
	var out []cell
	offset := 0
	for _, s := range spans {
		if s.Break {
			out = append(out, cell{offset: offset, newline: true})
			continue
		}
		for _, r := range s.Text {
			if r == '\n' {
				out = append(out, cell{offset: offset, newline: true})
			} else {
				out = append(out, cell{offset: offset, width: runewidth.RuneWidth(r)})
			}
			offset++
		}
	}
	return out
}

func (m ColumnMeasurer) CutPoint(spans []Span, maxLines int) (int, bool) {
	if maxLines <= 0 {
		return 0, false
	}
	cs := cells(spans)
	line, col := 1, 0
	for i, c := range cs {
		if c.newline {
			if line == maxLines {
				return c.offset, hasText(cs[i+1:])
			}
			line++
			col = 0
			continue
		}
		if m.Width > 0 && col > 0 && col+c.width > m.Width {
			if line == maxLines {
				return c.offset, true
			}
			line++
			col = 0
		}
		col += c.width
	}
	return 0, false
}

func hasText(cs []cell) bool {
	for _, c := range cs {
		if !c.newline {
			return true
		}
	}
	return false
}
