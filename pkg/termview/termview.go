/*
Package termview paints span results on a terminal with 24-bit color. It
is a preview of what a renderer receives, not a renderer: sizes and font
families are not shown.
*/
package termview

import (
	"strings"

	"github.com/gookit/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/style"
)

var (
	lightBackground = colorful.Color{R: 1, G: 1, B: 1}
	darkBackground  = colorful.Color{R: 0.12, G: 0.12, B: 0.12}
	highlight       = colorful.Color{R: 1, G: 0.95, B: 0.5}
)

type Options struct {
	// Width wraps lines at that many cells, 0 disables wrapping.
	Width int
	// Dark inverts palette lightness for dark terminals.
	Dark bool
	// Links appends the target after linked text.
	Links bool
}

type segment struct {
	text string
	span spans.Span
}

type line struct {
	segs  []segment
	width int
}

// Paint renders r. Lines are aligned within Width by the alignment of
// their first span.
func Paint(r spans.Result, opts Options) string {
	lines := layout(r.Spans, opts)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", indent(l, opts.Width)))
		for _, s := range l.segs {
			sb.WriteString(paint(s, opts))
		}
		out = append(out, sb.String())
	}
	res := strings.Join(out, "\n")
	if r.Truncated {
		res += color.Gray.Sprint("…")
	}
	return res
}

func layout(ss []spans.Span, opts Options) []line {
	lines := []line{{}}
	cur := func() *line { return &lines[len(lines)-1] }
	add := func(text string, s spans.Span, w int) {
		l := cur()
		if n := len(l.segs); n > 0 && l.segs[n-1].span == s {
			l.segs[n-1].text += text
		} else {
			l.segs = append(l.segs, segment{text: text, span: s})
		}
		l.width += w
	}

	for i, s := range ss {
		if s.Break {
			lines = append(lines, line{})
			continue
		}
		for _, r := range s.Text {
			if r == '\n' {
				lines = append(lines, line{})
				continue
			}
			w := runewidth.RuneWidth(r)
			if opts.Width > 0 && cur().width > 0 && cur().width+w > opts.Width {
				lines = append(lines, line{})
			}
			add(string(r), s, w)
		}
		if opts.Links && s.Link != "" && (i+1 == len(ss) || ss[i+1].Link != s.Link) {
			note := spans.Span{Style: s.Style}
			note.Style.Italic, note.Style.Underline = false, false
			text := " <" + s.Link + ">"
			add(text, note, runewidth.StringWidth(text))
		}
	}
	return lines
}

func indent(l line, width int) int {
	if width <= 0 || l.width >= width || len(l.segs) == 0 {
		return 0
	}
	switch l.segs[0].span.Style.Alignment {
	case hostconfig.AlignCenter:
		return (width - l.width) / 2
	case hostconfig.AlignRight:
		return width - l.width
	}
	return 0
}

func paint(s segment, opts Options) string {
	st := s.span.Style
	c := Foreground(st, opts.Dark)
	fg := color.RGB(rgb(c))

	var rs *color.RGBStyle
	if st.Highlight {
		r, g, b := highlight.RGB255()
		rs = color.NewRGBStyle(fg, color.RGB(r, g, b, true))
	} else {
		rs = color.NewRGBStyle(fg)
	}
	rs.AddOpts(options(st)...)
	return rs.Sprint(s.text)
}

func options(st style.Resolved) []color.Color {
	var opts []color.Color
	if st.FontWeight >= 600 {
		opts = append(opts, color.OpBold)
	}
	if st.Italic {
		opts = append(opts, color.OpItalic)
	}
	if st.Underline {
		opts = append(opts, color.OpUnderscore)
	}
	if st.Strikethrough {
		opts = append(opts, color.OpStrikethrough)
	}
	return opts
}

// Foreground is the opaque terminal color for st: the palette value
// blended over the background by its alpha. In dark mode the lightness is
// inverted first so the default palette stays readable. Highlighted text
// is always drawn over the highlight color.
func Foreground(st style.Resolved, dark bool) colorful.Color {
	c, alpha, err := hostconfig.ParseHex(st.Color)
	if err != nil {
		c, alpha = colorful.Color{}, 1
	}
	bg := lightBackground
	if dark && !st.Highlight {
		h, chroma, l := c.Hcl()
		c = colorful.Hcl(h, chroma, 1-l).Clamped()
		bg = darkBackground
	}
	if st.Highlight {
		bg = highlight
	}
	return bg.BlendRgb(c, alpha).Clamped()
}

func rgb(c colorful.Color) (uint8, uint8, uint8) {
	return c.RGB255()
}
