package bridge

import (
	"github.com/flytaly/cardtext/pkg/card"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/style"
)

// RichTextElementStyle is the resolved style of one element, kept so runs
// of that element can be rendered without resolving it again.
type RichTextElementStyle struct {
	Style    style.Resolved
	MaxLines int
}

// ElementStyle resolves the style of block once.
func (b *Bridge) ElementStyle(block card.TextBlock) RichTextElementStyle {
	return RichTextElementStyle{
		Style:    style.Resolve(block.Overrides(), b.cfg),
		MaxLines: block.MaxLines,
	}
}

// Run returns a text run that carries the element's style names, so the
// run resolves to the same style on its own.
func (s RichTextElementStyle) Run(text string) card.TextRun {
	o := s.Style.Overrides()
	return card.TextRun{
		Text:          text,
		Color:         o.Color,
		Size:          o.Size,
		Weight:        o.Weight,
		FontType:      o.FontType,
		IsSubtle:      o.IsSubtle,
		Italic:        o.Italic,
		Strikethrough: o.Strikethrough,
		Underline:     o.Underline,
		Highlight:     o.Highlight,
	}
}

// ProcessStyledRun converts markdown text over an already resolved style.
func (b *Bridge) ProcessStyledRun(s RichTextElementStyle, text string) spans.Result {
	f := b.flattener(s.MaxLines)
	return b.finish(f, f.Collect(b.markdown(text), s.Style), s.MaxLines, "styled run")
}
