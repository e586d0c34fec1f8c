/*
Package card holds the card elements the text core converts: text blocks,
rich text blocks and their inlines. Field names and JSON tags follow the
card document format.
*/
package card

import (
	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/style"
)

// TextBlock is a block of markdown text with element-level styling.
type TextBlock struct {
	Text                string               `json:"text"`
	Color               hostconfig.Color     `json:"color,omitempty"`
	Size                hostconfig.Size      `json:"size,omitempty"`
	Weight              hostconfig.Weight    `json:"weight,omitempty"`
	FontType            hostconfig.FontType  `json:"fontType,omitempty"`
	IsSubtle            *bool                `json:"isSubtle,omitempty"`
	HorizontalAlignment hostconfig.Alignment `json:"horizontalAlignment,omitempty"`
	Wrap                *bool                `json:"wrap,omitempty"`
	MaxLines            int                  `json:"maxLines,omitempty"`
}

func (b TextBlock) Overrides() style.Overrides {
	return style.Overrides{
		Color:     b.Color,
		Size:      b.Size,
		Weight:    b.Weight,
		FontType:  b.FontType,
		Alignment: b.HorizontalAlignment,
		IsSubtle:  b.IsSubtle,
		Wrap:      b.Wrap,
	}
}

// Format says how the text of a run is written.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatMarkup   Format = "markup"
	FormatPlain    Format = "plain"
)

// Action is the action invoked when a run is selected. Only its URL is
// used for text.
type Action struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// TextRun is one run of a rich text block. An empty Format means
// markdown.
type TextRun struct {
	Text     string              `json:"text"`
	Format   Format              `json:"format,omitempty"`
	Color    hostconfig.Color    `json:"color,omitempty"`
	Size     hostconfig.Size     `json:"size,omitempty"`
	Weight   hostconfig.Weight   `json:"weight,omitempty"`
	FontType hostconfig.FontType `json:"fontType,omitempty"`
	IsSubtle *bool               `json:"isSubtle,omitempty"`

	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Highlight     bool `json:"highlight,omitempty"`

	SelectAction *Action `json:"selectAction,omitempty"`
}

func (r TextRun) Overrides() style.Overrides {
	return style.Overrides{
		Color:         r.Color,
		Size:          r.Size,
		Weight:        r.Weight,
		FontType:      r.FontType,
		IsSubtle:      r.IsSubtle,
		Italic:        r.Italic,
		Strikethrough: r.Strikethrough,
		Underline:     r.Underline,
		Highlight:     r.Highlight,
	}
}

// Link returns the URL of the run's select action, if any.
func (r TextRun) Link() string {
	if r.SelectAction == nil {
		return ""
	}
	return r.SelectAction.URL
}

// RichTextBlock is an ordered list of inlines rendered as one paragraph.
type RichTextBlock struct {
	Inlines             []Inline             `json:"inlines"`
	HorizontalAlignment hostconfig.Alignment `json:"horizontalAlignment,omitempty"`
	MaxLines            int                  `json:"maxLines,omitempty"`
}

func (b RichTextBlock) Overrides() style.Overrides {
	return style.Overrides{Alignment: b.HorizontalAlignment}
}
