/*
Package source reads the files the command line renders. A ".json" file
holds a rich text block in card JSON. Any other file is markdown text
whose element styling sits in YAML front matter:

	---
	color: accent
	size: large
	maxLines: 2
	---
	Hello **world**

Setting "format" in the front matter renders the body as a single text
run in that format instead of a text block.
*/
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/flytaly/cardtext/pkg/bridge"
	"github.com/flytaly/cardtext/pkg/card"
	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/spans"
)

type frontMatter struct {
	Color     string `yaml:"color"`
	Size      string `yaml:"size"`
	Weight    string `yaml:"weight"`
	FontType  string `yaml:"fontType"`
	Alignment string `yaml:"horizontalAlignment"`
	IsSubtle  *bool  `yaml:"isSubtle"`
	Wrap      *bool  `yaml:"wrap"`
	MaxLines  int    `yaml:"maxLines"`
	Format    string `yaml:"format"`
}

// Document is a parsed source file. Exactly one of Block, Run and Rich is
// used: Rich for JSON files, Run when a format is given, Block otherwise.
type Document struct {
	Name  string
	Block card.TextBlock
	Run   *card.TextRun
	Rich  *card.RichTextBlock
}

func Load(fsys fs.FS, name string) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes data, choosing the form by the extension of name.
func Parse(name string, data []byte) (*Document, error) {
	doc := &Document{Name: name}
	if strings.EqualFold(path.Ext(name), ".json") {
		var rich card.RichTextBlock
		if err := json.Unmarshal(data, &rich); err != nil {
			return nil, fmt.Errorf("source: %s: %w", name, err)
		}
		doc.Rich = &rich
		return doc, nil
	}

	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("source: %s: parse frontmatter: %w", name, err)
	}
	block, err := meta.block(string(body))
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, err)
	}
	doc.Block = block

	if meta.Format != "" {
		format := card.Format(strings.ToLower(meta.Format))
		switch format {
		case card.FormatMarkdown, card.FormatMarkup, card.FormatPlain:
		default:
			return nil, fmt.Errorf("source: %s: unknown format %q", name, meta.Format)
		}
		doc.Run = &card.TextRun{
			Text:     block.Text,
			Format:   format,
			Color:    block.Color,
			Size:     block.Size,
			Weight:   block.Weight,
			FontType: block.FontType,
			IsSubtle: block.IsSubtle,
		}
	}
	return doc, nil
}

func (m frontMatter) block(text string) (card.TextBlock, error) {
	b := card.TextBlock{
		Text:     strings.TrimRight(text, "\n"),
		IsSubtle: m.IsSubtle,
		Wrap:     m.Wrap,
		MaxLines: m.MaxLines,
	}
	var err error
	if m.Color != "" {
		if b.Color, err = hostconfig.ParseColor(m.Color); err != nil {
			return b, err
		}
	}
	if m.Size != "" {
		if b.Size, err = hostconfig.ParseSize(m.Size); err != nil {
			return b, err
		}
	}
	if m.Weight != "" {
		if b.Weight, err = hostconfig.ParseWeight(m.Weight); err != nil {
			return b, err
		}
	}
	if m.FontType != "" {
		if b.FontType, err = hostconfig.ParseFontType(m.FontType); err != nil {
			return b, err
		}
	}
	if m.Alignment != "" {
		if b.HorizontalAlignment, err = hostconfig.ParseAlignment(m.Alignment); err != nil {
			return b, err
		}
	}
	return b, nil
}

// Render converts the document with b.
func (d *Document) Render(b *bridge.Bridge) (spans.Result, error) {
	switch {
	case d.Rich != nil:
		return b.ProcessRichTextBlock(*d.Rich)
	case d.Run != nil:
		return b.ProcessRichTextBlock(card.RichTextBlock{
			Inlines:             []card.Inline{card.Run(*d.Run)},
			HorizontalAlignment: d.Block.HorizontalAlignment,
			MaxLines:            d.Block.MaxLines,
		})
	}
	return b.ProcessTextBlock(d.Block), nil
}

// Options configure RenderFile.
type Options struct {
	// ConfigPath is a host config in YAML or JSON. Empty uses the
	// built-in defaults.
	ConfigPath string
	// Width is the column width used to truncate to maxLines.
	Width    int
	Logger   log.Logger
	Location *time.Location
}

// LoadConfig reads the host config at p, or returns the built-in
// defaults for an empty path.
func LoadConfig(p string) (*hostconfig.HostConfig, error) {
	if p == "" {
		return hostconfig.Builtin(), nil
	}
	dir, file := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return hostconfig.Load(os.DirFS(dir), file)
}

// RenderFile loads the host config and the source file at p and renders
// it.
func RenderFile(opts Options, p string) (spans.Result, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return spans.Result{}, err
	}
	b, err := bridge.New(cfg, opts.Logger,
		bridge.WithMeasurer(spans.ColumnMeasurer{Width: opts.Width}),
		bridge.WithLocation(opts.Location))
	if err != nil {
		return spans.Result{}, err
	}

	dir, file := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	doc, err := Load(os.DirFS(dir), file)
	if err != nil {
		return spans.Result{}, err
	}
	return doc.Render(b)
}
