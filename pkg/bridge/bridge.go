/*
Package bridge is the entry point of the text core. It turns card text
blocks and rich text runs into resolved spans, using one validated host
config for every call.
*/
package bridge

import (
	"strings"
	"time"

	"github.com/flytaly/cardtext/pkg/card"
	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/parser"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/style"
	"github.com/flytaly/cardtext/pkg/textfunc"
)

type Option func(*Bridge)

// WithMeasurer sets the measurer used to truncate to MaxLines.
func WithMeasurer(m spans.LineMeasurer) Option {
	return func(b *Bridge) {
		b.measurer = m
	}
}

// WithLocation sets the time zone for DATE and TIME functions.
func WithLocation(loc *time.Location) Option {
	return func(b *Bridge) {
		b.loc = loc
	}
}

// Bridge converts card text. It only reads its config and is safe for
// concurrent use.
type Bridge struct {
	cfg      *hostconfig.HostConfig
	log      log.Logger
	measurer spans.LineMeasurer
	loc      *time.Location
}

// New validates cfg and returns a bridge using it. A nil logger discards
// messages.
func New(cfg *hostconfig.HostConfig, logger log.Logger, options ...Option) (*Bridge, error) {
	if err := hostconfig.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewEmptyLog()
	}
	b := &Bridge{
		cfg: cfg,
		log: logger,
		loc: time.UTC,
	}
	for _, opt := range options {
		opt(b)
	}
	return b, nil
}

func (b *Bridge) Config() *hostconfig.HostConfig {
	return b.cfg
}

func (b *Bridge) flattener(maxLines int) *spans.Flattener {
	return spans.New(b.cfg, spans.WithMaxLines(maxLines), spans.WithMeasurer(b.measurer))
}

// markdown parses text and expands the date and time functions found in
// its text nodes. Link targets and escaped braces are left as written.
func (b *Bridge) markdown(text string) []parser.Node {
	nodes := parser.Parse([]byte(text))
	b.expand(nodes)
	return nodes
}

func (b *Bridge) expand(nodes []parser.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *parser.Text:
			if lit := string(n.Literal); strings.Contains(lit, "{{") {
				n.Literal = []byte(textfunc.Expand(lit, b.loc))
			}
		case *parser.Emphasis:
			b.expand(n.Children)
		case *parser.Strong:
			b.expand(n.Children)
		case *parser.Link:
			b.expand(n.Children)
		}
	}
}

func (b *Bridge) finish(f *spans.Flattener, ss []spans.Span, maxLines int, what string) spans.Result {
	res := f.Finish(ss)
	if res.Truncated {
		b.log.Info("%s truncated to %d lines", what, maxLines)
	}
	return res
}

// ProcessTextBlock converts a text block: its overrides are resolved
// against the host config and its text is parsed as markdown.
func (b *Bridge) ProcessTextBlock(block card.TextBlock) spans.Result {
	base := style.Resolve(block.Overrides(), b.cfg)
	f := b.flattener(block.MaxLines)
	return b.finish(f, f.Collect(b.markdown(block.Text), base), block.MaxLines, "text block")
}

// ProcessTextRun converts a single rich text run. A nil run gives an
// empty result.
func (b *Bridge) ProcessTextRun(run *card.TextRun) spans.Result {
	if run == nil {
		return spans.Result{}
	}
	base := style.Resolve(run.Overrides(), b.cfg)
	return b.flattener(0).Finish(b.runSpans(*run, base))
}

// runSpans returns the unmerged spans of run over base. The select action
// links every span that has no link of its own.
func (b *Bridge) runSpans(run card.TextRun, base style.Resolved) []spans.Span {
	ss := b.flattener(0).Collect(b.runNodes(run), base)
	if link := run.Link(); link != "" {
		for i := range ss {
			if ss[i].Link != "" {
				continue
			}
			ss[i].Link = link
			ss[i].Style = style.Link.Apply(ss[i].Style, b.cfg)
		}
	}
	return ss
}

func (b *Bridge) runNodes(run card.TextRun) []parser.Node {
	switch run.Format {
	case card.FormatPlain:
		text := []byte(run.Text)
		return []parser.Node{&parser.Text{Leaf: parser.Leaf{Literal: text, Content: text}}}
	case card.FormatMarkup:
		return parseMarkup(run.Text)
	case card.FormatMarkdown, "":
		return b.markdown(run.Text)
	}
	b.log.Warning("unknown text run format %q, reading it as markdown", run.Format)
	return b.markdown(run.Text)
}

// TextRunFromInline extracts the run an inline stands for. Plain text
// becomes a run with default styling; anything but plain text and text
// runs is rejected with ErrInvalidInlineKind.
func TextRunFromInline(in card.Inline) (card.TextRun, error) {
	switch in.Kind {
	case card.KindPlainText:
		return card.TextRun{Text: in.Text}, nil
	case card.KindTextRun:
		if in.Run == nil {
			return card.TextRun{}, nil
		}
		run := *in.Run
		if run.IsSubtle != nil {
			subtle := *run.IsSubtle
			run.IsSubtle = &subtle
		}
		if run.SelectAction != nil {
			action := *run.SelectAction
			run.SelectAction = &action
		}
		return run, nil
	}
	return card.TextRun{}, invalidInline(in.Kind)
}

// ProcessRichTextBlock converts every inline of block and joins them into
// one result. Spans are merged across run boundaries before the block's
// line limit applies. An unsupported inline fails the whole block.
func (b *Bridge) ProcessRichTextBlock(block card.RichTextBlock) (spans.Result, error) {
	runs := make([]card.TextRun, 0, len(block.Inlines))
	for i, in := range block.Inlines {
		run, err := TextRunFromInline(in)
		if err != nil {
			b.log.Error("rich text block: inline %d: %v", i, err)
			return spans.Result{}, err
		}
		runs = append(runs, run)
	}

	element := style.Resolve(block.Overrides(), b.cfg)
	var ss []spans.Span
	for _, run := range runs {
		ss = append(ss, b.runSpans(run, element.Merge(run.Overrides(), b.cfg))...)
	}
	return b.finish(b.flattener(block.MaxLines), ss, block.MaxLines, "rich text block"), nil
}
