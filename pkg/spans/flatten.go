package spans

import (
	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/parser"
	"github.com/flytaly/cardtext/pkg/style"
)

type Option func(*Flattener)

// WithMaxLines limits the result to n lines. 0 means unlimited.
func WithMaxLines(n int) Option {
	return func(f *Flattener) {
		f.maxLines = n
	}
}

// WithMeasurer sets the measurer deciding where truncation cuts.
func WithMeasurer(m LineMeasurer) Option {
	return func(f *Flattener) {
		if m != nil {
			f.measurer = m
		}
	}
}

// Flattener turns node trees into spans. It holds no state between calls
// and is safe for concurrent use.
type Flattener struct {
	cfg      *hostconfig.HostConfig
	maxLines int
	measurer LineMeasurer
}

func New(cfg *hostconfig.HostConfig, options ...Option) *Flattener {
	f := &Flattener{
		cfg:      cfg,
		measurer: ColumnMeasurer{},
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// Flatten converts nodes rendered over base into a merged and, when a line
// limit is set, truncated result.
func (f *Flattener) Flatten(nodes []parser.Node, base style.Resolved) Result {
	return f.Finish(f.Collect(nodes, base))
}

// Collect walks nodes depth first and returns one span per text node and
// line break, unmerged.
func (f *Flattener) Collect(nodes []parser.Node, base style.Resolved) []Span {
	w := walker{cfg: f.cfg, base: base, policy: f.cfg.LineBreakPolicy()}
	w.walk(nodes)
	return w.spans
}

// Finish merges spans and applies the line limit.
func (f *Flattener) Finish(spans []Span) Result {
	spans = Merge(spans)
	if f.maxLines <= 0 {
		return Result{Spans: spans}
	}
	cut, ok := f.measurer.CutPoint(spans, f.maxLines)
	if !ok {
		return Result{Spans: spans}
	}
	return Result{Spans: Truncate(spans, cut), Truncated: true}
}

// Truncate drops everything at or after rune offset cut, splitting the
// span that straddles it.
func Truncate(spans []Span, cut int) []Span {
	out := make([]Span, 0, len(spans))
	offset := 0
	for _, s := range spans {
		if offset >= cut {
			break
		}
		n := s.Len()
		if offset+n > cut {
			s.Text = string([]rune(s.Text)[:cut-offset])
		}
		out = append(out, s)
		offset += n
	}
	return out
}

type walker struct {
	cfg    *hostconfig.HostConfig
	base   style.Resolved
	policy hostconfig.LineBreakPolicy

	deltas []style.Delta
	link   string
	spans  []Span
}

func (w *walker) current() style.Resolved {
	return style.Fold(w.base, w.deltas, w.cfg)
}

func (w *walker) emit(text string) {
	w.spans = append(w.spans, Span{Text: text, Style: w.current(), Link: w.link})
}

func (w *walker) within(d style.Delta, children []parser.Node) {
	w.deltas = append(w.deltas, d)
	w.walk(children)
	w.deltas = w.deltas[:len(w.deltas)-1]
}

func (w *walker) walk(nodes []parser.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *parser.Text:
			w.emit(string(n.Literal))

		case *parser.LineBreak:
			if w.policy == hostconfig.LineBreakNewline {
				w.emit("\n")
				continue
			}
			w.spans = append(w.spans, Span{Style: w.current(), Link: w.link, Break: true})

		case *parser.Emphasis:
			w.within(style.Italic, n.Children)

		case *parser.Strong:
			w.within(style.Bold, n.Children)

		case *parser.Link:
			outer := w.link
			w.link = string(n.Destination)
			w.within(style.Link, n.Children)
			w.link = outer
		}
	}
}
