package termview

import (
	"testing"

	"github.com/gookit/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/style"
)

func noColor(t *testing.T) {
	old := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = old })
}

func TestPaintLayout(t *testing.T) {
	noColor(t)
	plain := style.Resolve(style.Overrides{}, nil)
	center := style.Resolve(style.Overrides{Alignment: hostconfig.AlignCenter}, nil)
	right := style.Resolve(style.Overrides{Alignment: hostconfig.AlignRight}, nil)

	tests := []struct {
		name string
		r    spans.Result
		opts Options
		want string
	}{
		{
			name: "breaks",
			r:    spans.Result{Spans: []spans.Span{{Text: "a", Style: plain}, {Break: true}, {Text: "b\nc", Style: plain}}},
			want: "a\nb\nc",
		},
		{
			name: "wrap",
			r:    spans.Result{Spans: []spans.Span{{Text: "abcdef", Style: plain}}},
			opts: Options{Width: 4},
			want: "abcd\nef",
		},
		{
			name: "center",
			r:    spans.Result{Spans: []spans.Span{{Text: "ab", Style: center}}},
			opts: Options{Width: 6},
			want: "  ab",
		},
		{
			name: "right wide runes",
			r:    spans.Result{Spans: []spans.Span{{Text: "日本", Style: right}}},
			opts: Options{Width: 6},
			want: "  日本",
		},
		{
			name: "links",
			r: spans.Result{Spans: []spans.Span{
				{Text: "go", Style: plain, Link: "u"},
				{Text: "!", Style: style.Bold.Apply(plain, nil), Link: "u"},
				{Text: " x", Style: plain},
			}},
			opts: Options{Links: true},
			want: "go! <u> x",
		},
		{
			name: "truncated",
			r:    spans.Result{Spans: []spans.Span{{Text: "a", Style: plain}}, Truncated: true},
			want: "a…",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paint(tt.r, tt.opts))
		})
	}
}

func TestForeground(t *testing.T) {
	st := style.Resolve(style.Overrides{Color: hostconfig.ColorAttention}, nil)
	assert.Equal(t, "#ff0000", Foreground(st, false).Hex())

	subtle := true
	st = style.Resolve(style.Overrides{IsSubtle: &subtle}, nil)
	c := Foreground(st, false)
	want := colorful.Color{R: 1, G: 1, B: 1}.BlendRgb(colorful.Color{}, float64(0xB2)/255)
	assert.InDelta(t, want.R, c.R, 1e-9)

	st = style.Resolve(style.Overrides{}, nil)
	_, _, l := Foreground(st, true).Hcl()
	assert.Greater(t, l, 0.9, "default text is light on dark terminals")

	st.Color = "not a color"
	assert.Equal(t, "#000000", Foreground(st, false).Hex())
}
