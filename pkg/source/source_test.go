package source

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flytaly/cardtext/pkg/bridge"
	"github.com/flytaly/cardtext/pkg/card"
	"github.com/flytaly/cardtext/pkg/hostconfig"
)

func TestParse(t *testing.T) {
	t.Run("text block", func(t *testing.T) {
		doc, err := Parse("card.md", []byte("---\ncolor: Accent\nsize: large\nisSubtle: true\nmaxLines: 2\nhorizontalAlignment: center\n---\nHello **world**\n"))
		require.NoError(t, err)
		assert.Nil(t, doc.Run)
		assert.Nil(t, doc.Rich)
		assert.Equal(t, "Hello **world**", doc.Block.Text)
		assert.Equal(t, hostconfig.ColorAccent, doc.Block.Color)
		assert.Equal(t, hostconfig.SizeLarge, doc.Block.Size)
		assert.Equal(t, hostconfig.AlignCenter, doc.Block.HorizontalAlignment)
		require.NotNil(t, doc.Block.IsSubtle)
		assert.True(t, *doc.Block.IsSubtle)
		assert.Equal(t, 2, doc.Block.MaxLines)
	})

	t.Run("no front matter", func(t *testing.T) {
		doc, err := Parse("card.md", []byte("*just text*"))
		require.NoError(t, err)
		assert.Equal(t, card.TextBlock{Text: "*just text*"}, doc.Block)
	})

	t.Run("format", func(t *testing.T) {
		doc, err := Parse("card.md", []byte("---\nformat: Markup\nweight: bolder\n---\n<i>x</i>"))
		require.NoError(t, err)
		require.NotNil(t, doc.Run)
		assert.Equal(t, card.FormatMarkup, doc.Run.Format)
		assert.Equal(t, hostconfig.WeightBolder, doc.Run.Weight)
		assert.Equal(t, "<i>x</i>", doc.Run.Text)
	})

	t.Run("rich text json", func(t *testing.T) {
		doc, err := Parse("card.JSON", []byte(`{"inlines": ["a", {"type": "TextRun", "text": "b"}]}`))
		require.NoError(t, err)
		require.NotNil(t, doc.Rich)
		assert.Len(t, doc.Rich.Inlines, 2)
	})

	errs := map[string]struct{ name, src string }{
		"unknown color":  {"card.md", "---\ncolor: purple\n---\nx"},
		"unknown size":   {"card.md", "---\nsize: huge\n---\nx"},
		"unknown format": {"card.md", "---\nformat: rtf\n---\nx"},
		"bad yaml":       {"card.md", "---\ncolor: [\n---\nx"},
		"bad json":       {"card.json", "{"},
	}
	for name, tt := range errs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.name, []byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	fsys := fstest.MapFS{
		"block.md": {Data: []byte("---\nmaxLines: 1\n---\none  \ntwo")},
		"run.md":   {Data: []byte("---\nformat: plain\n---\n**x**")},
		"rich.json": {Data: []byte(`{"inlines": ["a ", {"type": "TextRun", "text": "b", "italic": true}]}`)},
		"bad.json":  {Data: []byte(`{"inlines": [{"type": "Image"}]}`)},
	}
	b, err := bridge.New(hostconfig.Builtin(), nil)
	require.NoError(t, err)

	render := func(name string) (string, bool, error) {
		doc, err := Load(fsys, name)
		require.NoError(t, err)
		r, err := doc.Render(b)
		return r.Text(), r.Truncated, err
	}

	text, truncated, err := render("block.md")
	require.NoError(t, err)
	assert.Equal(t, "one", text)
	assert.True(t, truncated)

	text, _, err = render("run.md")
	require.NoError(t, err)
	assert.Equal(t, "**x**", text)

	text, _, err = render("rich.json")
	require.NoError(t, err)
	assert.Equal(t, "a b", text)

	_, _, err = render("bad.json")
	assert.ErrorIs(t, err, bridge.ErrInvalidInlineKind)

	_, err = Load(fsys, "missing.md")
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "card.md")
	cfgPath := filepath.Join(dir, "host.yaml")
	require.NoError(t, os.WriteFile(src, []byte("---\ncolor: good\nmaxLines: 1\n---\nabcdef"), 0o644))
	require.NoError(t, os.WriteFile(cfgPath, []byte("foregroundColors:\n  good:\n    default: \"#FF00AA00\"\n"), 0o644))

	r, err := RenderFile(Options{ConfigPath: cfgPath, Width: 4}, src)
	require.NoError(t, err)
	require.Len(t, r.Spans, 1)
	assert.Equal(t, "abcd", r.Spans[0].Text)
	assert.Equal(t, "#FF00AA00", r.Spans[0].Style.Color)
	assert.True(t, r.Truncated)

	r, err = RenderFile(Options{}, src)
	require.NoError(t, err)
	assert.Equal(t, "#FF008000", r.Spans[0].Style.Color)

	require.NoError(t, os.WriteFile(cfgPath, []byte("lineBreaks: sometimes\n"), 0o644))
	_, err = RenderFile(Options{ConfigPath: cfgPath}, src)
	assert.ErrorIs(t, err, hostconfig.ErrMissingRequiredConfig)

	_, err = RenderFile(Options{ConfigPath: filepath.Join(dir, "nope.yaml")}, src)
	assert.Error(t, err)
}
