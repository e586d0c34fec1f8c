package style

import (
	"testing"

	"github.com/flytaly/cardtext/pkg/hostconfig"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func assertComplete(t *testing.T, r Resolved) {
	t.Helper()
	assert.NotEmpty(t, r.FontFamily)
	assert.Positive(t, r.FontSize)
	assert.Positive(t, r.FontWeight)
	assert.NotEmpty(t, r.Color)
	assert.True(t, r.Alignment.Valid())
	assert.True(t, r.FontType.Valid())
	assert.True(t, r.ColorName.Valid())
	assert.True(t, r.Size.Valid())
	assert.True(t, r.Weight.Valid())
}

func TestResolve(t *testing.T) {
	t.Run("empty overrides, nil config", func(t *testing.T) {
		r := Resolve(Overrides{}, nil)
		assert.Equal(t, Resolved{
			FontFamily: "Segoe UI",
			FontSize:   12,
			FontWeight: 400,
			Color:      "#FF000000",
			Alignment:  hostconfig.AlignLeft,
			FontType:   hostconfig.FontTypeDefault,
			ColorName:  hostconfig.ColorDefault,
			Size:       hostconfig.SizeDefault,
			Weight:     hostconfig.WeightDefault,
		}, r)
	})

	t.Run("local overrides win over host defaults", func(t *testing.T) {
		cfg := &hostconfig.HostConfig{TextDefaults: hostconfig.TextDefaults{
			Color: hostconfig.ColorGood, Size: hostconfig.SizeSmall, Wrap: boolPtr(true),
		}}
		r := Resolve(Overrides{
			Color:     hostconfig.ColorAttention,
			Weight:    hostconfig.WeightBolder,
			Alignment: hostconfig.AlignRight,
			IsSubtle:  boolPtr(true),
		}, cfg)
		assert.Equal(t, hostconfig.ColorAttention, r.ColorName)
		assert.Equal(t, "#B2FF0000", r.Color)
		assert.Equal(t, 10, r.FontSize)
		assert.Equal(t, 600, r.FontWeight)
		assert.Equal(t, hostconfig.AlignRight, r.Alignment)
		assert.True(t, r.Wrap)
		assert.True(t, r.Subtle)
	})

	t.Run("unknown names are absent", func(t *testing.T) {
		r := Resolve(Overrides{Size: "huge", Color: "purple"}, nil)
		assert.Equal(t, hostconfig.SizeDefault, r.Size)
		assert.Equal(t, hostconfig.ColorDefault, r.ColorName)
	})

	t.Run("monospace", func(t *testing.T) {
		r := Resolve(Overrides{FontType: hostconfig.FontTypeMonospace, Size: hostconfig.SizeExtraLarge}, nil)
		assert.Equal(t, "Courier New", r.FontFamily)
		assert.Equal(t, 20, r.FontSize)
	})

	t.Run("totality", func(t *testing.T) {
		configs := []*hostconfig.HostConfig{nil, {}, hostconfig.Builtin(), {
			FontTypes: hostconfig.FontTypesConfig{Monospace: hostconfig.FontTypeConfig{FontFamily: "Mono"}},
			Link:      hostconfig.LinkStyle{Enabled: boolPtr(false)},
		}}
		for _, cfg := range configs {
			for _, c := range append(hostconfig.Colors, "") {
				for _, s := range append(hostconfig.Sizes, "") {
					for _, w := range append(hostconfig.Weights, "") {
						for _, ft := range append(hostconfig.FontTypes, "") {
							r := Resolve(Overrides{Color: c, Size: s, Weight: w, FontType: ft}, cfg)
							assertComplete(t, r)
						}
					}
				}
			}
		}
	})
}

func TestMergeAndOverrides(t *testing.T) {
	base := Resolve(Overrides{Size: hostconfig.SizeLarge, Color: hostconfig.ColorGood}, nil)
	assert.Equal(t, base, Resolve(base.Overrides(), nil))

	merged := base.Merge(Overrides{Color: hostconfig.ColorWarning, Italic: true}, nil)
	assert.Equal(t, hostconfig.SizeLarge, merged.Size)
	assert.Equal(t, "#FFFFD700", merged.Color)
	assert.True(t, merged.Italic)
}

func TestDelta(t *testing.T) {
	base := Resolve(Overrides{}, nil)

	t.Run("italic", func(t *testing.T) {
		s := Italic.Apply(base, nil)
		assert.True(t, s.Italic)
		assert.Equal(t, base.FontWeight, s.FontWeight)
	})

	t.Run("bold", func(t *testing.T) {
		cfg := &hostconfig.HostConfig{}
		cfg.FontTypes.Default.FontWeights.Bolder = 800
		s := Bold.Apply(base, cfg)
		assert.Equal(t, hostconfig.WeightBolder, s.Weight)
		assert.Equal(t, 800, s.FontWeight)
	})

	t.Run("link", func(t *testing.T) {
		s := Link.Apply(base, nil)
		assert.Equal(t, hostconfig.ColorAccent, s.ColorName)
		assert.Equal(t, "#FF0000FF", s.Color)
		assert.True(t, s.Underline)
	})

	t.Run("link disabled", func(t *testing.T) {
		cfg := &hostconfig.HostConfig{Link: hostconfig.LinkStyle{Enabled: boolPtr(false)}}
		assert.Equal(t, base, Link.Apply(base, cfg))
	})

	t.Run("fold", func(t *testing.T) {
		s := Fold(base, []Delta{Bold, Italic}, nil)
		assert.True(t, s.Italic)
		assert.Equal(t, hostconfig.WeightBolder, s.Weight)
		assert.Equal(t, "bold", Bold.String())
	})
}
