package hostconfig

import (
	"fmt"
	"strings"
)

// Color names an entry of the foreground palette.
type Color string

const (
	ColorDefault   Color = "default"
	ColorDark      Color = "dark"
	ColorLight     Color = "light"
	ColorAccent    Color = "accent"
	ColorGood      Color = "good"
	ColorWarning   Color = "warning"
	ColorAttention Color = "attention"
)

// Size names an entry of the font size table.
type Size string

const (
	SizeSmall      Size = "small"
	SizeDefault    Size = "default"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extraLarge"
)

// Weight names an entry of the font weight table.
type Weight string

const (
	WeightLighter Weight = "lighter"
	WeightDefault Weight = "default"
	WeightBolder  Weight = "bolder"
)

type FontType string

const (
	FontTypeDefault   FontType = "default"
	FontTypeMonospace FontType = "monospace"
)

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// LineBreakPolicy tells the flattener how explicit line breaks reach the renderer.
type LineBreakPolicy string

const (
	// LineBreakForced emits a zero-width span flagged as a forced break.
	LineBreakForced LineBreakPolicy = "forced"
	// LineBreakNewline emits a "\n" text run for renderers without a break primitive.
	LineBreakNewline LineBreakPolicy = "newline"
)

var (
	Colors     = []Color{ColorDefault, ColorDark, ColorLight, ColorAccent, ColorGood, ColorWarning, ColorAttention}
	Sizes      = []Size{SizeSmall, SizeDefault, SizeMedium, SizeLarge, SizeExtraLarge}
	Weights    = []Weight{WeightLighter, WeightDefault, WeightBolder}
	FontTypes  = []FontType{FontTypeDefault, FontTypeMonospace}
	Alignments = []Alignment{AlignLeft, AlignCenter, AlignRight}
	Policies   = []LineBreakPolicy{LineBreakForced, LineBreakNewline}
)

// canonical maps s case-insensitively onto a known name, or returns it
// trimmed when nothing matches so validation can report it later.
func canonical[T ~string](s string, known []T) T {
	s = strings.TrimSpace(s)
	for _, k := range known {
		if strings.EqualFold(string(k), s) {
			return k
		}
	}
	return T(s)
}

func parseName[T ~string](kind string, s string, known []T) (T, error) {
	v := canonical(s, known)
	if !isKnown(v, known) {
		return "", fmt.Errorf("unknown %s %q", kind, s)
	}
	return v, nil
}

func isKnown[T ~string](v T, known []T) bool {
	for _, k := range known {
		if k == v {
			return true
		}
	}
	return false
}

func values[T ~string](known []T) []interface{} {
	out := make([]interface{}, len(known))
	for i, k := range known {
		out[i] = k
	}
	return out
}

func ParseColor(s string) (Color, error)       { return parseName("color", s, Colors) }
func ParseSize(s string) (Size, error)         { return parseName("size", s, Sizes) }
func ParseWeight(s string) (Weight, error)     { return parseName("weight", s, Weights) }
func ParseFontType(s string) (FontType, error) { return parseName("font type", s, FontTypes) }
func ParseAlignment(s string) (Alignment, error) {
	return parseName("alignment", s, Alignments)
}

func (c Color) Valid() bool           { return isKnown(c, Colors) }
func (s Size) Valid() bool            { return isKnown(s, Sizes) }
func (w Weight) Valid() bool          { return isKnown(w, Weights) }
func (f FontType) Valid() bool        { return isKnown(f, FontTypes) }
func (a Alignment) Valid() bool       { return isKnown(a, Alignments) }
func (p LineBreakPolicy) Valid() bool { return isKnown(p, Policies) }

// UnmarshalText lets card and config documents spell names in any case
// ("Accent", "extralarge").
func (c *Color) UnmarshalText(b []byte) error {
	*c = canonical(string(b), Colors)
	return nil
}

func (s *Size) UnmarshalText(b []byte) error {
	*s = canonical(string(b), Sizes)
	return nil
}

func (w *Weight) UnmarshalText(b []byte) error {
	*w = canonical(string(b), Weights)
	return nil
}

func (f *FontType) UnmarshalText(b []byte) error {
	*f = canonical(string(b), FontTypes)
	return nil
}

func (a *Alignment) UnmarshalText(b []byte) error {
	*a = canonical(string(b), Alignments)
	return nil
}

func (p *LineBreakPolicy) UnmarshalText(b []byte) error {
	*p = canonical(string(b), Policies)
	return nil
}
