/*
Package hostconfig holds the host-supplied styling defaults consumed by the
text conversion core: font tables, the foreground palette, link styling and
line break policy. Every lookup falls back to the built-in defaults, so a
partially filled or nil config still resolves.
*/
package hostconfig

type FontSizes struct {
	Small      int `yaml:"small" json:"small,omitempty"`
	Default    int `yaml:"default" json:"default,omitempty"`
	Medium     int `yaml:"medium" json:"medium,omitempty"`
	Large      int `yaml:"large" json:"large,omitempty"`
	ExtraLarge int `yaml:"extraLarge" json:"extraLarge,omitempty"`
}

// Get returns the entry for size, 0 when it is unset or unknown.
func (s FontSizes) Get(size Size) int {
	switch size {
	case SizeSmall:
		return s.Small
	case SizeDefault:
		return s.Default
	case SizeMedium:
		return s.Medium
	case SizeLarge:
		return s.Large
	case SizeExtraLarge:
		return s.ExtraLarge
	}
	return 0
}

type FontWeights struct {
	Lighter int `yaml:"lighter" json:"lighter,omitempty"`
	Default int `yaml:"default" json:"default,omitempty"`
	Bolder  int `yaml:"bolder" json:"bolder,omitempty"`
}

func (w FontWeights) Get(weight Weight) int {
	switch weight {
	case WeightLighter:
		return w.Lighter
	case WeightDefault:
		return w.Default
	case WeightBolder:
		return w.Bolder
	}
	return 0
}

type FontTypeConfig struct {
	FontFamily  string      `yaml:"fontFamily" json:"fontFamily,omitempty"`
	FontSizes   FontSizes   `yaml:"fontSizes" json:"fontSizes"`
	FontWeights FontWeights `yaml:"fontWeights" json:"fontWeights"`
}

type FontTypesConfig struct {
	Default   FontTypeConfig `yaml:"default" json:"default"`
	Monospace FontTypeConfig `yaml:"monospace" json:"monospace"`
}

func (f FontTypesConfig) Get(ft FontType) FontTypeConfig {
	if ft == FontTypeMonospace {
		return f.Monospace
	}
	return f.Default
}

// ColorPair holds the regular and subtle variant of a palette entry as
// "#RRGGBB" or "#AARRGGBB".
type ColorPair struct {
	Default string `yaml:"default" json:"default,omitempty"`
	Subtle  string `yaml:"subtle" json:"subtle,omitempty"`
}

func (p ColorPair) Get(subtle bool) string {
	if subtle {
		return p.Subtle
	}
	return p.Default
}

type ForegroundColors struct {
	Default   ColorPair `yaml:"default" json:"default"`
	Dark      ColorPair `yaml:"dark" json:"dark"`
	Light     ColorPair `yaml:"light" json:"light"`
	Accent    ColorPair `yaml:"accent" json:"accent"`
	Good      ColorPair `yaml:"good" json:"good"`
	Warning   ColorPair `yaml:"warning" json:"warning"`
	Attention ColorPair `yaml:"attention" json:"attention"`
}

func (f ForegroundColors) Get(c Color) ColorPair {
	switch c {
	case ColorDefault:
		return f.Default
	case ColorDark:
		return f.Dark
	case ColorLight:
		return f.Light
	case ColorAccent:
		return f.Accent
	case ColorGood:
		return f.Good
	case ColorWarning:
		return f.Warning
	case ColorAttention:
		return f.Attention
	}
	return ColorPair{}
}

// LinkStyle controls the style delta applied to link text. Nil pointers
// mean "not configured".
type LinkStyle struct {
	Enabled   *bool `yaml:"enabled" json:"enabled,omitempty"`
	Color     Color `yaml:"color" json:"color,omitempty"`
	Underline *bool `yaml:"underline" json:"underline,omitempty"`
}

// TextDefaults are the host's defaults for text elements without local
// overrides.
type TextDefaults struct {
	Color     Color     `yaml:"color" json:"color,omitempty"`
	Size      Size      `yaml:"size" json:"size,omitempty"`
	Weight    Weight    `yaml:"weight" json:"weight,omitempty"`
	FontType  FontType  `yaml:"fontType" json:"fontType,omitempty"`
	Alignment Alignment `yaml:"horizontalAlignment" json:"horizontalAlignment,omitempty"`
	IsSubtle  *bool     `yaml:"isSubtle" json:"isSubtle,omitempty"`
	Wrap      *bool     `yaml:"wrap" json:"wrap,omitempty"`
}

type HostConfig struct {
	FontTypes        FontTypesConfig  `yaml:"fontTypes" json:"fontTypes"`
	ForegroundColors ForegroundColors `yaml:"foregroundColors" json:"foregroundColors"`
	Link             LinkStyle        `yaml:"link" json:"link"`
	LineBreaks       LineBreakPolicy  `yaml:"lineBreaks" json:"lineBreaks,omitempty"`
	TextDefaults     TextDefaults     `yaml:"textBlock" json:"textBlock"`
}

// ResolvedLink is the link style after falling back to the built-ins.
type ResolvedLink struct {
	Enabled   bool
	Color     Color
	Underline bool
}

// Builtin returns the fixed defaults every lookup falls back to.
func Builtin() *HostConfig {
	enabled, underline, wrap, subtle := true, true, false, false
	sizes := FontSizes{Small: 10, Default: 12, Medium: 14, Large: 17, ExtraLarge: 20}
	weights := FontWeights{Lighter: 200, Default: 400, Bolder: 600}
	return &HostConfig{
		FontTypes: FontTypesConfig{
			Default:   FontTypeConfig{FontFamily: "Segoe UI", FontSizes: sizes, FontWeights: weights},
			Monospace: FontTypeConfig{FontFamily: "Courier New", FontSizes: sizes, FontWeights: weights},
		},
		ForegroundColors: ForegroundColors{
			Default:   ColorPair{Default: "#FF000000", Subtle: "#B2000000"},
			Dark:      ColorPair{Default: "#FF101010", Subtle: "#B2101010"},
			Light:     ColorPair{Default: "#FFFFFFFF", Subtle: "#B2FFFFFF"},
			Accent:    ColorPair{Default: "#FF0000FF", Subtle: "#B20000FF"},
			Good:      ColorPair{Default: "#FF008000", Subtle: "#B2008000"},
			Warning:   ColorPair{Default: "#FFFFD700", Subtle: "#B2FFD700"},
			Attention: ColorPair{Default: "#FFFF0000", Subtle: "#B2FF0000"},
		},
		Link:       LinkStyle{Enabled: &enabled, Color: ColorAccent, Underline: &underline},
		LineBreaks: LineBreakForced,
		TextDefaults: TextDefaults{
			Color:     ColorDefault,
			Size:      SizeDefault,
			Weight:    WeightDefault,
			FontType:  FontTypeDefault,
			Alignment: AlignLeft,
			IsSubtle:  &subtle,
			Wrap:      &wrap,
		},
	}
}

var builtin = Builtin()

// FontFamily looks up the family for ft: the host entry for ft, then the
// host default font type, then the built-in entry.
func (c *HostConfig) FontFamily(ft FontType) string {
	if c != nil {
		if f := c.FontTypes.Get(ft).FontFamily; f != "" {
			return f
		}
		if f := c.FontTypes.Default.FontFamily; f != "" && ft != FontTypeMonospace {
			return f
		}
	}
	return builtin.FontTypes.Get(ft).FontFamily
}

func (c *HostConfig) FontSize(ft FontType, size Size) int {
	if c != nil {
		if v := c.FontTypes.Get(ft).FontSizes.Get(size); v > 0 {
			return v
		}
		if v := c.FontTypes.Default.FontSizes.Get(size); v > 0 {
			return v
		}
	}
	return builtin.FontTypes.Get(ft).FontSizes.Get(size)
}

func (c *HostConfig) FontWeight(ft FontType, weight Weight) int {
	if c != nil {
		if v := c.FontTypes.Get(ft).FontWeights.Get(weight); v > 0 {
			return v
		}
		if v := c.FontTypes.Default.FontWeights.Get(weight); v > 0 {
			return v
		}
	}
	return builtin.FontTypes.Get(ft).FontWeights.Get(weight)
}

// ForegroundColor returns the hex value of a palette entry.
func (c *HostConfig) ForegroundColor(color Color, subtle bool) string {
	if c != nil {
		if v := c.ForegroundColors.Get(color).Get(subtle); v != "" {
			return v
		}
	}
	return builtin.ForegroundColors.Get(color).Get(subtle)
}

func (c *HostConfig) LinkStyle() ResolvedLink {
	l := builtin.Link
	if c != nil {
		if c.Link.Enabled != nil {
			l.Enabled = c.Link.Enabled
		}
		if c.Link.Color.Valid() {
			l.Color = c.Link.Color
		}
		if c.Link.Underline != nil {
			l.Underline = c.Link.Underline
		}
	}
	return ResolvedLink{Enabled: *l.Enabled, Color: l.Color, Underline: *l.Underline}
}

func (c *HostConfig) LineBreakPolicy() LineBreakPolicy {
	if c != nil && c.LineBreaks.Valid() {
		return c.LineBreaks
	}
	return builtin.LineBreaks
}

// Defaults returns the host text defaults with every field filled from
// the built-ins where the host leaves it unset or unknown.
func (c *HostConfig) Defaults() TextDefaults {
	d := builtin.TextDefaults
	if c == nil {
		return d
	}
	t := c.TextDefaults
	if t.Color.Valid() {
		d.Color = t.Color
	}
	if t.Size.Valid() {
		d.Size = t.Size
	}
	if t.Weight.Valid() {
		d.Weight = t.Weight
	}
	if t.FontType.Valid() {
		d.FontType = t.FontType
	}
	if t.Alignment.Valid() {
		d.Alignment = t.Alignment
	}
	if t.IsSubtle != nil {
		d.IsSubtle = t.IsSubtle
	}
	if t.Wrap != nil {
		d.Wrap = t.Wrap
	}
	return d
}
