/*
Package style resolves element style overrides against host configuration
and applies the inline deltas (emphasis, strong, link) used while
flattening markdown.
*/
package style

import (
	"github.com/flytaly/cardtext/pkg/hostconfig"
)

// Overrides are the style fields an element sets locally. Empty names and
// nil pointers are "absent" and inherit from the host configuration.
type Overrides struct {
	Color     hostconfig.Color
	Size      hostconfig.Size
	Weight    hostconfig.Weight
	FontType  hostconfig.FontType
	Alignment hostconfig.Alignment
	IsSubtle  *bool
	Wrap      *bool

	// run toggles
	Italic        bool
	Strikethrough bool
	Underline     bool
	Highlight     bool
}

// Resolved is a style with every field concrete.
type Resolved struct {
	FontFamily string
	FontSize   int
	FontWeight int
	Color      string // #AARRGGBB or #RRGGBB, as configured
	Alignment  hostconfig.Alignment
	Wrap       bool

	// names the concrete values were resolved from
	FontType  hostconfig.FontType
	ColorName hostconfig.Color
	Size      hostconfig.Size
	Weight    hostconfig.Weight
	Subtle    bool

	Italic        bool
	Strikethrough bool
	Underline     bool
	Highlight     bool
}

// Resolve merges local overrides with cfg. It never fails: fields missing
// locally come from the host text defaults, and host values missing from
// cfg come from hostconfig.Builtin.
func Resolve(local Overrides, cfg *hostconfig.HostConfig) Resolved {
	d := cfg.Defaults()
	r := Resolved{
		FontType:      pick(local.FontType, d.FontType),
		ColorName:     pick(local.Color, d.Color),
		Size:          pick(local.Size, d.Size),
		Weight:        pick(local.Weight, d.Weight),
		Alignment:     pick(local.Alignment, d.Alignment),
		Subtle:        flag(local.IsSubtle, d.IsSubtle),
		Wrap:          flag(local.Wrap, d.Wrap),
		Italic:        local.Italic,
		Strikethrough: local.Strikethrough,
		Underline:     local.Underline,
		Highlight:     local.Highlight,
	}
	return r.refresh(cfg)
}

// refresh recomputes the concrete values from the names.
func (r Resolved) refresh(cfg *hostconfig.HostConfig) Resolved {
	r.FontFamily = cfg.FontFamily(r.FontType)
	r.FontSize = cfg.FontSize(r.FontType, r.Size)
	r.FontWeight = cfg.FontWeight(r.FontType, r.Weight)
	r.Color = cfg.ForegroundColor(r.ColorName, r.Subtle)
	return r
}

// Overrides returns the named fields of r as overrides, so a resolved
// style can seed further elements.
func (r Resolved) Overrides() Overrides {
	subtle, wrap := r.Subtle, r.Wrap
	return Overrides{
		Color:         r.ColorName,
		Size:          r.Size,
		Weight:        r.Weight,
		FontType:      r.FontType,
		Alignment:     r.Alignment,
		IsSubtle:      &subtle,
		Wrap:          &wrap,
		Italic:        r.Italic,
		Strikethrough: r.Strikethrough,
		Underline:     r.Underline,
		Highlight:     r.Highlight,
	}
}

// Merge layers o on top of r: set names replace, toggles accumulate.
func (r Resolved) Merge(o Overrides, cfg *hostconfig.HostConfig) Resolved {
	r.FontType = pick(o.FontType, r.FontType)
	r.ColorName = pick(o.Color, r.ColorName)
	r.Size = pick(o.Size, r.Size)
	r.Weight = pick(o.Weight, r.Weight)
	r.Alignment = pick(o.Alignment, r.Alignment)
	r.Subtle = flag(o.IsSubtle, &r.Subtle)
	r.Wrap = flag(o.Wrap, &r.Wrap)
	r.Italic = r.Italic || o.Italic
	r.Strikethrough = r.Strikethrough || o.Strikethrough
	r.Underline = r.Underline || o.Underline
	r.Highlight = r.Highlight || o.Highlight
	return r.refresh(cfg)
}

type name interface {
	~string
	Valid() bool
}

func pick[T name](local, fallback T) T {
	if local.Valid() {
		return local
	}
	return fallback
}

func flag(local, fallback *bool) bool {
	if local != nil {
		return *local
	}
	if fallback != nil {
		return *fallback
	}
	return false
}
