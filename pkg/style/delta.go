package style

import "github.com/flytaly/cardtext/pkg/hostconfig"

// Delta is the style change an inline node contributes to its subtree.
type Delta int

const (
	Italic Delta = iota + 1
	Bold
	Link
)

func (d Delta) String() string {
	switch d {
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case Link:
		return "link"
	}
	return "?"
}

// Apply returns s with d applied. The link delta is a no-op when the host
// disables link styling.
func (d Delta) Apply(s Resolved, cfg *hostconfig.HostConfig) Resolved {
	switch d {
	case Italic:
		s.Italic = true
	case Bold:
		s.Weight = hostconfig.WeightBolder
		s.FontWeight = cfg.FontWeight(s.FontType, s.Weight)
	case Link:
		l := cfg.LinkStyle()
		if !l.Enabled {
			return s
		}
		s.ColorName = l.Color
		s.Color = cfg.ForegroundColor(l.Color, s.Subtle)
		s.Underline = s.Underline || l.Underline
	}
	return s
}

// Fold applies deltas to base in order.
func Fold(base Resolved, deltas []Delta, cfg *hostconfig.HostConfig) Resolved {
	for _, d := range deltas {
		base = d.Apply(base, cfg)
	}
	return base
}
