package paint

import (
	"conflictview/internal/conflict"
)

// Fixed fallback colors, used whenever a configured color cannot be
// resolved. Label backgrounds are derived from the body color by shading.
const (
	DefaultCurrent  Packed = 0x405D7E
	DefaultIncoming Packed = 0x314753
	DefaultAncestor Packed = 0x68217A

	DefaultLabelShade = 60
)

// Palette holds the body background color for each conflict side plus the
// shade percentage that derives label backgrounds from body colors.
type Palette struct {
	Current    Packed
	Incoming   Packed
	Ancestor   Packed
	LabelShade int
}

func DefaultPalette() Palette {
	return Palette{
		Current:    DefaultCurrent,
		Incoming:   DefaultIncoming,
		Ancestor:   DefaultAncestor,
		LabelShade: DefaultLabelShade,
	}
}

// Resolve parses a hex color string, falling back to the given default
// when the string is empty or unparseable. Lookup failures never propagate.
func Resolve(hex string, fallback Packed) Packed {
	if hex == "" {
		return fallback
	}
	c, err := FromHex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// Color returns the body background for a region kind.
func (p Palette) Color(kind conflict.RegionKind) Packed {
	switch kind {
	case conflict.RegionCurrent:
		return p.Current
	case conflict.RegionAncestor:
		return p.Ancestor
	default:
		return p.Incoming
	}
}

// LabelColor returns the shaded label background for a region kind.
func (p Palette) LabelColor(kind conflict.RegionKind) Packed {
	return Shade(p.Color(kind), p.LabelShade)
}
