// Package paint owns packed RGB color math and the palette that maps
// conflict sides to background and label colors.
package paint

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Packed is a 24-bit RGB color encoded as R<<16 | G<<8 | B.
type Packed int

// FromRGB packs three 8-bit channels into a single color.
func FromRGB(r, g, b int) Packed {
	return Packed(r<<16 | g<<8 | b)
}

// RGB splits the color into its three 8-bit channels.
func (c Packed) RGB() (r, g, b int) {
	return int(c) >> 16 & 0xFF, int(c) >> 8 & 0xFF, int(c) & 0xFF
}

// Hex renders the color as "#rrggbb".
func (c Packed) Hex() string {
	return fmt.Sprintf("#%06x", int(c)&0xFFFFFF)
}

// Lipgloss converts the color for use in a lipgloss style.
func (c Packed) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// FromHex parses a "#rrggbb" string into a packed color.
func FromHex(s string) (Packed, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := col.RGB255()
	return FromRGB(int(r), int(g), int(b)), nil
}

// Shade darkens the color by percent. Each channel maps to
// floor(channel * (100 - percent) / 100): percent 0 is the identity,
// percent 100 is black. Values outside 0..100 are clamped.
func Shade(c Packed, percent int) Packed {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	keep := 100 - percent
	r, g, b := c.RGB()
	return FromRGB(r*keep/100, g*keep/100, b*keep/100)
}
