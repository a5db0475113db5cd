package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conflictview/internal/conflict"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, Packed(0x112233), Resolve("#112233", DefaultCurrent))
	assert.Equal(t, DefaultCurrent, Resolve("", DefaultCurrent))
	assert.Equal(t, DefaultCurrent, Resolve("#nothex", DefaultCurrent))
}

func TestPalette_Color(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, DefaultCurrent, p.Color(conflict.RegionCurrent))
	assert.Equal(t, DefaultAncestor, p.Color(conflict.RegionAncestor))
	assert.Equal(t, DefaultIncoming, p.Color(conflict.RegionIncoming))
}

func TestPalette_LabelColor(t *testing.T) {
	p := DefaultPalette()
	want := Shade(DefaultCurrent, DefaultLabelShade)
	assert.Equal(t, want, p.LabelColor(conflict.RegionCurrent))
}
