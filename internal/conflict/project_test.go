package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_SimpleBlock(t *testing.T) {
	lines := []string{"a", "<<<<<<<", "x", "=======", "y", ">>>>>>>", "b"}
	regions := Project(lines, Parse(lines))
	require.Len(t, regions, 2)

	current := regions[0]
	assert.Equal(t, RegionCurrent, current.Kind)
	assert.Equal(t, 1, current.Start)
	assert.Equal(t, 2, current.End)
	assert.Equal(t, "x (Current)", current.Label)
	assert.Equal(t, 1, current.LabelLine, "current label overlays the opening marker")

	incoming := regions[1]
	assert.Equal(t, RegionIncoming, incoming.Kind)
	assert.Equal(t, 4, incoming.Start)
	assert.Equal(t, 5, incoming.End)
	assert.Equal(t, "y (Incoming)", incoming.Label)
	assert.Equal(t, 5, incoming.LabelLine, "incoming label overlays the closing marker")
}

func TestProject_AncestorRegion(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "|||||||", "base", "=======", "y", ">>>>>>>"}
	regions := Project(lines, Parse(lines))
	require.Len(t, regions, 3)

	ancestor := regions[1]
	assert.Equal(t, RegionAncestor, ancestor.Kind)
	assert.Equal(t, 3, ancestor.Start)
	assert.Equal(t, 3, ancestor.End)
	assert.Equal(t, "base (Base)", ancestor.Label)
	assert.Equal(t, 3, ancestor.LabelLine)
}

func TestProject_FallbackLabel(t *testing.T) {
	// A block borrowed from a longer snapshot: the content index points
	// past the lines we project against.
	block := Block{
		Current:  Section{RangeStart: 0, RangeEnd: 1, ContentStart: 5, ContentEnd: 5},
		Incoming: Section{RangeStart: 3, RangeEnd: 4, ContentStart: 9, ContentEnd: 9},
		Markers:  Markers{StartLine: 0, MiddleLine: 2, FinishLine: 4},
	}

	regions := Project([]string{"only", "two"}, []Block{block})
	require.Len(t, regions, 2)
	assert.Equal(t, "Conflict (Current)", regions[0].Label)
	assert.Equal(t, "Conflict (Incoming)", regions[1].Label)
}

func TestProject_EmptyInput(t *testing.T) {
	assert.Empty(t, Project(nil, nil))
}

func TestProject_TwoBlocksInDocumentOrder(t *testing.T) {
	lines := []string{
		"<<<<<<<", "1", "=======", "2", ">>>>>>>",
		"<<<<<<<", "A", "=======", "B", ">>>>>>>",
	}

	regions := Project(lines, Parse(lines))
	require.Len(t, regions, 4)

	for i := 1; i < len(regions); i++ {
		assert.LessOrEqual(t, regions[i-1].Start, regions[i].Start)
	}
	assert.Equal(t, "1 (Current)", regions[0].Label)
	assert.Equal(t, "A (Current)", regions[2].Label)
}

func TestRegionKind_Role(t *testing.T) {
	assert.Equal(t, "Current", RegionCurrent.Role())
	assert.Equal(t, "Base", RegionAncestor.Role())
	assert.Equal(t, "Incoming", RegionIncoming.Role())
}
