package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleBlock(t *testing.T) {
	lines := []string{"a", "<<<<<<<", "x", "=======", "y", ">>>>>>>", "b"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, 1, block.Markers.StartLine)
	assert.Equal(t, 3, block.Markers.MiddleLine)
	assert.Equal(t, 5, block.Markers.FinishLine)

	assert.Equal(t, 1, block.Current.RangeStart, "current paints its own marker line")
	assert.Equal(t, 2, block.Current.ContentStart)
	assert.Equal(t, 2, block.Current.ContentEnd)
	assert.Equal(t, 2, block.Current.RangeEnd)

	assert.Equal(t, 4, block.Incoming.ContentStart)
	assert.Equal(t, 4, block.Incoming.ContentEnd)
	assert.Equal(t, 4, block.Incoming.RangeStart)
	assert.Equal(t, 5, block.Incoming.RangeEnd, "incoming paints through the finish line")

	assert.Nil(t, block.Ancestor)
}

func TestParse_AncestorSection(t *testing.T) {
	lines := []string{"a", "<<<<<<<", "x", "|||||||", "base", "=======", "y", ">>>>>>>", "b"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)

	block := blocks[0]
	require.NotNil(t, block.Ancestor)

	assert.Equal(t, 2, block.Current.ContentEnd, "current ends before the ancestor marker")
	assert.Equal(t, 4, block.Ancestor.ContentStart)
	assert.Equal(t, 4, block.Ancestor.ContentEnd)
	assert.Equal(t, 4, block.Ancestor.RangeStart, "ancestor excludes its own marker line")
	assert.Equal(t, 5, block.Markers.MiddleLine)
	assert.Equal(t, 6, block.Incoming.ContentStart)
	assert.Equal(t, 6, block.Incoming.ContentEnd)
}

func TestParse_UnterminatedBlockTerminates(t *testing.T) {
	lines := []string{"a", "<<<<<<<", "x", "=======", "y"}

	// Must terminate and emit nothing rather than re-matching the start
	// line forever.
	blocks := Parse(lines)
	assert.Empty(t, blocks)
}

func TestParse_NoMarkers(t *testing.T) {
	lines := []string{"plain", "text", "only"}
	assert.Empty(t, Parse(lines))
	assert.False(t, HasMarkers(lines))
}

func TestParse_Idempotent(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "=======", "y", ">>>>>>>"}
	assert.Equal(t, Parse(lines), Parse(lines))
}

func TestParse_MultipleBlocks(t *testing.T) {
	lines := []string{
		"<<<<<<<", "1", "=======", "2", ">>>>>>>",
		"mid",
		"<<<<<<<", "A", "=======", "B", ">>>>>>>",
	}

	blocks := Parse(lines)
	require.Len(t, blocks, 2)

	assert.Equal(t, 0, blocks[0].Markers.StartLine)
	assert.Equal(t, 4, blocks[0].Markers.FinishLine)
	assert.Equal(t, 6, blocks[1].Markers.StartLine)
	assert.Equal(t, 10, blocks[1].Markers.FinishLine)

	// Document order, non-overlapping
	assert.Less(t, blocks[0].Markers.FinishLine, blocks[1].Markers.StartLine)
}

func TestParse_HeaderMarkerStartsBlock(t *testing.T) {
	lines := []string{"%%%%%% change id", "x", "=======", "y", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Markers.StartLine)
	assert.Equal(t, 0, blocks[0].Current.RangeStart)
}

func TestParse_NoDividerFallback(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "y", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, -1, block.Markers.MiddleLine)
	assert.Equal(t, 2, block.Current.ContentEnd, "current runs through the line before finish")
	assert.Equal(t, 3, block.Incoming.RangeStart)
	assert.Equal(t, 3, block.Incoming.RangeEnd)
	assert.True(t, block.Incoming.Empty(), "incoming degenerates to an empty section")
}

func TestParse_AncestorAfterMiddleIsContent(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "=======", "|||||||", "y", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)
	assert.Nil(t, blocks[0].Ancestor, "||||||| after ======= is plain content")
	assert.Equal(t, 3, blocks[0].Incoming.ContentStart)
	assert.Equal(t, 4, blocks[0].Incoming.ContentEnd)
}

func TestParse_OnlyFirstMiddleIsDivider(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "=======", "=======", "y", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)
	assert.Equal(t, 2, blocks[0].Markers.MiddleLine)
	assert.Equal(t, 3, blocks[0].Incoming.ContentStart)
}

func TestParse_EmptySections(t *testing.T) {
	lines := []string{"<<<<<<<", "=======", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.True(t, block.Current.Empty())
	assert.True(t, block.Incoming.Empty())
}

func TestParse_ScanResumesAfterFinish(t *testing.T) {
	// A second start line with no finish after a complete block must not
	// produce a partial block or hang.
	lines := []string{"<<<<<<<", "x", "=======", "y", ">>>>>>>", "<<<<<<<", "z"}

	blocks := Parse(lines)
	assert.Len(t, blocks, 1)
}

func TestParse_SectionOrdering(t *testing.T) {
	lines := []string{"<<<<<<<", "x", "|||||||", "b", "=======", "y", ">>>>>>>"}

	blocks := Parse(lines)
	require.Len(t, blocks, 1)

	block := blocks[0]
	require.NotNil(t, block.Ancestor)
	assert.LessOrEqual(t, block.Current.ContentStart, block.Current.ContentEnd+1)
	assert.Less(t, block.Current.ContentEnd, block.Ancestor.ContentStart)
	assert.Less(t, block.Ancestor.ContentEnd, block.Incoming.ContentStart)
}

func TestHasMarkers(t *testing.T) {
	assert.True(t, HasMarkers([]string{"plain", ">>>>>>> branch"}))
	assert.False(t, HasMarkers(nil))
}
