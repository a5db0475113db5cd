package conflict

import "strings"

type markerKind int

const (
	markerNone markerKind = iota
	markerHeader
	markerStart
	markerAncestor
	markerMiddle
	markerFinish
)

const (
	headerPrefix   = "%%%%%%"
	startPrefix    = "<<<<<<<"
	ancestorPrefix = "|||||||"
	middlePrefix   = "======="
	finishPrefix   = ">>>>>>>"
)

// matchMarker classifies a single line by its marker prefix. Anything
// after the prefix (branch names, jj change ids) is ignored.
func matchMarker(line string) markerKind {
	switch {
	case strings.HasPrefix(line, startPrefix):
		return markerStart
	case strings.HasPrefix(line, headerPrefix):
		return markerHeader
	case strings.HasPrefix(line, ancestorPrefix):
		return markerAncestor
	case strings.HasPrefix(line, middlePrefix):
		return markerMiddle
	case strings.HasPrefix(line, finishPrefix):
		return markerFinish
	default:
		return markerNone
	}
}

// HasMarkers reports whether any line carries a conflict marker prefix.
// Cheap pre-check before a full parse.
func HasMarkers(lines []string) bool {
	for _, line := range lines {
		if matchMarker(line) != markerNone {
			return true
		}
	}
	return false
}
