package conflict

// RegionKind tells the renderer which side of a conflict a region paints.
type RegionKind int

const (
	RegionCurrent RegionKind = iota
	RegionAncestor
	RegionIncoming
)

// Role returns the label role name for the region kind.
func (k RegionKind) Role() string {
	switch k {
	case RegionCurrent:
		return "Current"
	case RegionAncestor:
		return "Base"
	case RegionIncoming:
		return "Incoming"
	default:
		return "Unknown"
	}
}

// FallbackLabel replaces a section's first content line in the label text
// when that line index falls outside the snapshot.
const FallbackLabel = "Conflict"

// Region is a render-ready instruction: paint Start..End (inclusive) with
// the kind's background and overlay Label on LabelLine. Regions are
// rebuilt from scratch on every pass and never persisted.
type Region struct {
	Kind      RegionKind
	Start     int
	End       int
	Label     string
	LabelLine int
}

// Project maps parsed blocks into regions, in document order within each
// block: current, ancestor when present, incoming. Current anchors its
// label on the opening marker line, incoming on the closing marker line,
// ancestor on its first content line.
func Project(lines []string, blocks []Block) []Region {
	regions := make([]Region, 0, len(blocks)*3)

	for _, block := range blocks {
		regions = append(regions, Region{
			Kind:      RegionCurrent,
			Start:     block.Current.RangeStart,
			End:       block.Current.RangeEnd,
			Label:     sectionLabel(lines, block.Current, RegionCurrent),
			LabelLine: block.Current.RangeStart,
		})

		if block.Ancestor != nil {
			regions = append(regions, Region{
				Kind:      RegionAncestor,
				Start:     block.Ancestor.RangeStart,
				End:       block.Ancestor.RangeEnd,
				Label:     sectionLabel(lines, *block.Ancestor, RegionAncestor),
				LabelLine: block.Ancestor.RangeStart,
			})
		}

		regions = append(regions, Region{
			Kind:      RegionIncoming,
			Start:     block.Incoming.RangeStart,
			End:       block.Incoming.RangeEnd,
			Label:     sectionLabel(lines, block.Incoming, RegionIncoming),
			LabelLine: block.Incoming.RangeEnd,
		})
	}

	return regions
}

func sectionLabel(lines []string, s Section, kind RegionKind) string {
	text := FallbackLabel
	if s.ContentStart >= 0 && s.ContentStart < len(lines) {
		text = lines[s.ContentStart]
	}
	return text + " (" + kind.Role() + ")"
}
