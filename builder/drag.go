package builder

// Drag reorder protocol: capture the source index at drag start, classify
// pointer position against the candidate block's vertical midpoint while
// hovering, and commit through the session's Reorder on drop. The visual
// drop indicator is presentation concern; the index math here is the engine
// contract because it decides the final hover index.

// Edge names the half of a candidate block a pointer falls into.
type Edge int

const (
	// EdgeAbove means the drop lands before the candidate block.
	EdgeAbove Edge = iota
	// EdgeBelow means the drop lands after the candidate block.
	EdgeBelow
)

// TargetEdge classifies the pointer against the candidate's bounding box:
// above the vertical midpoint is a drop-above target, otherwise drop-below.
func TargetEdge(pointerY, boxTop, boxHeight float64) Edge {
	if pointerY < boxTop+boxHeight/2 {
		return EdgeAbove
	}
	return EdgeBelow
}

// DropIndex converts a candidate index and edge into the hover index handed
// to Reorder.
func DropIndex(candidateIndex int, edge Edge) int {
	if edge == EdgeBelow {
		return candidateIndex + 1
	}
	return candidateIndex
}

// Drag carries the source index captured when the gesture starts.
type Drag struct {
	SourceIndex int
}

// BeginDrag captures the dragged block's index.
func BeginDrag(sourceIndex int) Drag {
	return Drag{SourceIndex: sourceIndex}
}

// ShouldCommit reports whether dropping at hoverIndex would change the
// order. Dropping a block back onto its own edges is skipped entirely to
// avoid no-op churn.
func (d Drag) ShouldCommit(hoverIndex int) bool {
	return hoverIndex != d.SourceIndex && hoverIndex != d.SourceIndex+1
}

// Drop computes the final hover index for the candidate and edge and commits
// the reorder when it changes the order. It reports whether a reorder was
// issued.
func (d Drag) Drop(s *Session, candidateIndex int, edge Edge) bool {
	hoverIndex := DropIndex(candidateIndex, edge)
	if !d.ShouldCommit(hoverIndex) {
		return false
	}
	s.Reorder(d.SourceIndex, hoverIndex)
	return true
}
