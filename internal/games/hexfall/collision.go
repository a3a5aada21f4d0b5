package hexfall

// Rejection classifies why a piece does not fit at a position.
type Rejection uint8

const (
	RejectionNone Rejection = iota
	RejectionOutOfBounds
	RejectionOverlap
)

// String returns a human-readable name for the rejection.
func (r Rejection) String() string {
	switch r {
	case RejectionNone:
		return "none"
	case RejectionOutOfBounds:
		return "out-of-bounds"
	case RejectionOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// CheckPosition validates every occupied cell of the piece against the
// field and grid. The first failing cell decides the reason; failures
// are not aggregated.
func CheckPosition(p *Piece, g Grid, f *Field) Rejection {
	for _, c := range p.Cells() {
		if !f.Contains(c) {
			return RejectionOutOfBounds
		}
		if g.Filled(c) {
			return RejectionOverlap
		}
	}
	return RejectionNone
}

// ValidPosition reports whether the piece fits at its position.
func ValidPosition(p *Piece, g Grid, f *Field) bool {
	return CheckPosition(p, g, f) == RejectionNone
}
