package layout

// Band is an inclusive vertical range of top coordinates.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether top falls inside the band.
func (b Band) Contains(top float64) bool {
	return top >= b.Min && top <= b.Max
}

// Span is a horizontal extent, used to widen header-derived columns to cover
// the underlying data cluster.
type Span struct {
	Min float64
	Max float64
}
