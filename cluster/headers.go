package cluster

import (
	"github.com/tsawler/capgains/model"
)

// Group is a set of header tokens that belong to the same column heading,
// grouped by horizontal center rather than by gap: multi-line headings stack
// tokens vertically, so gap clustering would tear them apart.
type Group struct {
	Words  []model.Word
	Center float64 // mean of member centers
	MinX   float64
	MaxX   float64
	Name   string // joined member text in reading order
}

// GroupHeaders groups header tokens whose centers fall within tolerance of a
// group's running mean center. Tokens are considered left to right; each
// joins the first group it is close enough to, otherwise starts a new one.
func GroupHeaders(words []model.Word, tolerance float64) []Group {
	if len(words) == 0 {
		return nil
	}

	type building struct {
		words   []model.Word
		centers []float64
	}

	var groups []*building
	for _, w := range model.SortByX0(words) {
		center := w.Center()
		placed := false
		for _, g := range groups {
			if abs(meanOf(g.centers)-center) <= tolerance {
				g.words = append(g.words, w)
				g.centers = append(g.centers, center)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &building{
				words:   []model.Word{w},
				centers: []float64{center},
			})
		}
	}

	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		group := Group{
			Words:  g.words,
			Center: meanOf(g.centers),
			Name:   model.JoinWords(model.SortByReading(g.words)),
		}
		for i, w := range g.words {
			if i == 0 || w.X0 < group.MinX {
				group.MinX = w.X0
			}
			if i == 0 || w.X1 > group.MaxX {
				group.MaxX = w.X1
			}
		}
		result = append(result, group)
	}

	return result
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
