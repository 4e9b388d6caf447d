package cluster

import (
	"github.com/tsawler/capgains/model"
)

// Line is a group of words treated as one visual text line.
type Line struct {
	Top   float64 // mean top of the line's words
	Words []model.Word
}

// Lines groups words into visual lines. Words are sorted by (top, x0) and a
// word joins the current line while its top differs from the line's first
// word by at most topTolerance.
func Lines(words []model.Word, topTolerance float64) []Line {
	if len(words) == 0 {
		return nil
	}

	sorted := model.SortByReading(words)

	groups := [][]model.Word{{sorted[0]}}
	for _, w := range sorted[1:] {
		last := groups[len(groups)-1]
		if abs(w.Top-last[0].Top) <= topTolerance {
			groups[len(groups)-1] = append(last, w)
		} else {
			groups = append(groups, []model.Word{w})
		}
	}

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		sum := 0.0
		for _, w := range group {
			sum += w.Top
		}
		lines = append(lines, Line{
			Top:   sum / float64(len(group)),
			Words: group,
		})
	}

	return lines
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
