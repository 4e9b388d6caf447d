package model

import (
	"sort"
	"strings"
)

// Word is a single text token extracted from a PDF page. Coordinates are in
// page points with the origin at the top-left corner, so Top grows downward.
// Words are created once by the extractor and never mutated.
type Word struct {
	Text   string
	X0     float64 // left edge
	X1     float64 // right edge
	Top    float64 // distance from the top of the page
	Bottom float64
	Page   int // 0-indexed page the word appears on
}

// Center returns the horizontal midpoint of the word.
func (w Word) Center() float64 {
	return (w.X0 + w.X1) / 2
}

// SortByX0 returns a copy of words ordered left to right.
func SortByX0(words []Word) []Word {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X0 < sorted[j].X0
	})
	return sorted
}

// SortByReading returns a copy of words in reading order: top to bottom,
// then left to right.
func SortByReading(words []Word) []Word {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})
	return sorted
}

// JoinWords concatenates token text separated by single spaces. Empty tokens
// are dropped, and a token identical to the immediately preceding one is
// skipped: PDFs in this statement family occasionally emit the same glyph
// run twice at almost the same position.
func JoinWords(words []Word) string {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		candidate := strings.TrimSpace(w.Text)
		if candidate == "" {
			continue
		}
		if len(cleaned) > 0 && candidate == cleaned[len(cleaned)-1] {
			continue
		}
		cleaned = append(cleaned, candidate)
	}
	return strings.Join(cleaned, " ")
}
