package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/capgains/model"
)

// SectionBoundary is the horizontal span of the page assigned to one labeled
// section block.
type SectionBoundary struct {
	Name  string
	Left  float64
	Right float64
}

// SectionOptions configures section-label detection and boundary expansion.
// The defaults are tuned for one statement family; revisit them per document
// template.
type SectionOptions struct {
	// LabelBand is the vertical band the literal "Section" labels appear in.
	LabelBand Band

	// LineTolerance is the vertical distance within which words following a
	// "Section" token are absorbed into the same label.
	LineTolerance float64

	// Margin expands every boundary outward after the Voronoi partition.
	Margin float64

	// PageWidth clamps the rightmost boundary (and, with the margin, every
	// expanded boundary).
	PageWidth float64
}

// DefaultSectionOptions returns the tuning for the reference statement family.
func DefaultSectionOptions() SectionOptions {
	return SectionOptions{
		LabelBand:     Band{Min: 200, Max: 520},
		LineTolerance: 5.0,
		Margin:        40.0,
		PageWidth:     1000.0,
	}
}

// sectionPrefixes are the only labels accepted as real sections; anything
// else matching the word "Section" in the band is spurious.
var sectionPrefixes = []string{
	"Section A :",
	"Section B :",
	"Section C :",
}

// DetectSections locates the Section A/B/C labels and partitions the
// horizontal axis between them. Each label's span is the Voronoi cell of its
// mean token center among all label centers, with the first and last cells
// extended to the page edges, then every cell is expanded outward by the
// margin and clamped to [0, PageWidth].
func DetectSections(words []model.Word, opts SectionOptions) []SectionBoundary {
	labels := collectLabels(words, opts)
	if len(labels) == 0 {
		return nil
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].center < labels[j].center
	})

	boundaries := make([]SectionBoundary, 0, len(labels))
	for idx, label := range labels {
		left := 0.0
		if idx > 0 {
			left = (labels[idx-1].center + label.center) / 2
		}

		right := opts.PageWidth
		if idx < len(labels)-1 {
			right = (label.center + labels[idx+1].center) / 2
		}

		left -= opts.Margin
		if left < 0 {
			left = 0
		}
		right += opts.Margin
		if right > opts.PageWidth {
			right = opts.PageWidth
		}

		boundaries = append(boundaries, SectionBoundary{
			Name:  label.name,
			Left:  left,
			Right: right,
		})
	}

	return boundaries
}

type sectionLabel struct {
	name   string
	center float64
}

// collectLabels finds every "Section" token in the label band and absorbs
// the rest of its visual line (in source token order) to rebuild the full
// label text, stopping if another "Section" token starts on the same line.
func collectLabels(words []model.Word, opts SectionOptions) []sectionLabel {
	var labels []sectionLabel

	for idx, w := range words {
		if w.Text != "Section" || !opts.LabelBand.Contains(w.Top) {
			continue
		}

		sequence := []model.Word{w}
		for j := idx + 1; j < len(words); j++ {
			next := words[j]
			if next.Text == "Section" && abs(next.Top-w.Top) < opts.LineTolerance {
				break
			}
			if abs(next.Top-w.Top) <= opts.LineTolerance {
				sequence = append(sequence, next)
			}
		}

		text := strings.TrimSpace(joinByX0(sequence))
		if !hasSectionPrefix(text) {
			continue
		}

		sum := 0.0
		for _, word := range sequence {
			sum += word.Center()
		}

		labels = append(labels, sectionLabel{
			name:   text,
			center: sum / float64(len(sequence)),
		})
	}

	return labels
}

func hasSectionPrefix(text string) bool {
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

func joinByX0(words []model.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range model.SortByX0(words) {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
