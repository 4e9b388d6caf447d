package reader

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/capgains/model"
)

// Tolerances matching the extraction settings the statement family was
// tuned with: fragments within 1pt vertically belong to one line, and a
// horizontal gap of at most 1pt between runs continues the same word.
const (
	lineTolerance = 1.0
	wordTolerance = 1.0
)

// assembleWords merges per-glyph-run fragments into words and builds the
// page's plain text. Fragments are grouped into lines by Y, split into words
// wherever the horizontal gap to the previous run exceeds the word
// tolerance, and converted to top-origin coordinates.
func assembleWords(texts []pdf.Text, height float64, pageIndex int) ([]model.Word, string) {
	runs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			runs = append(runs, t)
		}
	}
	if len(runs) == 0 {
		return nil, ""
	}

	// Reading order: top of page first (largest Y), then left to right.
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var words []model.Word
	var textLines []string

	lineStart := 0
	for i := 1; i <= len(runs); i++ {
		if i < len(runs) && abs(runs[i].Y-runs[lineStart].Y) <= lineTolerance {
			continue
		}
		lineWords := splitLine(runs[lineStart:i], height, pageIndex)
		words = append(words, lineWords...)
		textLines = append(textLines, lineText(lineWords))
		lineStart = i
	}

	return words, strings.Join(textLines, "\n")
}

// splitLine breaks one line's runs into words at horizontal gaps. Baseline
// jitter within the line tolerance can leave runs out of x order, so the
// line is re-sorted before splitting.
func splitLine(lineRuns []pdf.Text, height float64, pageIndex int) []model.Word {
	runs := make([]pdf.Text, len(lineRuns))
	copy(runs, lineRuns)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].X < runs[j].X
	})

	var words []model.Word

	start := 0
	for i := 1; i <= len(runs); i++ {
		if i < len(runs) && runs[i].X-(runs[i-1].X+runs[i-1].W) <= wordTolerance {
			continue
		}
		words = append(words, buildWord(runs[start:i], height, pageIndex))
		start = i
	}

	return words
}

// buildWord merges consecutive runs into a single word token. The glyph
// ascent is approximated by the font size when converting the baseline Y to
// a top-origin coordinate.
func buildWord(runs []pdf.Text, height float64, pageIndex int) model.Word {
	var sb strings.Builder
	x0 := runs[0].X
	x1 := runs[0].X + runs[0].W
	baseline := runs[0].Y
	fontSize := runs[0].FontSize

	for _, run := range runs {
		sb.WriteString(run.S)
		if run.X < x0 {
			x0 = run.X
		}
		if right := run.X + run.W; right > x1 {
			x1 = right
		}
		if run.FontSize > fontSize {
			fontSize = run.FontSize
		}
	}

	return model.Word{
		Text:   strings.TrimSpace(sb.String()),
		X0:     x0,
		X1:     x1,
		Top:    height - baseline - fontSize,
		Bottom: height - baseline,
		Page:   pageIndex,
	}
}

func lineText(words []model.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
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
