package header

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/capgains/model"
)

// Vertical bands the statement family prints its header fields in. Tuned for
// one layout; revisit per document template.
const (
	statusBandTop     = 55.0
	statusBandBottom  = 70.0
	nameBandTop       = 85.0
	nameBandBottom    = 100.0
	addressBandTop    = 100.0
	addressBandBottom = 160.0
	mobileBandTop     = 150.0
	mobileBandBottom  = 170.0
	identityMaxTop    = 120.0 // PAN and folio appear above this line
	lineTolerance     = 1.0
)

// Extract scans the first page's words and plain text for header metadata.
func Extract(words []model.Word, pageText string) model.Header {
	var h model.Header

	for _, line := range strings.Split(pageText, "\n") {
		if strings.Contains(line, "For the period") {
			h.StatementPeriod = strings.TrimSpace(line)
			break
		}
	}

	h.Status = extractStatus(words)
	h.PAN = firstMatch(words, func(w model.Word) bool {
		return len(w.Text) == 10 && isAlnum(w.Text) && w.Top < identityMaxTop
	})
	h.Folio = firstMatch(words, func(w model.Word) bool {
		return isDigits(w.Text) && len(w.Text) >= 8 && w.Top < identityMaxTop
	})
	h.Name = extractName(words)
	h.Mobile = firstMatch(words, func(w model.Word) bool {
		return isDigits(w.Text) && len(w.Text) == 10 &&
			w.Top >= mobileBandTop && w.Top <= mobileBandBottom
	})
	h.Address = extractAddress(words)

	return h
}

// extractStatus rebuilds the status line and strips the label plus anything
// from the PAN label onward, which shares the same line on this layout.
func extractStatus(words []model.Word) string {
	var tokens []string
	for _, w := range words {
		if w.Top >= statusBandTop && w.Top <= statusBandBottom {
			tokens = append(tokens, w.Text)
		}
	}
	if len(tokens) == 0 {
		return ""
	}

	line := NormalizeSpaced(tokens)
	line = strings.TrimSpace(strings.ReplaceAll(line, "Status :", ""))
	if idx := strings.Index(line, "PAN"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	return line
}

func extractName(words []model.Word) string {
	var tokens []string
	for _, w := range words {
		if w.Top >= nameBandTop && w.Top <= nameBandBottom {
			tokens = append(tokens, w.Text)
		}
	}
	if len(tokens) == 0 {
		return ""
	}

	name := NormalizeSpaced(tokens)
	name = strings.ReplaceAll(name, "Name :", "")
	name = strings.ReplaceAll(name, "Name", "")
	return strings.TrimSpace(name)
}

// extractAddress collects the label-free printable tokens in the address
// band, grouped into lines by rounded top and ordered left to right.
func extractAddress(words []model.Word) []string {
	topSet := make(map[float64]struct{})
	for _, w := range words {
		if w.Top >= addressBandTop && w.Top <= addressBandBottom &&
			!strings.Contains(w.Text, ":") && isPrintable(w.Text) {
			topSet[math.Round(w.Top*10)/10] = struct{}{}
		}
	}

	tops := make([]float64, 0, len(topSet))
	for top := range topSet {
		tops = append(tops, top)
	}
	sort.Float64s(tops)

	sorted := model.SortByX0(words)

	var lines []string
	for _, top := range tops {
		var tokens []string
		for _, w := range sorted {
			if math.Abs(w.Top-top) <= lineTolerance && !strings.Contains(w.Text, ":") {
				tokens = append(tokens, w.Text)
			}
		}
		line := strings.TrimSpace(strings.Join(tokens, " "))
		if line != "" && !strings.HasPrefix(line, "Name") {
			lines = append(lines, line)
		}
	}

	return lines
}

func firstMatch(words []model.Word, predicate func(model.Word) bool) string {
	for _, w := range words {
		if predicate(w) {
			return w.Text
		}
	}
	return ""
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r != ' ' && !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
