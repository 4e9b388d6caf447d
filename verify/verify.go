// Package verify cross-checks a parsed statement against its source PDF: it
// re-extracts the words independently and confirms that every token recorded
// in the statement's cell provenance still appears with matching text and
// position. Mismatches are reported as human-readable issues, never as
// errors; a verified parse yields an empty issue list.
package verify

import (
	"fmt"
	"math"

	"github.com/tsawler/capgains/model"
	"github.com/tsawler/capgains/reader"
)

// Position tolerances for matching a recorded token against the fresh
// extraction.
const (
	centerTolerance = 2.5
	topTolerance    = 1.5
)

// Statement re-reads the PDF at path and cross-checks the statement's cells
// against it. The returned issues are diagnostics; an empty slice means
// every recorded token was found near its expected position.
func Statement(stmt *model.Statement, path string) ([]string, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var fresh []model.Word
	for i := 0; i < r.NumPages(); i++ {
		words, _, err := r.Page(i)
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, words...)
	}

	return Cells(stmt.Cells, fresh), nil
}

// Cells checks each cell's provenance tokens against a fresh word list. A
// cell contributes at most one issue: the first of its tokens that has no
// positional match.
func Cells(cells []model.ExtractedCell, fresh []model.Word) []string {
	issues := []string{}

	for _, cell := range cells {
		for _, token := range cell.Words {
			if !tokenPresent(token, fresh) {
				section := cell.Section
				if section == "" {
					section = "Summary"
				}
				issues = append(issues, fmt.Sprintf(
					"%s -> %s: token %q not found near expected position",
					section, cell.Column, token.Text,
				))
				break
			}
		}
	}

	return issues
}

func tokenPresent(token model.Word, fresh []model.Word) bool {
	for _, w := range fresh {
		if w.Text == token.Text &&
			math.Abs(w.Center()-token.Center()) <= centerTolerance &&
			math.Abs(w.Top-token.Top) <= topTolerance {
			return true
		}
	}
	return false
}
