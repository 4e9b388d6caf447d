package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/capgains/model"
)

// combinedTitle heads the summary block of the combined export, matching the
// title the statement prints above its scheme-level table.
const combinedTitle = "Capital Gain / Loss – Scheme level"

// WritePerTableCSV writes one CSV per table into dir: <stem>_summary.csv for
// the summary and <stem>_<slug>.csv per section. The directory is created if
// missing.
func WritePerTableCSV(stmt *model.Statement, dir, stem string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeTableCSV(filepath.Join(dir, stem+"_summary.csv"), stmt.Summary); err != nil {
		return err
	}

	for _, name := range stmt.SectionNames() {
		path := filepath.Join(dir, stem+"_"+Slugify(name)+".csv")
		if err := writeTableCSV(path, stmt.Sections[name]); err != nil {
			return err
		}
	}

	return nil
}

// WriteCombinedCSV writes a single CSV mirroring the PDF layout: the titled
// summary block first, then each section block in name order, separated by
// blank rows, with every row padded to the widest row's width.
func WriteCombinedCSV(stmt *model.Statement, path string) error {
	rows := CombinedRows(stmt)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CombinedRows renders the combined layout as raw rows, padded rectangular.
// Exposed so callers can rebuild the layout without touching the filesystem.
func CombinedRows(stmt *model.Statement) [][]string {
	var rows [][]string

	rows = append(rows, []string{combinedTitle})
	rows = append(rows, tableRows(stmt.Summary)...)
	rows = append(rows, []string{""})

	for _, name := range stmt.SectionNames() {
		rows = append(rows, []string{name})
		rows = append(rows, tableRows(stmt.Sections[name])...)
		rows = append(rows, []string{""})
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	return rows
}

// Slugify turns a section name into a filename fragment: lower-cased, with
// spaces and slashes as underscores and colons removed.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "/", "_")
	slug = strings.ReplaceAll(slug, ":", "")
	return slug
}

// tableRows renders a table as its column row followed by its data rows. An
// empty or missing table renders as just its column row.
func tableRows(t *model.Table) [][]string {
	if t == nil {
		return nil
	}
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		rows = append(rows, append([]string(nil), row...))
	}
	return rows
}

func writeTableCSV(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(tableRows(t)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
