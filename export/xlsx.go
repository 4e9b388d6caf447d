package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/capgains/model"
)

// maxSheetName is the sheet-name length Excel permits.
const maxSheetName = 31

// WriteXLSX writes the statement as a workbook: a Summary sheet followed by
// one sheet per section in name order. Section names are sanitized to valid
// sheet names; cell values stay verbatim strings so nothing is reformatted.
func WriteXLSX(stmt *model.Statement, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSheet(f, "Summary", stmt.Summary); err != nil {
		return err
	}

	used := map[string]bool{"Summary": true}
	for _, name := range stmt.SectionNames() {
		sheet := sheetName(name, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, stmt.Sections[name]); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *model.Table) error {
	for i, row := range tableRows(t) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("address row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// sheetName maps a section name to a unique, Excel-valid sheet name.
func sheetName(name string, used map[string]bool) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, name)
	sanitized = strings.Join(strings.Fields(sanitized), " ")
	if sanitized == "" {
		sanitized = "Section"
	}
	if len(sanitized) > maxSheetName {
		sanitized = sanitized[:maxSheetName]
	}

	candidate := sanitized
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		trimmed := sanitized
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	used[candidate] = true
	return candidate
}
