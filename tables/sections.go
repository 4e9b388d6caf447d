package tables

import (
	"strings"

	"github.com/tsawler/capgains/cluster"
	"github.com/tsawler/capgains/layout"
	"github.com/tsawler/capgains/model"
)

// headerSkipTokens are structural words that appear inside a section's
// heading band but are not part of any column name.
var headerSkipTokens = map[string]struct{}{
	"section":       {},
	"a":             {},
	"b":             {},
	"c":             {},
	":":             {},
	"/":             {},
	"subscriptions": {},
	"redemptions":   {},
	"gains":         {},
	"losses":        {},
}

// ParseSections detects the labeled section blocks on a page and
// reconstructs one table per section that has at least one qualifying data
// row. Sections without data rows are omitted; that is expected on pages a
// section does not continue onto, not an error.
func ParseSections(words []model.Word, cfg Config) (map[string]*model.Table, []model.ExtractedCell) {
	boundaries := layout.DetectSections(words, cfg.Sections)
	if len(boundaries) == 0 {
		return nil, nil
	}

	sections := make(map[string]*model.Table)
	var cells []model.ExtractedCell

	for _, boundary := range boundaries {
		table, sectionCells := parseSection(words, boundary, cfg)
		if table == nil {
			continue
		}
		sections[boundary.Name] = table
		cells = append(cells, sectionCells...)
	}

	if len(sections) == 0 {
		return nil, cells
	}
	return sections, cells
}

// parseSection assembles one section's table, or returns nil when the
// section has no qualifying data rows inside the boundary.
func parseSection(words []model.Word, boundary layout.SectionBoundary, cfg Config) (*model.Table, []model.ExtractedCell) {
	var sectionWords []model.Word
	for _, w := range words {
		if c := w.Center(); c >= boundary.Left && c <= boundary.Right && cfg.DetailBand.Contains(w.Top) {
			sectionWords = append(sectionWords, w)
		}
	}
	if len(sectionWords) == 0 {
		return nil, nil
	}

	lines := cluster.Lines(sectionWords, cfg.LineTolerance)

	// Lines at or above the cutoff form the section's own header row.
	var headerWords []model.Word
	headerMaxTop := 0.0
	for _, line := range lines {
		if line.Top > cfg.HeaderCutoff {
			continue
		}
		if line.Top > headerMaxTop {
			headerMaxTop = line.Top
		}
		for _, w := range line.Words {
			if _, skip := headerSkipTokens[strings.ToLower(w.Text)]; !skip {
				headerWords = append(headerWords, w)
			}
		}
	}

	var dataGroups, totalGroups [][]model.Word
	for _, line := range lines {
		if line.Top <= headerMaxTop+cfg.HeaderGapAfter {
			continue
		}
		switch {
		case isTotalRow(line.Words):
			totalGroups = append(totalGroups, line.Words)
		case isDataRow(line.Words, cfg.MinNumericTokens):
			dataGroups = append(dataGroups, line.Words)
		}
	}

	if len(dataGroups) == 0 {
		return nil, nil
	}

	var flattened []model.Word
	for _, group := range dataGroups {
		flattened = append(flattened, group...)
	}
	clusters := cluster.ByGap(flattened, cfg.DataGap)

	var columns []layout.ColumnDef
	headerGroups := cluster.GroupHeaders(headerWords, cfg.HeaderGroupTolerance)
	if len(headerGroups) == 0 {
		columns = layout.ColumnsFromClusters(clusters, headerWords, boundary.Name, cfg.Columns)
	} else {
		bounds := make([]layout.Span, len(clusters))
		for i, c := range clusters {
			bounds[i] = layout.Span{Min: c.MinX0, Max: c.MaxX1}
		}
		columns = layout.ColumnsFromHeaderGroups(headerGroups, boundary.Name, bounds, cfg.Columns)
	}

	table := model.NewTable(columnNames(columns))
	var cells []model.ExtractedCell

	for _, group := range dataGroups {
		rowMap, rowCells := extractRowCells(group, columns, boundary.Name)
		table.AppendRowMap(rowMap)
		cells = append(cells, rowCells...)
	}
	for _, group := range totalGroups {
		rowMap, rowCells := extractRowCells(group, columns, boundary.Name)
		table.AppendRowMap(rowMap)
		cells = append(cells, rowCells...)
	}

	if canonical := canonicalColumns(boundary.Name, len(columns)); canonical != nil {
		table.Rename(canonical)
	}

	return table, cells
}

// isTotalRow reports whether any token in the line starts a "Total" label.
func isTotalRow(words []model.Word) bool {
	for _, w := range words {
		if strings.HasPrefix(strings.TrimSpace(w.Text), "Total") {
			return true
		}
	}
	return false
}

// isDataRow reports whether the line carries enough numeric-looking tokens
// to be a transaction row rather than a stray fragment of heading text.
func isDataRow(words []model.Word, minNumeric int) bool {
	count := 0
	for _, w := range words {
		if looksNumeric(w.Text) {
			count++
			if count >= minNumeric {
				return true
			}
		}
	}
	return false
}
