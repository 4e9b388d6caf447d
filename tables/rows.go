package tables

import (
	"github.com/tsawler/capgains/layout"
	"github.com/tsawler/capgains/model"
)

// extractRowCells decomposes one row's words into named cell values. For
// each column it selects the tokens whose centers fall inside the column
// band, joins them left to right, and records an ExtractedCell for every
// non-empty value so the result can be cross-checked against the source
// later.
func extractRowCells(rowWords []model.Word, columns []layout.ColumnDef, section string) (map[string]string, []model.ExtractedCell) {
	rowMap := make(map[string]string, len(columns))
	var cells []model.ExtractedCell

	sorted := model.SortByX0(rowWords)

	for _, column := range columns {
		var tokens []model.Word
		for _, w := range sorted {
			if c := w.Center(); c >= column.Left && c <= column.Right {
				tokens = append(tokens, w)
			}
		}

		value := model.JoinWords(tokens)
		rowMap[column.Name] = value
		if value != "" {
			cells = append(cells, model.NewExtractedCell(section, column.Name, value, tokens))
		}
	}

	return rowMap, cells
}

// columnNames returns the ordered column names of a column set.
func columnNames(columns []layout.ColumnDef) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
