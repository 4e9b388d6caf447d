package tables

import (
	"errors"

	"github.com/tsawler/capgains/cluster"
	"github.com/tsawler/capgains/layout"
	"github.com/tsawler/capgains/model"
)

// ErrNoSummaryRow is returned when the scheme-level summary data row cannot
// be located on the first page. The summary table is the one structure a
// statement must have, so the caller treats this as fatal.
var ErrNoSummaryRow = errors.New("scheme summary row not found")

// ParseSummary reconstructs the scheme-level summary table from the first
// page's words: one data row and one total row, with column bands derived
// from the data row's clusters and column names from the header band above
// it.
func ParseSummary(words []model.Word, cfg Config) (*model.Table, []model.ExtractedCell, error) {
	var headerWords, dataWords, totalWords []model.Word
	for _, w := range words {
		switch {
		case cfg.SummaryHeaderBand.Contains(w.Top):
			headerWords = append(headerWords, w)
		case cfg.SummaryDataBand.Contains(w.Top):
			dataWords = append(dataWords, w)
		case cfg.SummaryTotalBand.Contains(w.Top):
			totalWords = append(totalWords, w)
		}
	}

	if len(dataWords) == 0 {
		return nil, nil, ErrNoSummaryRow
	}

	clusters := cluster.ByGap(dataWords, cfg.SummaryGap)
	columns := layout.ColumnsFromClusters(clusters, headerWords, "", cfg.Columns)

	table := model.NewTable(columnNames(columns))
	var cells []model.ExtractedCell

	for _, rowWords := range [][]model.Word{dataWords, totalWords} {
		rowMap, rowCells := extractRowCells(rowWords, columns, "")
		table.AppendRowMap(rowMap)
		cells = append(cells, rowCells...)
	}

	return table, cells, nil
}
