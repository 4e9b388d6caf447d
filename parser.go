package capgains

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tsawler/capgains/header"
	"github.com/tsawler/capgains/model"
	"github.com/tsawler/capgains/reader"
	"github.com/tsawler/capgains/tables"
)

// Parser parses one capital-gain statement PDF. Configuration methods return
// a new Parser, so a configured Parser can be shared and reused safely.
type Parser struct {
	filename string
	config   tables.Config
}

// WithConfig returns a Parser using the given threshold configuration
// instead of the defaults.
func (p *Parser) WithConfig(cfg tables.Config) *Parser {
	return &Parser{
		filename: p.filename,
		config:   cfg,
	}
}

// Parse reads the PDF and reconstructs the statement. The header and summary
// table come from the first page; detail sections are collected from every
// page, concatenated in page order, and tagged with a Page column when the
// document has more than one page. A missing summary row aborts the parse
// with ErrSummaryNotFound; a section with no qualifying rows is simply
// absent from the result.
func (p *Parser) Parse() (*model.Statement, error) {
	r, err := reader.Open(p.filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pageCount := r.NumPages()
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, p.filename)
	}
	multiPage := pageCount > 1

	stmt := &model.Statement{
		Sections: make(map[string]*model.Table),
	}

	for i := 0; i < pageCount; i++ {
		words, pageText, err := r.Page(i)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			stmt.Header = header.Extract(words, pageText)

			summary, cells, err := tables.ParseSummary(words, p.config)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", p.filename, err)
			}
			if multiPage {
				summary.InsertColumn(0, "Page", "1")
			}
			stmt.Summary = summary
			stmt.Cells = append(stmt.Cells, cells...)
		}

		pageSections, cells := tables.ParseSections(words, p.config)
		mergeSections(stmt, pageSections, i, multiPage)
		stmt.Cells = append(stmt.Cells, cells...)
	}

	return stmt, nil
}

// mergeSections folds one page's section tables into the statement,
// concatenating rows when a section continues across pages.
func mergeSections(stmt *model.Statement, pageSections map[string]*model.Table, pageIndex int, multiPage bool) {
	names := make([]string, 0, len(pageSections))
	for name := range pageSections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		table := pageSections[name]
		if multiPage {
			table.InsertColumn(0, "Page", strconv.Itoa(pageIndex+1))
		}
		if existing, ok := stmt.Sections[name]; ok {
			existing.AppendRows(table)
		} else {
			stmt.Sections[name] = table
		}
	}
}
