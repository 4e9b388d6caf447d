package model

import "sort"

// Header holds the metadata extracted from the top band of the first page.
// Extraction is best effort: fields the page did not yield stay empty, never
// cause a parse failure.
type Header struct {
	StatementPeriod string
	Status          string
	PAN             string
	Folio           string
	Name            string
	Mobile          string
	Address         []string
}

// Fields returns the scalar header fields as a map, for callers that render
// metadata generically. Address lines are joined with newlines.
func (h Header) Fields() map[string]string {
	address := ""
	for i, line := range h.Address {
		if i > 0 {
			address += "\n"
		}
		address += line
	}
	return map[string]string{
		"statement_period": h.StatementPeriod,
		"status":           h.Status,
		"pan":              h.PAN,
		"folio":            h.Folio,
		"name":             h.Name,
		"mobile":           h.Mobile,
		"address":          address,
	}
}

// Statement is the aggregate result of parsing one capital-gain PDF:
// header metadata, the scheme-level summary table, the labeled detail
// sections, and the full cell provenance across the document. A Statement is
// built page by page by the parser and not mutated once returned.
type Statement struct {
	Header   Header
	Summary  *Table
	Sections map[string]*Table
	Cells    []ExtractedCell
}

// SectionNames returns the detected section names in sorted order.
func (s *Statement) SectionNames() []string {
	names := make([]string, 0, len(s.Sections))
	for name := range s.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
