package tables

import "strings"

// Known column schemas for the three section layouts. The extracted header
// names for these sections are frequently ambiguous (headings wrap and
// interleave across columns), so when the extracted column count matches a
// schema exactly the known-correct names are substituted. Values are never
// altered, only the names.
var (
	sectionAColumns = []string{
		"Trxn. Type",
		"Date",
		"Current Units",
		"Source Scheme Units",
		"Original Purchase Cost",
		"**Original Purchase Amount",
		"Grandfathered Nav as on 31/01/2018",
		"GrandFathered Cost Value",
		"IT Applicable NAV",
		"IT Applicable Cost Value",
	}
	sectionBColumns = []string{
		"IT Applicable NAV",
		"IT Applicable Cost Value",
		"Trxn. Type",
		"Date",
		"Units",
		"Amount",
		"Price",
		"Tax Perc",
		"Total Tax",
	}
	sectionCColumns = []string{
		"Tax Perc",
		"Total Tax",
		"Short Term",
		"Indexed Cost",
		"Long Term With Index",
		"Long Term Without Index",
	}
)

// canonicalColumns returns the known-correct column names for a section, or
// nil when the extracted column count does not match the section's schema
// exactly. An inexact count means the layout shifted, and substituting names
// positionally would silently mislabel values.
func canonicalColumns(sectionName string, columnCount int) []string {
	var schema []string
	switch {
	case strings.HasPrefix(sectionName, "Section A"):
		schema = sectionAColumns
	case strings.HasPrefix(sectionName, "Section B"):
		schema = sectionBColumns
	case strings.HasPrefix(sectionName, "Section C"):
		schema = sectionCColumns
	default:
		return nil
	}

	if columnCount != len(schema) {
		return nil
	}
	return schema
}
