// Package export serializes a parsed statement: per-table CSV files, a
// combined CSV mirroring the PDF layout, and an XLSX workbook with one sheet
// per table.
package export
