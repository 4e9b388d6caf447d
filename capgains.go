// Package capgains reconstructs the tabular content of mutual-fund
// capital-gain PDF statements — header metadata, the scheme-level summary
// table and the Section A/B/C detail tables — purely from the positions of
// extracted text tokens. The source documents carry no embedded table
// structure; columns and sections are inferred by spatial clustering and the
// result carries full cell provenance so it can be cross-checked against the
// source.
//
// Basic usage:
//
//	stmt, err := capgains.Open("statement.pdf").Parse()
//	if err != nil {
//	    // handle error
//	}
//	err = export.WriteCombinedCSV(stmt, "statement.csv")
//
// With tuned thresholds:
//
//	cfg := tables.DefaultConfig()
//	cfg.SummaryGap = 30
//	stmt, err := capgains.Open("statement.pdf").WithConfig(cfg).Parse()
//
// The parser is tuned for one statement family and is a best-effort
// reconstruction: verify results with the verify package rather than
// trusting arbitrary PDFs.
package capgains

import (
	"github.com/tsawler/capgains/tables"
)

// Open prepares a Parser for the PDF at the given path. Nothing is read
// until Parse is called.
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		config:   tables.DefaultConfig(),
	}
}

// Must wraps a call returning (T, error) and panics on error. Intended for
// scripts and tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
