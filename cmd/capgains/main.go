// Command capgains parses a capital-gain statement PDF and writes its
// reconstructed tables to CSV and, optionally, an XLSX workbook. It prints
// the extracted header fields and reports any cross-check issues against the
// source document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/capgains"
	"github.com/tsawler/capgains/export"
	"github.com/tsawler/capgains/verify"
)

func main() {
	var (
		outDir   = flag.String("out", ".", "directory for per-table CSV files")
		combined = flag.String("combined", "", "path for the combined CSV (default <pdf stem>.csv in -out)")
		xlsx     = flag.String("xlsx", "", "optional path for an XLSX workbook")
		perTable = flag.Bool("tables", false, "also write one CSV per table")
		check    = flag.Bool("check", true, "cross-check the parse against the source PDF")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] statement.pdf\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))

	stmt, err := capgains.Open(pdfPath).Parse()
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}

	fmt.Printf("Name:   %s\n", stmt.Header.Name)
	fmt.Printf("PAN:    %s\n", stmt.Header.PAN)
	fmt.Printf("Folio:  %s\n", stmt.Header.Folio)
	fmt.Printf("Status: %s\n", stmt.Header.Status)
	fmt.Printf("Period: %s\n", stmt.Header.StatementPeriod)
	if stmt.Summary != nil {
		fmt.Printf("Summary: %d columns, %d rows\n", stmt.Summary.ColCount(), stmt.Summary.RowCount())
	}
	for _, name := range stmt.SectionNames() {
		t := stmt.Sections[name]
		fmt.Printf("%s: %d columns, %d rows\n", name, t.ColCount(), t.RowCount())
	}

	combinedPath := *combined
	if combinedPath == "" {
		combinedPath = filepath.Join(*outDir, stem+".csv")
	}
	if err := export.WriteCombinedCSV(stmt, combinedPath); err != nil {
		log.Fatalf("write combined CSV: %v", err)
	}
	fmt.Printf("Wrote %s\n", combinedPath)

	if *perTable {
		if err := export.WritePerTableCSV(stmt, *outDir, stem); err != nil {
			log.Fatalf("write per-table CSVs: %v", err)
		}
	}

	if *xlsx != "" {
		if err := export.WriteXLSX(stmt, *xlsx); err != nil {
			log.Fatalf("write XLSX: %v", err)
		}
		fmt.Printf("Wrote %s\n", *xlsx)
	}

	if *check {
		issues, err := verify.Statement(stmt, pdfPath)
		if err != nil {
			log.Fatalf("cross-check failed to run: %v", err)
		}
		if len(issues) == 0 {
			fmt.Println("Cross-check: OK")
		} else {
			fmt.Printf("Cross-check: %d issue(s)\n", len(issues))
			for _, issue := range issues {
				fmt.Println("  " + issue)
			}
		}
	}
}
