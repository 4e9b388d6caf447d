package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/capgains/model"
)

func sampleStatement() *model.Statement {
	summary := model.NewTable([]string{"Scheme", "Units", "Amount"})
	summary.Rows = [][]string{
		{"ABC Growth", "123.45", "9,876.00"},
		{"Total", "", "9,876.00"},
	}

	sectionA := model.NewTable([]string{"Trxn. Type", "Date", "Units"})
	sectionA.Rows = [][]string{
		{"Purchase", "01/04/2023", "1,000.00"},
	}

	sectionB := model.NewTable([]string{"Type", "Amount"})
	sectionB.Rows = [][]string{
		{"Redemption", "500.00"},
	}

	return &model.Statement{
		Summary: summary,
		Sections: map[string]*model.Table{
			"Section B : Redemptions":   sectionB,
			"Section A : Subscriptions": sectionA,
		},
	}
}

func TestCombinedRows(t *testing.T) {
	rows := CombinedRows(sampleStatement())

	// Title, 3 summary rows, blank, then two section blocks of
	// (name, header, data, blank).
	if len(rows) != 13 {
		t.Fatalf("got %d rows, want 13", len(rows))
	}

	// Every row is padded to the widest row.
	for i, row := range rows {
		if len(row) != 3 {
			t.Errorf("row %d has width %d, want 3", i, len(row))
		}
	}

	if rows[0][0] != combinedTitle {
		t.Errorf("first row = %v, want the summary title", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"Scheme", "Units", "Amount"}) {
		t.Errorf("summary header = %v", rows[1])
	}

	// Sections render in name order: A before B.
	if rows[5][0] != "Section A : Subscriptions" {
		t.Errorf("row 5 = %v, want section A name", rows[5])
	}
	if rows[9][0] != "Section B : Redemptions" {
		t.Errorf("row 9 = %v, want section B name", rows[9])
	}
	// Section B's two-column rows padded with a trailing blank.
	if !reflect.DeepEqual(rows[10], []string{"Type", "Amount", ""}) {
		t.Errorf("section B header = %v", rows[10])
	}
}

func TestWriteCombinedCSVIdempotent(t *testing.T) {
	stmt := sampleStatement()
	dir := t.TempDir()

	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if err := WriteCombinedCSV(stmt, first); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteCombinedCSV(stmt, second); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same statement differ")
	}
	if len(a) == 0 {
		t.Error("combined CSV is empty")
	}
}

func TestWritePerTableCSV(t *testing.T) {
	stmt := sampleStatement()
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := WritePerTableCSV(stmt, dir, "stmt"); err != nil {
		t.Fatalf("WritePerTableCSV() failed: %v", err)
	}

	want := []string{
		"stmt_summary.csv",
		"stmt_section_a__subscriptions.csv",
		"stmt_section_b__redemptions.csv",
	}
	for _, name := range want {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Section A : Subscriptions", "section_a__subscriptions"},
		{"Section C : Gains / Losses", "section_c__gains___losses"},
		{"Summary", "summary"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	stmt := sampleStatement()
	path := filepath.Join(t.TempDir(), "stmt.xlsx")

	if err := WriteXLSX(stmt, path); err != nil {
		t.Fatalf("WriteXLSX() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{}

	got := sheetName("Section A : Subscriptions", used)
	if got != "Section A Subscriptions" {
		t.Errorf("sheetName() = %q", got)
	}

	// A second section that sanitizes to the same name gets a suffix.
	again := sheetName("Section A / Subscriptions", used)
	if again != "Section A Subscriptions 2" {
		t.Errorf("duplicate sheetName() = %q", again)
	}

	long := sheetName("Section B : A Very Long Heading That Overflows The Limit", used)
	if len(long) > 31 {
		t.Errorf("sheet name %q exceeds 31 chars", long)
	}
}
