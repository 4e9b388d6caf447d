package model

// ExtractedCell records the provenance of one non-empty (row, column)
// intersection pulled from the page: the column it was assigned to, the
// joined value, and the exact source tokens that produced it. Cells are
// consumed by export and by cross-validation and are never mutated after
// creation.
type ExtractedCell struct {
	Section string // section name, or "" for the summary table
	Column  string
	Value   string
	Words   []Word // contributing tokens in left-to-right order
}

// NewExtractedCell builds a cell with its own copy of the contributing
// tokens, so later reuse of the caller's slice cannot alter provenance.
func NewExtractedCell(section, column, value string, words []Word) ExtractedCell {
	copied := make([]Word, len(words))
	copy(copied, words)
	return ExtractedCell{
		Section: section,
		Column:  column,
		Value:   value,
		Words:   copied,
	}
}
