package tables

import (
	"github.com/tsawler/capgains/layout"
)

// Config holds every heuristic threshold the assembler depends on. All
// values are undocumented tuning constants recovered from one statement
// family (CAMS capital-gain statements); revisit them before pointing the
// parser at a different document template.
type Config struct {
	// SummaryHeaderBand, SummaryDataBand and SummaryTotalBand are the
	// vertical bands of the summary table's header, data row and total row
	// on the first page.
	SummaryHeaderBand layout.Band
	SummaryDataBand   layout.Band
	SummaryTotalBand  layout.Band

	// SummaryGap is the x-gap threshold for clustering the summary data row
	// into columns. Summary columns are widely spaced.
	SummaryGap float64

	// DetailBand is the vertical band the section detail rows occupy.
	DetailBand layout.Band

	// HeaderCutoff splits a section's band: lines at or above it are the
	// section's own header row, lines below are candidate data rows.
	HeaderCutoff float64

	// HeaderGapAfter is how far below the last header line a line must sit
	// before it is considered a data candidate.
	HeaderGapAfter float64

	// LineTolerance groups section words into visual lines.
	LineTolerance float64

	// DataGap is the x-gap threshold for clustering section data rows into
	// column positions. Detail columns are tightly packed.
	DataGap float64

	// HeaderGroupTolerance groups section header tokens into column-name
	// groups by center distance.
	HeaderGroupTolerance float64

	// MinNumericTokens is how many numeric-looking tokens a line needs to
	// qualify as a data row.
	MinNumericTokens int

	// Sections configures section-label detection and boundary expansion.
	Sections layout.SectionOptions

	// Columns configures column-band construction margins.
	Columns layout.ColumnOptions
}

// DefaultConfig returns the thresholds the reference statement family was
// tuned with.
func DefaultConfig() Config {
	return Config{
		SummaryHeaderBand:    layout.Band{Min: 228, Max: 245},
		SummaryDataBand:      layout.Band{Min: 248, Max: 265},
		SummaryTotalBand:     layout.Band{Min: 266, Max: 285},
		SummaryGap:           35.0,
		DetailBand:           layout.Band{Min: 330, Max: 420},
		HeaderCutoff:         372.0,
		HeaderGapAfter:       2.0,
		LineTolerance:        1.5,
		DataGap:              4.0,
		HeaderGroupTolerance: 24.0,
		MinNumericTokens:     2,
		Sections:             layout.DefaultSectionOptions(),
		Columns:              layout.DefaultColumnOptions(),
	}
}
