// Package header extracts investor metadata (statement period, status, PAN,
// folio, name, mobile, address) from the fixed vertical bands at the top of
// the first statement page. Extraction is best effort: a field the page does
// not yield stays empty rather than failing the parse.
package header
