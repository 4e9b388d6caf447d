package tables

import "strings"

// looksNumeric reports whether a token reads as a number the way the
// statement prints them: a leading digit followed only by digits, commas,
// periods, slashes or hyphens. Dates (31/01/2018) and negatives rendered
// with trailing hyphens qualify on purpose. A currency sign is ignored.
func looksNumeric(text string) bool {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), "₹", "")
	if cleaned == "" {
		return false
	}

	runes := []rune(cleaned)
	if runes[0] < '0' || runes[0] > '9' {
		return false
	}
	for _, r := range runes[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r == ',' || r == '.' || r == '/' || r == '-':
		default:
			return false
		}
	}
	return true
}
