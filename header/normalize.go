package header

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaced rebuilds a line from tokens the extractor split
// letter-by-letter: single alphabetic tokens are buffered and glued onto the
// next alphabetic token ("M", "r", "John" becomes "MrJohn"). The result is
// NFC-normalized so decomposed accents compare equal to their composed form.
func NormalizeSpaced(tokens []string) string {
	var rebuilt []string
	buffer := ""

	for _, token := range tokens {
		if isSingleLetter(token) {
			buffer += token
			continue
		}
		if buffer != "" {
			if isAlpha(token) {
				rebuilt = append(rebuilt, buffer+token)
			} else {
				rebuilt = append(rebuilt, buffer, token)
			}
			buffer = ""
			continue
		}
		rebuilt = append(rebuilt, token)
	}
	if buffer != "" {
		rebuilt = append(rebuilt, buffer)
	}

	return norm.NFC.String(strings.Join(rebuilt, " "))
}

func isSingleLetter(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
