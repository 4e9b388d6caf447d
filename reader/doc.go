// Package reader supplies the parser's input contract: per page, positioned
// word tokens and the page's plain text. It adapts github.com/ledongthuc/pdf,
// assembling its per-glyph-run text fragments into words and converting the
// bottom-origin PDF coordinates into the top-origin space the rest of the
// module works in.
package reader
