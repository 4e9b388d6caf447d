// Package layout turns token clusters into named horizontal bands: column
// definitions used to assign row tokens to columns, and section boundaries
// that partition the page between the labeled Section A/B/C blocks.
package layout
