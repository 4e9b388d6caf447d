// Package model defines the value types shared by the capgains parser:
// positioned word tokens, extracted-cell provenance records, string tables,
// and the aggregate statement returned by a parse.
package model
