// Package tables assembles the statement's tables from positioned word
// tokens: the scheme-level summary row on the first page and the Section
// A/B/C detail tables. It is the orchestration layer over the cluster and
// layout primitives, and the only place the canonical column-name overrides
// are applied.
package tables
