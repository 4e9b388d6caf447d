// Package cluster provides the spatial grouping primitives the parser is
// built on: gap clustering of tokens along the x axis, line grouping by
// vertical position, and center-based grouping of header tokens.
//
// All groupings produce immutable result structs with their bounds and
// centers precomputed; callers never mutate a Cluster, Line, or Group after
// construction.
package cluster
