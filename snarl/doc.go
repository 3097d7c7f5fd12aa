// Package snarl implements the boundary-paired snarl type and the index
// that accumulates them while walking a cactus graph's bridge forest
// (spec.md §5 "Snarl" / §6 "SnarlIndex").
//
// A Snarl is a pair of biedged endpoints (its boundaries) plus a Type
// distinguishing a chain pair (two endpoints of the same cycle) from a
// bridge pair (the two ends of a path of bridge edges). Index stores
// snarls by rank and indexes them by both boundaries so a caller can
// ask "what snarls touch this endpoint" in either role.
//
// This package is a close, generics-based port of
// original_source/src/snarls.rs's Snarl<T>/SnarlMap/SnarlMapIter: Go
// generics stand in for Rust's impl<T> blocks, and Snarl[T].MapData is
// a free function (snarl.MapData) because Go methods cannot introduce
// a second type parameter.
package snarl
