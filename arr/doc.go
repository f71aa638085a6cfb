// Package arr collects helpers for map[string]any trees and plain slices.
//
// The dot-path functions (Get, Set, Has, Forget, Only, Except, Pluck) are a
// string-keyed facade over package dotarr: since a string key can never be
// of the wrong type they report no key errors and read more naturally at
// call sites that only deal in literal paths.
//
// The remaining helpers are generic slice and map utilities: Wrap, First,
// Last, Flatten, Collapse, Keys, Divide, Unique, Chunk and Where.
//
// Errors
//
//   - ErrNilRoot      when Set receives a nil map.
//   - ErrInvalidSize  when Chunk is asked for a non-positive size.
package arr
