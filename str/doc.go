// Package str provides string helpers for keys and identifiers: case
// conversion (Studly, Camel, Snake, Kebab), substring extraction (Before,
// After, Between), prefix and suffix tests, rune-aware truncation, simple
// "*" wildcard matching and random alphanumeric tokens.
//
// Case conversions are memoised per input in a process-wide cache guarded by
// sync.Map, so the helpers are safe for concurrent use. Lower, Upper and
// Title are Unicode aware through golang.org/x/text/cases.
package str
