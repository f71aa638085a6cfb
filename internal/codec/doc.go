// Package codec reads documents in several text formats into dotarr.Map
// trees and writes values back out.
//
// Supported formats: JSON, YAML, TOML, CUE and HCL attribute files. The
// format of a file is detected from its extension; standard input needs an
// explicit format. Decoded trees are normalised so that every nested map is
// a dotarr.Map and every sequence is a []any, which is what the dotarr
// accessor walks.
//
// Errors:
//
//	ErrUnknownFormat - the name or extension does not map to a format.
//	ErrDecode        - the input is malformed or not a map at the top level.
//	ErrEncode        - the value cannot be represented in the output format.
package codec
