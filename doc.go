// Package primext is a set of small, dependable helpers for the dynamic
// data Go programs receive from configuration files, JSON payloads and
// templating: nested maps, loosely typed scalars, strings and bit flags.
//
// What is in the box?
//
//	dotarr/     dot-path get, set, has, delete and key matching over nested
//	            maps and lists, batch keys, Convert/Flatten, Decode
//	arr/        string-keyed facade plus Only, Except, Pluck, Chunk, Keys...
//	str/        case conversion (Studly, Camel, Snake, Kebab), search helpers,
//	            wildcard Is, Limit, Random
//	num/        numeric predicates, coercion and ranges
//	bignum/     arbitrary-precision integers and decimals
//	flag/       bit-flag helpers over any integer type
//	traverse/   Map, depth-first Walk and breadth-first Levels over trees
//	propaccess/ dot-path access to struct fields by tag or name
//	compare/    ordered, loose and deep comparison; composable comparers
//
// A command-line tool, cmd/primext, applies the dotarr operations to JSON,
// YAML, TOML, CUE and HCL documents.
//
// Quick example
//
//	m := dotarr.Map{}
//	_ = dotarr.Set(m, "db.replicas.0.host", "10.0.0.2")
//	host, _ := dotarr.Get(m, "db.replicas.0.host", "localhost")
//
// Soft failure
//
//	Lookups never fail on a missing path: Get returns the default, Has
//	returns false and Delete reports false. The only errors are malformed
//	keys (ErrInvalidKeyType) and a nil root given to a mutating call.
package primext
