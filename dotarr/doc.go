// Package dotarr provides dot-notated access to nested maps: get, set, test
// for existence, delete and introspect values inside a tree of
// map[string]any and []any using a single key such as "a.b.c".
//
// What
//
//   - Key splitter: Split / Parse turn a string or integer key (or a
//     sequence of them) into Paths of non-empty segments.
//   - Nested accessor: GetPath, SetPath, DeletePath, HasPath, MatchPath walk,
//     create or remove nested containers one segment at a time.
//   - Batch dispatcher: Get, Set, Delete, Has, KeyMatches accept a single key
//     or a sequence of keys; the *Many variants return one result per key.
//   - Conversion: Convert nests a flat map of dotted keys, Flatten does the
//     reverse; Is reports whether a tree is addressable by dot paths at all.
//
// Containers
//
//	Only two container kinds are recognised: Map (map[string]any) and []any.
//	A Map segment is looked up as a key; a []any segment must be a canonical
//	non-negative decimal index ("0", "12", not "+1" or "01"). Every other value
//	is a leaf and stops descent.
//
// Soft failure
//
//	Missing paths are never errors. Get reports absence through its default
//	value, Has and Delete through false, MatchPath through a shorter result.
//	The only error a key can produce is ErrInvalidKeyType.
//
// Destructive coercion
//
//	SetPath materialises an empty Map at every intermediate segment that is
//	missing or holds a leaf, overwriting that leaf. Intermediate []any values
//	are kept when the segment indexes into them (or appends at len), and are
//	promoted to a Map keyed by "0".."n-1" otherwise, so list items survive.
//
// Ordering
//
//	Batch operations apply keys left to right. Where input arrives as a Map
//	(Convert, Set with a Map of pairs) there is no insertion order, so keys
//	are applied deepest first (more segments first, ties lexical). A key that
//	is a strict prefix of another is therefore applied last and replaces the
//	whole subtree. Use ConvertOrdered or SetMany for an explicit order.
//
// Complexity (d = path depth, n = number of keys)
//
//   - Get/Has/Delete/Set: O(d) map operations; list deletion adds O(len).
//   - Batch variants: O(n·d).
//   - Convert/Flatten/Is/Clone: O(size of tree), Convert adds O(n log n) sorting.
//
// Usage
//
//	m := dotarr.Map{}
//	_ = dotarr.Set(m, "db.primary.host", "10.0.0.1")
//	host, _ := dotarr.Get(m, "db.primary.host", "localhost")
//	ok, _ := dotarr.Has(m, "db.primary.port")             // false
//	both, _ := dotarr.GetMany(m, []string{"db.primary.host", "db.port"}, 5432)
//	nested := dotarr.Convert(dotarr.Map{"a.b": 1, "a.c": 2}) // {"a": {"b": 1, "c": 2}}
//
// Errors
//
//   - ErrInvalidKeyType  key is not a string, integer, Path or sequence of those.
//   - ErrNilRoot         a mutating call received a nil root Map.
//   - ErrPathNotFound    Decode was asked for a path that does not resolve.
package dotarr
