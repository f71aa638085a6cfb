// Package propaccess reads and writes struct properties by name, including
// dotted names that descend through nested structs, pointers, maps and
// slices ("Server.Ports.0").
//
// A property name is resolved against the exported fields of a struct in
// this order: a `prop:"name"` tag, the exact field name, then a
// case-insensitive field name. Fields tagged `prop:"-"` are invisible.
// Fields promoted from embedded structs are found like direct ones.
//
// ToMap turns a struct into a dotarr.Map using the same names, so the
// result can be addressed with dotarr paths; FromMap goes the other way
// through github.com/go-viper/mapstructure/v2 with weak typing.
//
// Errors
//
//   - ErrNotStruct        the value is not a struct or a pointer to one.
//   - ErrUnknownProperty  a segment does not resolve.
//   - ErrNotSettable      Set was not given a non-nil pointer, or the target
//     sits behind a map value, which Go does not let us address.
//   - ErrTypeMismatch     the new value cannot be stored in the field.
package propaccess
