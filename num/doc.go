// Package num tests and coerces loosely typed scalars, the kind of values
// found in decoded JSON, YAML or form input, and offers generic range
// helpers over Go's numeric types.
//
// What
//
//   - Predicates: IsInt, IsFloat, IsNum, IsNumeric, IsBool, IsBoolish.
//   - Lenient coercion: ToInt, ToFloat, ToBool convert anything convertible
//     (ToInt truncates 3.9 to 3).
//   - Asserting coercion: AInt, AFloat, ABool, ANum only accept values that
//     already represent the requested kind ("3" and 3.0 are ints, 3.5 is not)
//     and AIntRange / AFloatRange add an inclusive bound check.
//   - Generic helpers: InRange, Between, Clamp, Sign, IsPositive, IsNegative,
//     IsEven, IsOdd, AlmostEqual.
//
// Errors
//
//   - ErrNotInt, ErrNotFloat, ErrNotBool, ErrNotNumber for values of the
//     wrong kind, wrapped with the offending value.
//   - ErrOutOfRange from the *Range variants.
package num
