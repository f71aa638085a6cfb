// Package bignum provides immutable arbitrary-precision numbers on top of
// github.com/cockroachdb/apd/v3.
//
// What
//
//   - BigInt: an integer of unbounded size. Arithmetic returns new values;
//     Quo and Rem truncate toward zero like Go's / and %.
//   - BigFloat: a base-10 decimal with a per-value precision (significant
//     digits, default 34) and rounding mode. Decimal arithmetic is exact
//     where the precision allows, so 0.1 + 0.2 is 0.3.
//   - Number: the interface both satisfy. Compare, Min, Max, Sum, InRange
//     and Parse work across the two.
//
// Precision
//
//	A binary operation on BigFloat uses the receiver's precision and
//	rounding. Operations mixing a BigInt convert it exactly first.
//
// Errors
//
//   - ErrInvalidNumber   for unparsable input, NaN or infinities.
//   - ErrDivisionByZero  for Quo and Rem by zero.
//   - ErrOptionViolation for a zero precision.
//   - Wrapped apd conditions (overflow and the like) from BigFloat arithmetic.
package bignum
