// Package compare orders and compares values: generic three-way comparison
// for ordered types, loose comparison for dynamically typed scalars, deep
// structural equality for nested trees, and composable Comparer functions
// for sorting.
//
// Loose comparison
//
//	Loose compares two values the way a config or form layer sees them:
//	numbers and numeric strings compare numerically ("10" > 9.5), booleans
//	order false before true, other strings compare bytewise, and nil is
//	only equal to nil. Containers are not comparable.
//
// Structural equality
//
//	Equal and Diff delegate to github.com/google/go-cmp. Options adjust the
//	comparison: WithEquateEmpty treats nil and empty maps or slices alike,
//	WithEquateApprox tolerates float rounding. Unexported struct fields are
//	compared too, and values with an Equal method (bignum.BigInt, time.Time)
//	are compared through it, so any value can be passed without a panic.
package compare
