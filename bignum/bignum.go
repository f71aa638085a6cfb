package bignum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
func Compare(a, b Number) int {
	return a.Decimal().Cmp(b.Decimal())
}

// Max returns the greatest of its arguments; the first wins on ties.
func Max(first Number, rest ...Number) Number {
	best := first
	for _, n := range rest {
		if Compare(n, best) > 0 {
			best = n
		}
	}

	return best
}

// Min returns the least of its arguments; the first wins on ties.
func Min(first Number, rest ...Number) Number {
	best := first
	for _, n := range rest {
		if Compare(n, best) < 0 {
			best = n
		}
	}

	return best
}

// Sum adds ns exactly. The precision is raised above DefaultPrecision when
// the operands span more digits, so no digit is rounded away. The empty sum
// is 0.
func Sum(ns ...Number) (BigFloat, error) {
	ctx, _ := newContext(nil)
	ds := make([]*apd.Decimal, len(ns))
	var lo, hi int64
	for i, n := range ns {
		d := n.Decimal()
		ds[i] = d
		low := int64(d.Exponent)
		high := low + d.NumDigits()
		if i == 0 || low < lo {
			lo = low
		}
		if i == 0 || high > hi {
			hi = high
		}
	}
	// Carries add at most len(strconv.Itoa(len(ns))) leading digits.
	if need := hi - lo + int64(len(strconv.Itoa(len(ns)))); need > int64(ctx.Precision) {
		ctx.Precision = uint32(need)
	}

	acc := new(apd.Decimal)
	for _, d := range ds {
		if _, err := ctx.Add(acc, acc, d); err != nil {
			return BigFloat{}, fmt.Errorf("bignum: sum: %w", err)
		}
	}

	return BigFloat{d: acc, ctx: ctx}, nil
}

// InRange reports lo <= v <= hi.
func InRange(v, lo, hi Number) bool {
	return Compare(lo, v) <= 0 && Compare(v, hi) <= 0
}

// Parse returns a BigInt for integer literals and a BigFloat otherwise.
func Parse(s string, opts ...Option) (Number, error) {
	s = strings.TrimSpace(s)
	if i, err := ParseInt(s); err == nil {
		return i, nil
	}

	return ParseFloat(s, opts...)
}
