// Package flag manipulates bit sets stored in integers: test, add, remove
// and toggle flags, or split a set into its individual bits.
//
// Every helper is generic over golang.org/x/exp/constraints.Integer, so
// typed flag enums work directly:
//
//	type Perm uint8
//	const (
//		Read Perm = 1 << iota
//		Write
//		Exec
//	)
//	flag.Has(flag.Add(Read, Write), Write) // true
package flag

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Has reports whether every bit of f is set in set. A zero f is never set.
func Has[T constraints.Integer](set, f T) bool {
	return f != 0 && set&f == f
}

// HasAny reports whether set shares at least one bit with any of fs.
func HasAny[T constraints.Integer](set T, fs ...T) bool {
	for _, f := range fs {
		if set&f != 0 {
			return true
		}
	}

	return false
}

// Add returns set with every bit of fs set.
func Add[T constraints.Integer](set T, fs ...T) T {
	for _, f := range fs {
		set |= f
	}

	return set
}

// Remove returns set with every bit of fs cleared.
func Remove[T constraints.Integer](set T, fs ...T) T {
	for _, f := range fs {
		set &^= f
	}

	return set
}

// Toggle returns set with every bit of fs flipped.
func Toggle[T constraints.Integer](set T, fs ...T) T {
	for _, f := range fs {
		set ^= f
	}

	return set
}

// Only reports whether set is exactly the union of fs.
func Only[T constraints.Integer](set T, fs ...T) bool {
	return set == Add(0, fs...)
}

// Split returns the single-bit values set in set, lowest first. For signed
// types a negative set includes the sign bit as its last element.
// Complexity: O(popcount).
func Split[T constraints.Integer](set T) []T {
	u := uint64(set)
	if w := unsafe.Sizeof(set) * 8; w < 64 {
		u &= 1<<w - 1
	}
	out := make([]T, 0, bits.OnesCount64(u))
	for u != 0 {
		low := u & -u
		out = append(out, T(low))
		u &^= low
	}

	return out
}

// Count returns the number of set bits.
func Count[T constraints.Integer](set T) int {
	return len(Split(set))
}
