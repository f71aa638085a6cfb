package num

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for coercion and assertion.
var (
	ErrNotInt     = errors.New("num: not an integer")
	ErrNotFloat   = errors.New("num: not a float")
	ErrNotBool    = errors.New("num: not a boolean")
	ErrNotNumber  = errors.New("num: not a number")
	ErrOutOfRange = errors.New("num: value out of range")
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// boolWords maps the accepted boolean spellings, lower-cased.
var boolWords = map[string]bool{
	"1": true, "true": true, "yes": true, "on": true, "y": true,
	"0": false, "false": false, "no": false, "off": false, "n": false,
}
