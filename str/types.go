package str

import "errors"

// ErrInvalidLength is returned by Random for a negative length.
var ErrInvalidLength = errors.New("str: length must not be negative")

// Alphabet is the character set used by Random.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
