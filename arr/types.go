package arr

import (
	"errors"

	"github.com/katalvlaran/primext/dotarr"
)

// Sentinel errors.
var (
	// ErrNilRoot mirrors dotarr.ErrNilRoot so callers can match either.
	ErrNilRoot = dotarr.ErrNilRoot

	// ErrInvalidSize is returned by Chunk for a size below 1.
	ErrInvalidSize = errors.New("arr: chunk size must be positive")
)

// Map is the nested map type shared with dotarr.
type Map = dotarr.Map
