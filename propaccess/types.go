package propaccess

import "errors"

// Sentinel errors.
var (
	ErrNotStruct       = errors.New("propaccess: not a struct")
	ErrUnknownProperty = errors.New("propaccess: unknown property")
	ErrNotSettable     = errors.New("propaccess: property not settable")
	ErrTypeMismatch    = errors.New("propaccess: type mismatch")
)

// TagName is the struct tag consulted for property names.
const TagName = "prop"
