package num

import (
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// IsInt reports whether v has a signed or unsigned integer kind.
func IsInt(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsFloat reports whether v has a floating point kind.
func IsFloat(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()

	return k == reflect.Float32 || k == reflect.Float64
}

// IsNum reports whether v is an integer or a float.
func IsNum(v any) bool {
	return IsInt(v) || IsFloat(v)
}

// IsNumeric is IsNum extended to strings that parse as a finite number.
// "NaN", "Inf" and "Infinity" are not numeric.
func IsNumeric(v any) bool {
	if IsNum(v) {
		return true
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(s))

	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsBool reports whether v is a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)

	return ok
}

// IsBoolish reports whether v is a bool, the integer 0 or 1, or one of
// "1", "0", "true", "false", "yes", "no", "on", "off", "y", "n" in any case.
func IsBoolish(v any) bool {
	_, ok := boolish(v)

	return ok
}

func boolish(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		out, ok := boolWords[strings.ToLower(strings.TrimSpace(b))]

		return out, ok
	}
	if IsInt(v) {
		n, err := cast.ToInt64E(v)
		if err == nil && (n == 0 || n == 1) {
			return n == 1, true
		}
	}

	return false, false
}

// All reports whether pred holds for every element. An empty slice is true.
func All(vs []any, pred func(any) bool) bool {
	for _, v := range vs {
		if !pred(v) {
			return false
		}
	}

	return true
}
