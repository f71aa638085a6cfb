package num

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts v to int64, truncating floats.
func ToInt(v any) (int64, error) {
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotInt, err)
	}

	return n, nil
}

// ToFloat converts v to float64.
func ToFloat(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotFloat, err)
	}

	return f, nil
}

// ToBool converts v to bool, accepting every IsBoolish spelling before
// falling back to cast's rules (any non-zero number is true).
func ToBool(v any) (bool, error) {
	if b, ok := boolish(v); ok {
		return b, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNotBool, err)
	}

	return b, nil
}

// AInt returns v as int64 when it represents a whole number: an integer
// kind, a float with no fractional part, or a string of either. Whole
// numbers outside the int64 range report ErrOutOfRange.
func AInt(v any) (int64, error) {
	if IsInt(v) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			u := rv.Uint()
			if u > math.MaxInt64 {
				return 0, fmt.Errorf("%w: %d overflows int64", ErrOutOfRange, u)
			}
			return int64(u), nil
		default:
			return rv.Int(), nil
		}
	}
	if !IsFloat(v) && !IsNumeric(v) {
		return 0, fmt.Errorf("%w: %#v", ErrNotInt, v)
	}
	if s, ok := trim(v).(string); ok {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := ToFloat(trim(v))
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %#v", ErrNotInt, v)
	}
	// float64(math.MaxInt64) rounds up to 2^63, the first value that overflows.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %#v overflows int64", ErrOutOfRange, v)
	}

	return int64(f), nil
}

// AFloat returns v as float64 when it is a number or a numeric string.
func AFloat(v any) (float64, error) {
	if !IsNumeric(v) {
		return 0, fmt.Errorf("%w: %#v", ErrNotFloat, v)
	}

	return ToFloat(trim(v))
}

// ABool returns v as bool when it is boolish.
func ABool(v any) (bool, error) {
	b, ok := boolish(v)
	if !ok {
		return false, fmt.Errorf("%w: %#v", ErrNotBool, v)
	}

	return b, nil
}

// ANum returns v as float64 when it is numeric; unlike AFloat it reports
// ErrNotNumber.
func ANum(v any) (float64, error) {
	if !IsNumeric(v) {
		return 0, fmt.Errorf("%w: %#v", ErrNotNumber, v)
	}

	return ToFloat(trim(v))
}

// AIntRange is AInt followed by an inclusive [lo, hi] check.
func AIntRange(v any, lo, hi int64) (int64, error) {
	n, err := AInt(v)
	if err != nil {
		return 0, err
	}
	if !InRange(n, lo, hi) {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, lo, hi)
	}

	return n, nil
}

// AFloatRange is AFloat followed by an inclusive [lo, hi] check.
func AFloatRange(v any, lo, hi float64) (float64, error) {
	f, err := AFloat(v)
	if err != nil {
		return 0, err
	}
	if !InRange(f, lo, hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, f, lo, hi)
	}

	return f, nil
}

func trim(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}

	return v
}
