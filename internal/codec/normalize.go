package codec

import (
	"github.com/spf13/cast"

	"github.com/katalvlaran/primext/dotarr"
)

// Normalize rewrites decoder output so that maps are dotarr.Map and
// sequences are []any, recursively. Non-string map keys are stringified.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(dotarr.Map, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case map[any]any:
		out := make(dotarr.Map, len(t))
		for k, e := range t {
			out[cast.ToString(k)] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	default:
		return v
	}
}
