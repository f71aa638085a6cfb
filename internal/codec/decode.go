package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primext/dotarr"
)

// Decode parses data in format f into a tree. name is used in error
// messages and by the CUE and HCL parsers for positions.
// An empty document decodes to an empty Map.
func Decode(data []byte, f Format, name string) (dotarr.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return dotarr.Map{}, nil
	}

	var (
		raw any
		err error
	)
	switch f {
	case JSON:
		err = json.Unmarshal(data, &raw)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	case TOML:
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		raw = m
	case CUE:
		raw, err = decodeCUE(data, name)
	case HCL:
		raw, err = decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%w: cannot decode %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrDecode, f, name, err)
	}

	m, ok := Normalize(raw).(dotarr.Map)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s: top level is %T, not a map", ErrDecode, f, name, raw)
	}

	return m, nil
}

func decodeCUE(data []byte, name string) (any, error) {
	v := cuecontext.New().CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, err
	}
	var m map[string]any
	if err := v.Decode(&m); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeHCL(data []byte, name string) (any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	m := make(map[string]any, len(attrs))
	for key, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", key, err)
		}
		m[key] = native
	}

	return m, nil
}
