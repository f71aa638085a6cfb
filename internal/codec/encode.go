package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primext/dotarr"
)

// Encode writes v to w in format f. indent is the number of spaces per
// nesting level where the format supports it; 0 means compact for JSON and
// the encoder default elsewhere. TOML and HCL need a Map at the top level.
func Encode(w io.Writer, v any, f Format, indent int) error {
	if indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrEncode, indent)
	}

	var err error
	switch f {
	case JSON:
		err = encodeJSON(w, v, indent)
	case YAML:
		err = encodeYAML(w, v, indent)
	case TOML:
		err = encodeTOML(w, v, indent)
	case CUE:
		err = encodeCUE(w, v)
	case HCL:
		err = encodeHCL(w, v)
	case Text:
		err = encodeText(w, v, indent)
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, f, err)
	}

	return nil
}

func encodeJSON(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func encodeTOML(w io.Writer, v any, indent int) error {
	m, ok := v.(dotarr.Map)
	if !ok {
		return fmt.Errorf("top level must be a map, got %T", v)
	}
	enc := toml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndentSymbol(strings.Repeat(" ", indent)).SetIndentTables(true)
	}

	return enc.Encode(m)
}

func encodeCUE(w io.Writer, v any) error {
	val := cuecontext.New().Encode(v)
	if err := val.Err(); err != nil {
		return err
	}
	b, err := format.Node(val.Syntax(cue.Final(), cue.Concrete(true)))
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")

	return err
}

func encodeHCL(w io.Writer, v any) error {
	m, ok := v.(dotarr.Map)
	if !ok {
		return fmt.Errorf("top level must be a map, got %T", v)
	}

	file := hclwrite.NewEmptyFile()
	body := file.Body()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !hclsyntax.ValidIdentifier(k) {
			return fmt.Errorf("key %q is not a valid attribute name", k)
		}
		val, err := toCty(m[k])
		if err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		body.SetAttributeValue(k, val)
	}
	_, err := file.WriteTo(w)

	return err
}

// encodeText prints scalars bare and string lists one per line. Other
// containers fall back to JSON.
func encodeText(w io.Writer, v any, indent int) error {
	switch t := v.(type) {
	case dotarr.Map, []any:
		return encodeJSON(w, v, indent)
	case []string:
		for _, line := range t {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	case nil:
		_, err := io.WriteString(w, "null\n")
		return err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")

	return err
}
