package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrDecode        = errors.New("codec: decode failed")
	ErrEncode        = errors.New("codec: encode failed")
)

// Format names a document encoding.
type Format string

// Known formats. Text is output-only: scalars are printed bare and
// containers fall back to JSON.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	CUE  Format = "cue"
	HCL  Format = "hcl"
	Text Format = "text"
)

var aliases = map[string]Format{
	"json": JSON,
	"yaml": YAML,
	"yml":  YAML,
	"toml": TOML,
	"cue":  CUE,
	"hcl":  HCL,
	"text": Text,
	"txt":  Text,
}

// ParseFormat resolves a case-insensitive format name or alias.
func ParseFormat(name string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return f, nil
}

// Detect picks a format from the extension of filename.
func Detect(filename string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, filename)
	}
	f, err := ParseFormat(ext)
	if err != nil || f == Text {
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}

	return f, nil
}
