package str

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	studlyCache    sync.Map // string -> string
	camelCache     sync.Map // string -> string
	separatedCache sync.Map // sepKey -> string
)

type sepKey struct {
	s, sep string
}

// Studly converts s to StudlyCase: "foo_bar-baz qux" becomes "FooBarBazQux".
// Words are split on '_', '-' and whitespace; only their first rune is
// upper-cased, the rest is kept as is.
func Studly(s string) string {
	if v, ok := studlyCache.Load(s); ok {
		return v.(string)
	}
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	out := b.String()
	studlyCache.Store(s, out)

	return out
}

// Camel converts s to camelCase: Studly with a lower-cased first rune.
func Camel(s string) string {
	if v, ok := camelCache.Load(s); ok {
		return v.(string)
	}
	out := lowerFirst(Studly(s))
	camelCache.Store(s, out)

	return out
}

// Separated lower-cases s and puts sep in front of every interior
// upper-case rune, after upper-casing the first rune of each
// whitespace-separated word and removing the whitespace. Strings made of
// lower-case letters only are returned unchanged.
//
//	Separated("fooBar", "_")   // "foo_bar"
//	Separated("Foo Bar", "-")  // "foo-bar"
//	Separated("HTTPServer", "_") // "h_t_t_p_server"
func Separated(s, sep string) string {
	key := sepKey{s, sep}
	if v, ok := separatedCache.Load(key); ok {
		return v.(string)
	}
	out := s
	if !isLowerOnly(s) {
		var b strings.Builder
		for _, w := range strings.Fields(s) {
			b.WriteString(upperFirst(w))
		}
		out = insertBeforeUpper(b.String(), sep)
	}
	separatedCache.Store(key, out)

	return out
}

// Snake is Separated with "_".
func Snake(s string) string { return Separated(s, "_") }

// Kebab is Separated with "-".
func Kebab(s string) string { return Separated(s, "-") }

// Lower lower-cases s using Unicode case mapping.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper upper-cases s using Unicode case mapping.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Title upper-cases the first letter of every word and lower-cases the
// rest: "hello wORLD" becomes "Hello World".
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// insertBeforeUpper lower-cases s, prefixing each upper-case rune that is
// not the first one with sep.
func insertBeforeUpper(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteString(sep)
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isLowerOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}

	return true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
