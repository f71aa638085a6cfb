package str

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StartsWith reports whether s begins with any non-empty needle.
func StartsWith(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.HasPrefix(s, n) {
			return true
		}
	}

	return false
}

// EndsWith reports whether s ends with any non-empty needle.
func EndsWith(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.HasSuffix(s, n) {
			return true
		}
	}

	return false
}

// Contains reports whether s contains any non-empty needle.
func Contains(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}

	return false
}

// ContainsAll reports whether s contains every needle. No needles means true.
func ContainsAll(s string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}

	return true
}

// Before returns the part of s before the first search. s is returned
// unchanged when search is empty or absent.
func Before(s, search string) string {
	if search == "" {
		return s
	}
	if before, _, ok := strings.Cut(s, search); ok {
		return before
	}

	return s
}

// After returns the part of s after the first search, or s when search is
// empty or absent.
func After(s, search string) string {
	if search == "" {
		return s
	}
	if _, after, ok := strings.Cut(s, search); ok {
		return after
	}

	return s
}

// BeforeLast returns the part of s before the last search.
func BeforeLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[:i]
	}

	return s
}

// AfterLast returns the part of s after the last search.
func AfterLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[i+len(search):]
	}

	return s
}

// Between returns the part of s after the first from and before the last to.
func Between(s, from, to string) string {
	if from == "" || to == "" {
		return s
	}

	return BeforeLast(After(s, from), to)
}

// Length counts runes, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Limit truncates s to n runes, trims trailing whitespace and appends end.
// Strings of at most n runes are returned unchanged.
func Limit(s string, n int, end string) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)

	return strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + end
}

// Is matches s against pattern where '*' stands for any run of runes,
// including none. Every other rune matches itself.
func Is(pattern, s string) bool {
	if pattern == s {
		return true
	}
	p, in := []rune(pattern), []rune(s)
	pIdx, sIdx := 0, 0
	star, mark := -1, 0
	for sIdx < len(in) {
		if pIdx < len(p) && p[pIdx] != '*' && p[pIdx] == in[sIdx] {
			pIdx++
			sIdx++
			continue
		}
		if pIdx < len(p) && p[pIdx] == '*' {
			star = pIdx
			pIdx++
			mark = sIdx
			continue
		}
		if star >= 0 {
			// let the last '*' swallow one more rune
			pIdx = star + 1
			mark++
			sIdx = mark
			continue
		}

		return false
	}
	for pIdx < len(p) && p[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(p)
}
