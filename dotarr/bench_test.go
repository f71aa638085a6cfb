package dotarr_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/primext/dotarr"
)

// deepTree builds a chain of depth nested maps and returns it with the
// dotted key of its leaf.
func deepTree(depth int) (dotarr.Map, string) {
	root := dotarr.Map{}
	node := root
	segs := make([]string, depth)
	for i := 0; i < depth; i++ {
		segs[i] = "k" + strconv.Itoa(i)
		if i == depth-1 {
			node[segs[i]] = i
			break
		}
		next := dotarr.Map{}
		node[segs[i]] = next
		node = next
	}

	return root, strings.Join(segs, ".")
}

// BenchmarkGet_Deep measures a 32-level dotted lookup including key parsing.
func BenchmarkGet_Deep(b *testing.B) {
	m, key := deepTree(32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dotarr.Get(m, key, nil)
	}
}

// BenchmarkGetPath_Deep measures the same lookup with a pre-split path.
func BenchmarkGetPath_Deep(b *testing.B) {
	m, key := deepTree(32)
	p, _ := dotarr.Split(key)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotarr.GetPath(m, p, nil)
	}
}

// BenchmarkSet_Fresh creates an 8-level path in an empty map each iteration.
func BenchmarkSet_Fresh(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = dotarr.Set(dotarr.Map{}, "a.b.c.d.e.f.g.h", i)
	}
}

// BenchmarkConvert expands 1000 three-level keys.
func BenchmarkConvert(b *testing.B) {
	flat := make(dotarr.Map, 1000)
	for i := 0; i < 1000; i++ {
		flat["g"+strconv.Itoa(i%10)+".s"+strconv.Itoa(i%100)+".k"+strconv.Itoa(i)] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotarr.Convert(flat)
	}
}
