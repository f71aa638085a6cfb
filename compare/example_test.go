package compare_test

import (
	"fmt"

	"github.com/katalvlaran/primext/compare"
)

// ExampleBy sorts records by several keys.
func ExampleBy() {
	type file struct {
		Dir  string
		Size int
	}
	files := []file{{"b", 10}, {"a", 5}, {"b", 30}, {"a", 7}}

	byDir := compare.By(func(f file) string { return f.Dir })
	bySize := compare.By(func(f file) int { return f.Size })
	byDir.Then(bySize.Reverse()).Sort(files)

	fmt.Println(files)
	// Output: [{a 7} {a 5} {b 30} {b 10}]
}

// ExampleLoose compares a numeric string with a float.
func ExampleLoose() {
	c, err := compare.Loose("10", 9.5)
	fmt.Println(c, err)
	// Output: 1 <nil>
}
