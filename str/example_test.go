package str_test

import (
	"fmt"

	"github.com/katalvlaran/primext/str"
)

// ExampleSnake converts identifiers between conventions.
func ExampleSnake() {
	fmt.Println(str.Snake("userProfileName"))
	fmt.Println(str.Kebab("userProfileName"))
	fmt.Println(str.Studly("user_profile_name"))
	fmt.Println(str.Camel("user-profile-name"))
	// Output:
	// user_profile_name
	// user-profile-name
	// UserProfileName
	// userProfileName
}

// ExampleBetween extracts the middle segment of a dotted key.
func ExampleBetween() {
	fmt.Println(str.Between("db.primary.host", ".", "."))
	// Output: primary
}
