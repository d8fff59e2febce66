package option_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/sumtypes/option"
)

func ExampleOption_Filter() {
	lookup := func(id int) option.Option[string] {
		if id == 42 {
			return option.Some("service-account")
		}
		return option.None[string]()
	}
	name := option.Map(lookup(42).Filter(func(s string) bool {
		return strings.HasPrefix(s, "service")
	}), strings.ToUpper)
	fmt.Println(name.UnwrapOr("anonymous"))
	fmt.Println(lookup(7).UnwrapOr("anonymous"))
	// Output:
	// SERVICE-ACCOUNT
	// anonymous
}

func ExampleFlatten() {
	nested := option.Some(option.Some(option.Some(3)))
	fmt.Println(option.Flatten(nested))
	fmt.Println(option.Flatten(option.Flatten(nested)).Unwrap())
	// Output:
	// Some(Some(3))
	// 3
}
