package option_test

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/charmingruby/sumtypes/option"
	"github.com/charmingruby/sumtypes/result"
)

func optionOf(value int, present bool) option.Option[int] {
	if present {
		return option.Some(value)
	}
	return option.None[int]()
}

func halve(x int) option.Option[int] {
	if x%2 == 0 {
		return option.Some(x / 2)
	}
	return option.None[int]()
}

func TestFlattenOfMapIsAndThen(t *testing.T) {
	check := func(value int, present bool) bool {
		opt := optionOf(value, present)
		return option.Flatten(option.Map(opt, halve)) == option.AndThen(opt, halve)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("flatten(map) differs from andThen: %v", err)
	}
}

func TestAndThenAssociatesThroughFlatten(t *testing.T) {
	inc := func(x int) option.Option[int] { return option.Some(x + 3) }
	check := func(value int, present bool) bool {
		opt := optionOf(value, present)
		nested := option.Map(option.Map(opt, halve), func(o option.Option[int]) option.Option[option.Option[int]] {
			return option.Map(o, inc)
		})
		left := option.AndThen(option.AndThen(opt, halve), inc)
		right := option.Flatten(option.Flatten(nested))
		return left == right
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("associativity through flatten failed: %v", err)
	}
}

func TestOkOrRoundTripsThroughOk(t *testing.T) {
	check := func(value int, present bool, missing string) bool {
		opt := optionOf(value, present)
		res := result.OkOr(opt, missing)
		if res.Ok() != opt {
			return false
		}
		return present || res.Err() == option.Some(missing)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("okOr round trip failed: %v", err)
	}
}

func TestOrAndAbsorption(t *testing.T) {
	check := func(a int, aSet bool, b int, bSet bool) bool {
		x, y := optionOf(a, aSet), optionOf(b, bSet)
		none := option.None[int]()
		return x.Or(x) == x &&
			x.And(x) == x &&
			none.Or(y) == y &&
			none.And(y) == none &&
			x.Or(x.And(y)) == x &&
			x.And(x.Or(y)) == x
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("or/and absorption failed: %v", err)
	}
}

func TestFilterAgreesWithAndThen(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	check := func(value int, present bool) bool {
		opt := optionOf(value, present)
		viaAndThen := option.AndThen(opt, func(x int) option.Option[int] {
			if even(x) {
				return option.Some(x)
			}
			return option.None[int]()
		})
		return opt.Filter(even) == viaAndThen && opt.IsSomeAnd(even) == viaAndThen.IsSome()
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("filter disagrees with andThen: %v", err)
	}
}

func TestIterAndContainsAgreeWithPresence(t *testing.T) {
	check := func(value int, present bool) bool {
		opt := optionOf(value, present)
		items := slices.Collect(opt.Iter())
		if len(items) != len(slices.Collect(opt.Iter())) {
			return false
		}
		if !present {
			return len(items) == 0 && !option.Contains(opt, value)
		}
		return slices.Equal(items, []int{value}) && option.Contains(opt, value) && !option.Contains(opt, value+1)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("iter/contains disagree with presence: %v", err)
	}
}
