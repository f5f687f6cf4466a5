// File: field/example_test.go
package field_test

import (
	"fmt"

	"github.com/velmaran/noisefield/field"
)

////////////////////////////////////////////////////////////////////////////////
// Example: fluent chain construction
////////////////////////////////////////////////////////////////////////////////

// ExampleChain demonstrates composing a tree with the three call-site
// flavors: literals, a deferred factory, and direct fields.
// Every operand is point-independent, so the field is 29 everywhere:
// max(25, ((15+3)*3)-20) - 5 = max(25, 34) - 5 = 29.
func ExampleChain() {
	f := field.FromValue(25).
		MaxFunc(func() field.Field {
			return field.FromValue(15).AddValue(3).MultiplyValue(3).SubtractValue(20)
		}).
		SubtractValue(5)

	v, _ := f.Evaluate(0, 0, 0)
	fmt.Println(v)

	w, _ := f.Evaluate(-42.5, 7, 1e6)
	fmt.Println(w)

	// Output:
	// 29
	// 29
}

////////////////////////////////////////////////////////////////////////////////
// Example: Blend endpoints
////////////////////////////////////////////////////////////////////////////////

// ExampleBlend shows the interpolated blend selecting each endpoint:
// a control of -1 yields the first field, +1 the second.
func ExampleBlend() {
	first := field.Constant{Value: 10}
	second := field.Constant{Value: 20}

	toFirst := field.Blend{Control: field.Constant{Value: -1}, First: first, Second: second}
	toSecond := field.Blend{Control: field.Constant{Value: 1}, First: first, Second: second}

	a, _ := toFirst.Evaluate(0, 0, 0)
	b, _ := toSecond.Evaluate(0, 0, 0)
	fmt.Println(a, b)

	// Output:
	// 10 20
}

////////////////////////////////////////////////////////////////////////////////
// Example: Clamped with inverted bounds
////////////////////////////////////////////////////////////////////////////////

// ExampleClamped_invertedBounds shows the explicit error policy when a
// range's lower bound exceeds its upper bound at evaluation time.
func ExampleClamped_invertedBounds() {
	c := field.Clamped{
		Source: field.Constant{Value: 0},
		Lower:  field.Constant{Value: 1},
		Upper:  field.Constant{Value: -1},
	}
	_, err := c.Evaluate(0, 0, 0)
	fmt.Println(err)

	// Output:
	// field: clamp lower bound exceeds upper bound
}
