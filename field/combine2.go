package field

import "math"

// Two-child combinators. Each evaluates First, then Second; the first
// child error aborts evaluation and is returned unchanged. Order is
// observable only through that short-circuit.

// Add sums the outputs of its two children.
type Add struct {
	First  Field
	Second Field
}

// Evaluate implements Field.
func (n Add) Evaluate(x, y, z float64) (float64, error) {
	a, b, err := pair(n.First, n.Second, x, y, z)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

// Subtract returns first minus second.
type Subtract struct {
	First  Field
	Second Field
}

// Evaluate implements Field.
func (n Subtract) Evaluate(x, y, z float64) (float64, error) {
	a, b, err := pair(n.First, n.Second, x, y, z)
	if err != nil {
		return 0, err
	}

	return a - b, nil
}

// Multiply returns the product of its two children.
type Multiply struct {
	First  Field
	Second Field
}

// Evaluate implements Field.
func (n Multiply) Evaluate(x, y, z float64) (float64, error) {
	a, b, err := pair(n.First, n.Second, x, y, z)
	if err != nil {
		return 0, err
	}

	return a * b, nil
}

// Min returns the pairwise minimum of its two children.
// NaN in either operand yields NaN (math.Min semantics).
type Min struct {
	First  Field
	Second Field
}

// Evaluate implements Field.
func (n Min) Evaluate(x, y, z float64) (float64, error) {
	a, b, err := pair(n.First, n.Second, x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Min(a, b), nil
}

// Max returns the pairwise maximum of its two children.
// NaN in either operand yields NaN (math.Max semantics).
type Max struct {
	First  Field
	Second Field
}

// Evaluate implements Field.
func (n Max) Evaluate(x, y, z float64) (float64, error) {
	a, b, err := pair(n.First, n.Second, x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Max(a, b), nil
}

// pair evaluates first then second, failing fast on the first error.
func pair(first, second Field, x, y, z float64) (a, b float64, err error) {
	if a, err = first.Evaluate(x, y, z); err != nil {
		return 0, 0, err
	}
	if b, err = second.Evaluate(x, y, z); err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
