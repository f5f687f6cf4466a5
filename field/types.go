// Package field defines core types for the scalar-field node algebra
// of github.com/velmaran/noisefield.
package field

// Field is the capability every node implements: produce a scalar for a
// 3D point, or fail.
//
// Contract:
//
//   - Referential transparency: identical inputs to an unmutated node
//     yield identical outputs.
//   - No side effects during evaluation.
//   - A node forwards a child's error unchanged and stops evaluating
//     remaining children once one has failed.
type Field interface {
	// Evaluate samples the field at (x, y, z).
	Evaluate(x, y, z float64) (float64, error)
}

// Func adapts a plain function to the Field capability. Useful for
// ad-hoc fields at tree edges and for injecting probes in tests.
type Func func(x, y, z float64) (float64, error)

// Evaluate implements Field by calling f.
func (f Func) Evaluate(x, y, z float64) (float64, error) {
	return f(x, y, z)
}

// Constant is the leaf source: it returns Value at every point and
// cannot fail.
type Constant struct {
	Value float64
}

// Evaluate implements Field. The point is ignored.
func (c Constant) Evaluate(_, _, _ float64) (float64, error) {
	return c.Value, nil
}
