package field_test

import (
	"math"
	"testing"

	"github.com/velmaran/noisefield/field"
)

// BenchmarkShallowTree measures a single two-child combinator.
func BenchmarkShallowTree(b *testing.B) {
	f := field.Add{First: field.Constant{Value: 1}, Second: field.Constant{Value: 2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Evaluate(1.5, -2.25, 3.75)
	}
}

// BenchmarkDeepTree measures a 64-level combinator stack: the per-node
// dispatch overhead of the boxed representation.
func BenchmarkDeepTree(b *testing.B) {
	c := field.FromValue(0)
	for i := 0; i < 64; i++ {
		c = c.AddValue(1)
	}
	f := c.Unwrap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Evaluate(1.5, -2.25, 3.75)
	}
}

// BenchmarkWarpedTree measures a displaced, clamped, blended tree with
// spatially varying operands.
func BenchmarkWarpedTree(b *testing.B) {
	varying := field.Func(func(x, y, z float64) (float64, error) {
		return math.Sin(x)*math.Cos(y) + z*0.01, nil
	})
	f := field.From(varying).
		Blend(field.Constant{Value: 0.5}, varying).
		ClampValues(-1, 1).
		Displace(varying, varying, varying).
		Unwrap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Evaluate(float64(i)*0.01, 2.5, -3.5)
	}
}
