package fractal_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/velmaran/noisefield/coherent"
	"github.com/velmaran/noisefield/fractal"
)

// BillowSuite groups construction, validation, and evaluation tests for
// the Billow source.
type BillowSuite struct {
	suite.Suite
}

// TestOctaveValidation: 0 and 31 are rejected with ErrInvalidParameter;
// every count in [1, 30] is accepted.
func (s *BillowSuite) TestOctaveValidation() {
	for _, bad := range []int{-1, 0, 31, 100} {
		opts := fractal.DefaultBillowOptions()
		opts.OctaveCount = bad
		_, err := fractal.NewBillow(opts)
		require.Error(s.T(), err, "octave count %d", bad)
		require.True(s.T(), errors.Is(err, fractal.ErrInvalidParameter),
			"octave count %d must report ErrInvalidParameter, got %v", bad, err)
	}
	for n := fractal.MinOctaveCount; n <= fractal.MaxOctaveCount; n++ {
		opts := fractal.DefaultBillowOptions()
		opts.OctaveCount = n
		b, err := fractal.NewBillow(opts)
		require.NoError(s.T(), err, "octave count %d", n)
		require.Equal(s.T(), n, b.OctaveCount())
	}
}

// TestWithOctaveCount: reconfiguration copies; the original is untouched.
func (s *BillowSuite) TestWithOctaveCount() {
	b, err := fractal.NewBillow(fractal.DefaultBillowOptions())
	require.NoError(s.T(), err)

	c, err := b.WithOctaveCount(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, c.OctaveCount())
	require.Equal(s.T(), fractal.DefaultOctaveCount, b.OctaveCount(), "original must not mutate")
	require.NotSame(s.T(), b, c)

	_, err = b.WithOctaveCount(0)
	require.True(s.T(), errors.Is(err, fractal.ErrInvalidParameter))
	_, err = b.WithOctaveCount(31)
	require.True(s.T(), errors.Is(err, fractal.ErrInvalidParameter))
}

// TestDeterminism: identical parameters yield bit-identical samples;
// changing only the seed moves the field at some sampled point.
func (s *BillowSuite) TestDeterminism() {
	opts := fractal.DefaultBillowOptions()
	opts.Seed = 42
	a, err := fractal.NewBillow(opts)
	require.NoError(s.T(), err)
	b, err := fractal.NewBillow(opts)
	require.NoError(s.T(), err)

	opts.Seed = 43
	c, err := fractal.NewBillow(opts)
	require.NoError(s.T(), err)

	differs := false
	for i := 0; i < 32; i++ {
		x := 0.37 + float64(i)*0.83
		y := -1.21 + float64(i)*0.41
		z := 2.05 - float64(i)*0.29
		va, err := a.Evaluate(x, y, z)
		require.NoError(s.T(), err)
		vb, err := b.Evaluate(x, y, z)
		require.NoError(s.T(), err)
		require.Equal(s.T(), va, vb, "same parameters must be bit-identical at (%v,%v,%v)", x, y, z)

		vc, err := c.Evaluate(x, y, z)
		require.NoError(s.T(), err)
		differs = differs || va != vc
	}
	require.True(s.T(), differs, "changing the seed alone must change some sample")
}

// TestSingleOctaveAgainstKernel cross-checks the octave loop's wiring:
// with one octave, Billow is exactly 2·|kernel| − 1 + 0.5 at the
// frequency-scaled point.
func (s *BillowSuite) TestSingleOctaveAgainstKernel() {
	opts := fractal.DefaultBillowOptions()
	opts.OctaveCount = 1
	opts.Frequency = 2.5
	opts.Seed = 7
	opts.Quality = coherent.Best
	b, err := fractal.NewBillow(opts)
	require.NoError(s.T(), err)

	x, y, z := 0.4, -1.7, 3.3
	raw := coherent.GradientCoherent3D(
		coherent.MakeInt32Range(x*2.5),
		coherent.MakeInt32Range(y*2.5),
		coherent.MakeInt32Range(z*2.5),
		7, coherent.Best)
	want := 2.0*math.Abs(raw) - 1.0 + 0.5

	got, err := b.Evaluate(x, y, z)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)
}

// TestQualityChangesOutput: the configured fidelity reaches the kernel.
func (s *BillowSuite) TestQualityChangesOutput() {
	mk := func(q coherent.Quality) *fractal.Billow {
		opts := fractal.DefaultBillowOptions()
		opts.Quality = q
		b, err := fractal.NewBillow(opts)
		require.NoError(s.T(), err)

		return b
	}
	fast, best := mk(coherent.Fast), mk(coherent.Best)

	differs := false
	for i := 0; i < 32 && !differs; i++ {
		x := 0.29 + float64(i)*0.57
		vf, err := fast.Evaluate(x, x*0.7, -x*0.3)
		require.NoError(s.T(), err)
		vb, err := best.Evaluate(x, x*0.7, -x*0.3)
		require.NoError(s.T(), err)
		differs = vf != vb
	}
	require.True(s.T(), differs, "Fast and Best must disagree somewhere off-lattice")
}

// TestConcurrentSampling: a shared immutable source is safe to sample
// from many goroutines; the race detector backs this up.
func (s *BillowSuite) TestConcurrentSampling() {
	b, err := fractal.NewBillow(fractal.DefaultBillowOptions())
	require.NoError(s.T(), err)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = b.Evaluate(float64(g)+float64(i)*0.01, 0.5, -0.5)
			}
		}(g)
	}
	wg.Wait()
}

func TestBillowSuite(t *testing.T) {
	suite.Run(t, new(BillowSuite))
}
