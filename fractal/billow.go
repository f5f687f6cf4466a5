package fractal

import (
	"math"

	"github.com/velmaran/noisefield/coherent"
)

// Billow sums octaves of folded coherent noise: every raw sample s is
// reshaped to 2·|s|−1 before weighting, which turns smooth variation
// into rounded, billowy ridges. A trailing +0.5 recenters the sum.
//
// Billow is immutable; WithOctaveCount returns a reconfigured copy.
type Billow struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaveCount int
	seed        int64
	quality     coherent.Quality
}

// NewBillow validates opts and constructs a Billow source.
// Returns ErrInvalidParameter if OctaveCount lies outside
// [MinOctaveCount, MaxOctaveCount].
func NewBillow(opts BillowOptions) (*Billow, error) {
	if err := validateOctaveCount(opts.OctaveCount); err != nil {
		return nil, err
	}

	return &Billow{
		frequency:   opts.Frequency,
		lacunarity:  opts.Lacunarity,
		persistence: opts.Persistence,
		octaveCount: opts.OctaveCount,
		seed:        opts.Seed,
		quality:     opts.Quality,
	}, nil
}

// OctaveCount reports the number of octaves summed per sample.
func (b *Billow) OctaveCount() int { return b.octaveCount }

// Seed reports the kernel seed.
func (b *Billow) Seed() int64 { return b.seed }

// WithOctaveCount returns a copy of b configured to sum n octaves.
// Returns ErrInvalidParameter if n lies outside
// [MinOctaveCount, MaxOctaveCount]; b is never modified.
func (b *Billow) WithOctaveCount(n int) (*Billow, error) {
	if err := validateOctaveCount(n); err != nil {
		return nil, err
	}
	cp := *b
	cp.octaveCount = n

	return &cp, nil
}

// Evaluate implements field.Field. Cost is O(OctaveCount); cannot fail.
func (b *Billow) Evaluate(x, y, z float64) (float64, error) {
	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	value := 0.0
	amplitude := 1.0
	for i := 0; i < b.octaveCount; i++ {
		// The kernel indexes an int32 lattice; fold runaway coordinates
		// back into range before sampling.
		nx := coherent.MakeInt32Range(x)
		ny := coherent.MakeInt32Range(y)
		nz := coherent.MakeInt32Range(z)

		signal := coherent.GradientCoherent3D(nx, ny, nz, b.seed+int64(i), b.quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * amplitude

		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
		amplitude *= b.persistence
	}

	return value + 0.5, nil
}
