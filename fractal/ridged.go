package fractal

import (
	"math"

	"github.com/velmaran/noisefield/coherent"
)

// RidgedMulti is a ridged multifractal: each octave's sample is folded
// against Offset and squared, and the result feeds the next octave's
// weight through Gain, so detail concentrates along sharp crest lines.
// Spectral weights fall off as frequency^(−Exponent). Output is scaled
// into a nominal [-1, 1].
//
// RidgedMulti is immutable; WithOctaveCount returns a reconfigured copy.
type RidgedMulti struct {
	frequency   float64
	lacunarity  float64
	offset      float64
	gain        float64
	exponent    float64
	octaveCount int
	seed        int64
	quality     coherent.Quality
}

// NewRidgedMulti validates opts and constructs a RidgedMulti source.
// Returns ErrInvalidParameter if OctaveCount lies outside
// [MinOctaveCount, MaxOctaveCount].
func NewRidgedMulti(opts RidgedOptions) (*RidgedMulti, error) {
	if err := validateOctaveCount(opts.OctaveCount); err != nil {
		return nil, err
	}

	return &RidgedMulti{
		frequency:   opts.Frequency,
		lacunarity:  opts.Lacunarity,
		offset:      opts.Offset,
		gain:        opts.Gain,
		exponent:    opts.Exponent,
		octaveCount: opts.OctaveCount,
		seed:        opts.Seed,
		quality:     opts.Quality,
	}, nil
}

// OctaveCount reports the number of octaves summed per sample.
func (r *RidgedMulti) OctaveCount() int { return r.octaveCount }

// WithOctaveCount returns a copy of r configured to sum n octaves.
// Returns ErrInvalidParameter if n lies outside
// [MinOctaveCount, MaxOctaveCount]; r is never modified.
func (r *RidgedMulti) WithOctaveCount(n int) (*RidgedMulti, error) {
	if err := validateOctaveCount(n); err != nil {
		return nil, err
	}
	cp := *r
	cp.octaveCount = n

	return &cp, nil
}

// Evaluate implements field.Field. Cost is O(OctaveCount); cannot fail.
func (r *RidgedMulti) Evaluate(x, y, z float64) (float64, error) {
	x *= r.frequency
	y *= r.frequency
	z *= r.frequency

	value := 0.0
	weight := 1.0
	spectral := 1.0
	for i := 0; i < r.octaveCount; i++ {
		nx := coherent.MakeInt32Range(x)
		ny := coherent.MakeInt32Range(y)
		nz := coherent.MakeInt32Range(z)

		signal := coherent.GradientCoherent3D(nx, ny, nz, r.seed+int64(i), r.quality)
		signal = r.offset - math.Abs(signal)
		signal *= signal
		signal *= weight

		// This octave's signal drives the next octave's weight.
		weight = signal * r.gain
		if weight > 1.0 {
			weight = 1.0
		}
		if weight < 0.0 {
			weight = 0.0
		}

		value += signal * spectral
		spectral = math.Pow(r.lacunarity, -float64(i+1)*r.exponent)

		x *= r.lacunarity
		y *= r.lacunarity
		z *= r.lacunarity
	}

	return value*1.25 - 1.0, nil
}
