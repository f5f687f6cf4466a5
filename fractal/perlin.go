package fractal

import "github.com/velmaran/noisefield/coherent"

// Perlin sums octaves of raw coherent noise — classic fractional
// Brownian motion. Output is zero-centered with a nominal [-1, 1]
// spread for default parameters.
//
// Perlin is immutable; WithOctaveCount returns a reconfigured copy.
type Perlin struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaveCount int
	seed        int64
	quality     coherent.Quality
}

// NewPerlin validates opts and constructs a Perlin source.
// Returns ErrInvalidParameter if OctaveCount lies outside
// [MinOctaveCount, MaxOctaveCount].
func NewPerlin(opts PerlinOptions) (*Perlin, error) {
	if err := validateOctaveCount(opts.OctaveCount); err != nil {
		return nil, err
	}

	return &Perlin{
		frequency:   opts.Frequency,
		lacunarity:  opts.Lacunarity,
		persistence: opts.Persistence,
		octaveCount: opts.OctaveCount,
		seed:        opts.Seed,
		quality:     opts.Quality,
	}, nil
}

// OctaveCount reports the number of octaves summed per sample.
func (p *Perlin) OctaveCount() int { return p.octaveCount }

// WithOctaveCount returns a copy of p configured to sum n octaves.
// Returns ErrInvalidParameter if n lies outside
// [MinOctaveCount, MaxOctaveCount]; p is never modified.
func (p *Perlin) WithOctaveCount(n int) (*Perlin, error) {
	if err := validateOctaveCount(n); err != nil {
		return nil, err
	}
	cp := *p
	cp.octaveCount = n

	return &cp, nil
}

// Evaluate implements field.Field. Cost is O(OctaveCount); cannot fail.
func (p *Perlin) Evaluate(x, y, z float64) (float64, error) {
	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	value := 0.0
	amplitude := 1.0
	for i := 0; i < p.octaveCount; i++ {
		nx := coherent.MakeInt32Range(x)
		ny := coherent.MakeInt32Range(y)
		nz := coherent.MakeInt32Range(z)

		value += coherent.GradientCoherent3D(nx, ny, nz, p.seed+int64(i), p.quality) * amplitude

		x *= p.lacunarity
		y *= p.lacunarity
		z *= p.lacunarity
		amplitude *= p.persistence
	}

	return value, nil
}
