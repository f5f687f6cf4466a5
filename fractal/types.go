// Package fractal defines options, constants, and sentinel errors for
// the fractal noise sources of github.com/velmaran/noisefield.
package fractal

import "github.com/velmaran/noisefield/coherent"

// Octave-count bounds and shared parameter defaults.
const (
	// MinOctaveCount is the smallest permitted octave count.
	MinOctaveCount = 1
	// MaxOctaveCount is the largest permitted octave count.
	MaxOctaveCount = 30

	// DefaultFrequency is the base spatial scale of the first octave.
	DefaultFrequency = 1.0
	// DefaultLacunarity doubles the frequency every octave.
	DefaultLacunarity = 2.0
	// DefaultPersistence halves the amplitude every octave.
	DefaultPersistence = 0.5
	// DefaultOctaveCount sums six octaves.
	DefaultOctaveCount = 6
	// DefaultSeed keys the kernel when the caller does not care.
	DefaultSeed = int64(0)

	// DefaultOffset shapes RidgedMulti's fold.
	DefaultOffset = 1.0
	// DefaultGain feeds one octave's signal into the next octave's weight.
	DefaultGain = 2.0
	// DefaultExponent controls RidgedMulti's per-octave spectral falloff.
	DefaultExponent = 1.0
)

// BillowOptions configures a Billow source.
//
// Example:
//
//	opts := fractal.DefaultBillowOptions()
//	opts.Seed = 42
//	opts.OctaveCount = 4
//	b, err := fractal.NewBillow(opts)
type BillowOptions struct {
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	OctaveCount int
	Seed        int64
	Quality     coherent.Quality
}

// DefaultBillowOptions returns BillowOptions with the package defaults
// and Standard quality.
func DefaultBillowOptions() BillowOptions {
	return BillowOptions{
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		OctaveCount: DefaultOctaveCount,
		Seed:        DefaultSeed,
		Quality:     coherent.Standard,
	}
}

// PerlinOptions configures a Perlin source. Fields mirror BillowOptions;
// the two sources differ only in per-octave signal shaping.
type PerlinOptions struct {
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	OctaveCount int
	Seed        int64
	Quality     coherent.Quality
}

// DefaultPerlinOptions returns PerlinOptions with the package defaults
// and Standard quality.
func DefaultPerlinOptions() PerlinOptions {
	return PerlinOptions{
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		OctaveCount: DefaultOctaveCount,
		Seed:        DefaultSeed,
		Quality:     coherent.Standard,
	}
}

// RidgedOptions configures a RidgedMulti source. Persistence does not
// apply: octave weights are driven by Gain and the spectral Exponent.
type RidgedOptions struct {
	Frequency   float64
	Lacunarity  float64
	Offset      float64
	Gain        float64
	Exponent    float64
	OctaveCount int
	Seed        int64
	Quality     coherent.Quality
}

// DefaultRidgedOptions returns RidgedOptions with the package defaults
// and Standard quality.
func DefaultRidgedOptions() RidgedOptions {
	return RidgedOptions{
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Offset:      DefaultOffset,
		Gain:        DefaultGain,
		Exponent:    DefaultExponent,
		OctaveCount: DefaultOctaveCount,
		Seed:        DefaultSeed,
		Quality:     coherent.Standard,
	}
}

// SimplexOptions configures a Simplex source. Single octave; no quality
// level applies (the OpenSimplex kernel has one fidelity).
type SimplexOptions struct {
	Frequency float64
	Seed      int64
}

// DefaultSimplexOptions returns SimplexOptions with the package defaults.
func DefaultSimplexOptions() SimplexOptions {
	return SimplexOptions{
		Frequency: DefaultFrequency,
		Seed:      DefaultSeed,
	}
}
