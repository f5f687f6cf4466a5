// Package fractal provides the leaf noise sources of the field algebra:
// octave-summing generators built on the coherent-noise kernel, plus an
// OpenSimplex-backed single-octave source.
//
// What:
//
//   - Billow: folds each octave's sample with 2·|s|−1, producing a
//     ridged, cloud-like signal biased by a trailing +0.5.
//   - Perlin: classic fractional Brownian motion; raw octave samples
//     weighted by persistence.
//   - RidgedMulti: ridged multifractal with gain-fed octave weights;
//     sharp crest lines for mountainous terrain.
//   - Simplex: a frequency-scaled OpenSimplex source, for callers who
//     want a lattice-artifact-free base signal.
//
// All sources implement field.Field and are immutable once constructed;
// reconfiguration (WithOctaveCount) returns a new instance, so a source
// shared between goroutines can never be mutated under a reader.
//
// Options:
//
//   - Frequency: base spatial scale of the first octave.
//   - Lacunarity: per-octave frequency multiplier.
//   - Persistence: per-octave amplitude multiplier (Billow, Perlin).
//   - OctaveCount: number of octaves summed; must lie in
//     [MinOctaveCount, MaxOctaveCount].
//   - Seed: keys the kernel; every octave i samples with Seed+i.
//   - Quality: kernel interpolation fidelity (coherent.Quality).
//   - Offset, Gain, Exponent: RidgedMulti curve shape.
//
// Complexity: Evaluate is O(OctaveCount) per sample, allocation-free.
//
// Errors:
//
//   - ErrInvalidParameter: octave count outside the permitted range,
//     reported by constructors and WithOctaveCount. Recoverable; pick a
//     valid count.
package fractal
