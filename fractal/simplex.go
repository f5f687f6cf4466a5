package fractal

import "github.com/ojrac/opensimplex-go"

// Simplex is a single-octave OpenSimplex source: a lattice-artifact-free
// alternative base signal in roughly [-1, 1]. The wrapped generator is
// seeded once at construction and never mutated, so Simplex is safe for
// concurrent sampling like every other source.
type Simplex struct {
	frequency float64
	noise     opensimplex.Noise
}

// NewSimplex constructs a Simplex source; construction cannot fail.
func NewSimplex(opts SimplexOptions) *Simplex {
	return &Simplex{
		frequency: opts.Frequency,
		noise:     opensimplex.New(opts.Seed),
	}
}

// Evaluate implements field.Field; cannot fail.
func (s *Simplex) Evaluate(x, y, z float64) (float64, error) {
	return s.noise.Eval3(x*s.frequency, y*s.frequency, z*s.frequency), nil
}
