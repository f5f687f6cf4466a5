// Package coherent defines the quality enumeration for the
// gradient-coherent-noise kernel of github.com/velmaran/noisefield.
package coherent

// Quality selects the interpolation curve used between lattice
// gradients, trading evaluation cost for smoothness.
//
//   - Fast     — linear interpolation; visible lattice creases, cheapest.
//   - Standard — cubic s-curve t²(3-2t); smooth value, discontinuous
//     second derivative.
//   - Best     — quintic s-curve t³(6t²-15t+10); smooth first and second
//     derivatives, most expensive.
type Quality int

const (
	// Fast uses linear interpolation between lattice gradients.
	Fast Quality = iota
	// Standard uses a cubic s-curve.
	Standard
	// Best uses a quintic s-curve.
	Best
)

// String returns the lowercase name of the quality level.
func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Standard:
		return "standard"
	case Best:
		return "best"
	default:
		return "unknown"
	}
}
