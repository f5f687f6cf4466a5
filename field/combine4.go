package field

// Displace warps the coordinate space seen by Source: the X, Y, and Z
// fields are each sampled at the original query point, and their three
// outputs become the coordinate at which Source is sampled. This is a
// full per-axis coordinate replacement, not an additive offset.
//
// Evaluation order: X, Y, Z, then Source; fail-fast.
type Displace struct {
	Source Field
	X      Field
	Y      Field
	Z      Field
}

// Evaluate implements Field.
func (n Displace) Evaluate(x, y, z float64) (float64, error) {
	dx, err := n.X.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	dy, err := n.Y.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	dz, err := n.Z.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}

	return n.Source.Evaluate(dx, dy, dz)
}
