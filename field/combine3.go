package field

// Blend linearly interpolates between First and Second using a weight
// derived from Control's output:
//
//	a = (control + 1) / 2
//	result = (1-a)*first + a*second
//
// A control of -1 selects First exactly, +1 selects Second exactly.
// Control values outside [-1,1] extrapolate; this is deliberate linear
// interpolation, not a clamped blend.
//
// Evaluation order: Control, First, Second; fail-fast.
type Blend struct {
	Control Field
	First   Field
	Second  Field
}

// Evaluate implements Field.
func (n Blend) Evaluate(x, y, z float64) (float64, error) {
	c, err := n.Control.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	f, err := n.First.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	s, err := n.Second.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	a := (c + 1.0) / 2.0

	return (1.0-a)*f + a*s, nil
}

// Clamped restricts Source's output into the closed range defined by the
// outputs of Lower and Upper. The bounds are fields, not constants, so a
// range may vary over space.
//
// Evaluation order: Source, Lower, Upper; fail-fast. If lower exceeds
// upper at the queried point, Evaluate returns ErrInvertedBounds rather
// than guessing an ordering. NaN bounds never clamp.
type Clamped struct {
	Source Field
	Lower  Field
	Upper  Field
}

// Evaluate implements Field.
func (n Clamped) Evaluate(x, y, z float64) (float64, error) {
	v, err := n.Source.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	lo, err := n.Lower.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	hi, err := n.Upper.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	if lo > hi {
		return 0, ErrInvertedBounds
	}
	if v < lo {
		return lo, nil
	}
	if v > hi {
		return hi, nil
	}

	return v, nil
}
