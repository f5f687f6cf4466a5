package field

import "math"

// Abs returns the absolute value of its source's output.
type Abs struct {
	Source Field
}

// Evaluate implements Field. Source errors propagate unchanged.
func (n Abs) Evaluate(x, y, z float64) (float64, error) {
	v, err := n.Source.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Abs(v), nil
}

// Exp remaps its base's output into [0,1], raises it to the power given
// by the exponent field, and remaps back to roughly [-1,1]:
//
//	pow(|(base+1)/2|, exponent)*2 - 1
//
// An exponent above 1 deepens troughs; below 1 flattens peaks.
// Base evaluates before exponent; the first error aborts.
type Exp struct {
	Base     Field
	Exponent Field
}

// Evaluate implements Field.
func (n Exp) Evaluate(x, y, z float64) (float64, error) {
	b, err := n.Base.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}
	e, err := n.Exponent.Evaluate(x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Pow(math.Abs((b+1.0)/2.0), e)*2.0 - 1.0, nil
}
