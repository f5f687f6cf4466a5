package fractal

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a configuration value outside its
// permitted range. Match with errors.Is.
var ErrInvalidParameter = errors.New("fractal: parameter outside valid range")

// errOctaveCount wraps ErrInvalidParameter with the offending count.
func errOctaveCount(n int) error {
	return fmt.Errorf("%w: octave count %d not in [%d, %d]",
		ErrInvalidParameter, n, MinOctaveCount, MaxOctaveCount)
}

// validateOctaveCount rejects counts outside [MinOctaveCount, MaxOctaveCount].
func validateOctaveCount(n int) error {
	if n < MinOctaveCount || n > MaxOctaveCount {
		return errOctaveCount(n)
	}

	return nil
}
