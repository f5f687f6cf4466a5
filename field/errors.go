package field

import "errors"

// ErrInvertedBounds indicates a Clamped node whose lower bound exceeded
// its upper bound at evaluation time.
var ErrInvertedBounds = errors.New("field: clamp lower bound exceeds upper bound")
