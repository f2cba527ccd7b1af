package mt2

import "errors"

// ErrInvalidOptions is returned when Options.DesiredPrecisionOnMT2 is
// negative.
var ErrInvalidOptions = errors.New("mt2: DesiredPrecisionOnMT2 must be non-negative")

// ErrNonFiniteEvent is returned by MakeEllipses when ev or proposedMT2
// carries a NaN or +/-Inf field.
var ErrNonFiniteEvent = errors.New("mt2: event or proposed MT2 is not finite")
