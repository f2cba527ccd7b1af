package bisect

import "errors"

// ErrInvalidOptions is returned by (Options).Validate when
// DesiredPrecisionOnMT2 is negative.
var ErrInvalidOptions = errors.New("bisect: DesiredPrecisionOnMT2 must be non-negative")
