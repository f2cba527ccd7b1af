package mt2

// Options configures MT2 evaluation.
//
// Fields:
//
//	DesiredPrecisionOnMT2    - absolute termination tolerance on MT2 itself
//	                            (not MT2^2). Zero requests the tightest
//	                            precision the floating-point type permits.
//	UseDeciSectionsInitially - legacy-compatibility flag, carried through
//	                            to the bisection engine; an implementation
//	                            that ignores it in favour of pure bisection
//	                            is a conforming one.
type Options struct {
	DesiredPrecisionOnMT2    float64
	UseDeciSectionsInitially bool
}

// DefaultOptions returns the tightest-precision, no-deci-section default.
func DefaultOptions() Options {
	return Options{
		DesiredPrecisionOnMT2:    0.0,
		UseDeciSectionsInitially: false,
	}
}

// Validate reports ErrInvalidOptions if DesiredPrecisionOnMT2 is negative.
func (o Options) Validate() error {
	if o.DesiredPrecisionOnMT2 < 0 {
		return ErrInvalidOptions
	}

	return nil
}
