package bisect

// Options configures the bisection engine. It mirrors mt2.Options field
// for field; it is kept as a separate local type (rather than imported)
// so that package mt2 can depend on bisect without a cycle.
//
// Fields:
//
//	DesiredPrecisionOnMT2    - absolute termination tolerance on MT2 itself
//	                            (not MT2^2). Zero requests the tightest
//	                            precision the floating-point type permits.
//	UseDeciSectionsInitially - legacy-compatibility flag; accepted but
//	                            not read by Run, which always refines
//	                            the bracket by pure bisection.
type Options struct {
	DesiredPrecisionOnMT2    float64
	UseDeciSectionsInitially bool
}

// DefaultOptions returns the engine's default configuration: tightest
// feasible precision, no deci-section warm-up.
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
