// Package numeric collects the small set of numeric-policy constants and
// floating-point comparison helpers shared by conic and bisect.
//
// These are deliberately unexported-package-internal: they encode tolerance
// choices specific to the MT2 pencil/bisection algorithm and are not a
// general-purpose float comparison library.
package numeric
