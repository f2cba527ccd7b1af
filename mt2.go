package mt2

import "github.com/tgmt2/mt2/bisect"

// Compute returns the stransverse mass MT2 for ev, or NegativeSentinel if
// no MT2 can be computed (infeasible input, non-finite input, invalid
// opts, or bracket-expansion exhaustion).
//
// Compute never panics and never returns an error: every failure mode
// collapses to the negative sentinel, per the scalar engine's contract.
func Compute(ev Event, opts Options) float64 {
	return bisect.Run(
		ev.MVis1, ev.PxVis1, ev.PyVis1,
		ev.MVis2, ev.PxVis2, ev.PyVis2,
		ev.PxMiss, ev.PyMiss,
		ev.MInvis1, ev.MInvis2,
		bisect.Options{
			DesiredPrecisionOnMT2:    opts.DesiredPrecisionOnMT2,
			UseDeciSectionsInitially: opts.UseDeciSectionsInitially,
		},
	)
}

// NegativeSentinel is the value Compute returns on failure; re-exported
// from bisect so callers never need to import that package directly to
// compare against it.
const NegativeSentinel = bisect.NegativeSentinel
