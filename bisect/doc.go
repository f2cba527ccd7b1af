// Package bisect implements the Tombs bisection search for MT2: monotone
// bracket search on a trial parent mass, dispatching at each trial to the
// conic-intersection feasibility oracle in package conic.
package bisect
