// Package ellipse builds and classifies the transverse-mass conic used by
// the MT2 feasibility oracle.
//
// A single decay branch (one visible leg plus one hypothesised invisible
// mass) constrains the invisible transverse momentum to lie on an ellipse
// in the (x, y) invisible-momentum plane, for any trial parent mass. Build
// constructs the six coefficients of that conic from the branch's physical
// quantities; Params exposes the derived quantities (determinants, centre,
// non-degeneracy) that conic.Intersect needs to decide feasibility.
package ellipse
