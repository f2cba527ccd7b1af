// Package batch evaluates MT2 over broadcastable arrays of events.
//
// Eval takes ten Fields — one per kinematic input — each either a scalar
// or an N-dimensional slice of values, computes their common broadcast
// Shape the way NumPy-style broadcasting does (trailing dimensions
// aligned, size-1 dimensions stretched), and evaluates mt2.Compute once
// per output element. A bad element (infeasible kinematics, non-finite
// input) contributes mt2.NegativeSentinel to its slot and does not abort
// the rest of the batch.
//
// EvalGrid is a 2-D convenience wrapper over Eval for the common scan of
// a column vector of trial mass_1 values against a row vector of
// mass_2 values, returning a *mat.Dense.
package batch
