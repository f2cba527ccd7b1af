// Package mt2 computes the stransverse mass (MT2) for a pair of decay
// branches in a collider event.
//
// Given the transverse kinematics of two visible particles, the total
// missing transverse momentum, and hypothesised masses of two unseen
// invisible decay products, MT2 is the minimum, over all consistent
// partitions of the missing momentum between the two invisible particles,
// of the larger of the two transverse masses computed for each branch.
//
// 🎯 What is mt2?
//
//	A pure, allocation-free numerical core that brings together:
//
//	  • ellipse/ — closed-form transverse-mass conic construction
//	  • conic/   — real conic-pencil intersection (the feasibility oracle)
//	  • bisect/  — the Tombs bracket-search bisection engine
//	  • batch/   — broadcasting evaluation over arrays of events
//
// ✨ Design goals:
//
//   - Single authoritative algorithm — no Lester/Lally variants, no
//     user-selectable solver.
//   - Deterministic, side-effect free: no global state, no I/O, no logging
//     in the scalar path.
//   - Negative sentinel convention: any strictly negative return means "no
//     MT2 computed" — never interpret it as a valid mass.
//
// Compute is the scalar entry point; package batch vectorises it over
// broadcastable arrays. MakeEllipses exposes the same conic-construction
// formulas Compute uses internally, for external diagnostic plotting.
//
//	go get github.com/tgmt2/mt2
package mt2
