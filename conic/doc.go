// Package conic decides whether two transverse-mass ellipses share a real
// point.
//
// The decision reduces to root isolation of a cubic derived from the
// one-parameter pencil Q(λ) = A(E1) + λ·A(E2) of the two conics' matrix
// representations: the pencil contains a degenerate member (a pair of
// lines, real or complex-conjugate) at each root of det Q(λ) = 0, and the
// ellipses intersect iff one of those pairs is real and meets either
// ellipse in a real point. See Intersect for the full algorithm.
package conic
