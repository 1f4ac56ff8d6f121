// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sdd computes semidiscrete decompositions of dense tensors.
//
// # Overview
//
// A semidiscrete decomposition (SDD) approximates an n-dimensional
// tensor as a sum of K weighted outer products of vectors whose entries
// are restricted to {-1, 0, +1}:
//
//	A ≈ Σ_k d[k] · x1[k] ∘ x2[k] ∘ ... ∘ xn[k]
//
// This generalizes the matrix SDD of Kolda and O'Leary to tensors of
// arbitrary order. Terms are extracted greedily: each one is chosen to
// maximize the reduction of the squared residual norm given the terms
// already committed, and within a term the per-mode vectors are refined
// by alternating optimization, where each mode's discrete subproblem is
// solved exactly with the other modes held fixed.
//
// # Basic Usage
//
//	t, _ := tensor.FromSlice(data, tensor.Shape{8, 6, 4})
//	dec, err := sdd.Decompose(t,
//	    sdd.WithMaxTerms(20),
//	    sdd.WithResidualFloor(1e-8),
//	)
//	if err != nil {
//	    // only a missing tensor or an out-of-range parameter gets here
//	}
//	approx := dec.Reconstruct()
//
// # Determinism
//
// All tie-breaking rules (stable magnitude sort, longer-prefix-wins
// objective scan) and the mode update order are fixed, so repeated runs
// on the same input are bit-identical. The optional parallel contraction
// keeps every slice's arithmetic internal to one goroutine and is
// bit-identical to the sequential path as well.
package sdd
