// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import (
	"fmt"
	"math"

	"github.com/tensoralg/sdd/tensor"
)

// Decomposition is the result of a semidiscrete tensor decomposition: an
// ordered sequence of rank-one terms, each a scalar weight times an
// outer product of per-mode sign vectors with entries in {-1, 0, +1}.
type Decomposition struct {
	// Shape is the shape of the decomposed tensor.
	Shape tensor.Shape

	// Weights holds the weight of each committed term, in extraction
	// order.
	Weights []float64

	// Factors groups the sign vectors by mode: Factors[j][k] is the
	// mode-j vector of term k, of length Shape[j], entries in {-1, 0, +1}.
	Factors [][][]float64

	// Iterations records the number of refinement passes each term took.
	Iterations []int

	// ResidualSq traces the residual squared-norm estimate after each
	// committed term. It is non-increasing and non-negative.
	ResidualSq []float64

	// FinalResidual is the deflated working tensor after the last
	// committed term, equal to the input minus the sum of all expanded
	// terms.
	FinalResidual *tensor.Tensor
}

// Len returns the number of committed terms.
func (d *Decomposition) Len() int {
	return len(d.Weights)
}

// Term returns the mode vectors of term k, ordered by mode.
func (d *Decomposition) Term(k int) [][]float64 {
	xs := make([][]float64, len(d.Factors))
	for j := range d.Factors {
		xs[j] = d.Factors[j][k]
	}
	return xs
}

// Reconstruct sums the expanded terms into a full tensor, the rank-K
// approximation of the decomposed input.
func (d *Decomposition) Reconstruct() *tensor.Tensor {
	out := tensor.Zeros(d.Shape)
	for k := range d.Weights {
		out.AddScaled(d.Weights[k], Expand(d.Term(k)))
	}
	return out
}

// Decompose computes a greedy semidiscrete decomposition of t: rank-one
// terms are extracted one at a time, each chosen to reduce the squared
// residual norm given the terms already committed, and the residual is
// deflated by the expanded term before the next extraction.
//
// The input tensor must be non-nil and of order two or more; it is
// never modified. Parameters take their documented defaults unless
// overridden by options.
//
// Extraction stops after the configured maximum number of terms, or
// earlier once the residual norm estimate drops below the configured
// floor. Early termination is a normal outcome, not an error.
func Decompose(t *tensor.Tensor, opts ...Option) (*Decomposition, error) {
	if t == nil {
		return nil, ErrMissingInput
	}
	if t.Order() < 2 {
		return nil, fmt.Errorf("%w: tensor order %d, need at least 2", ErrInvalidArgument, t.Order())
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	shape := t.Shape().Clone()
	n := len(shape)
	residual := t.Clone()
	rho := residual.NormSq()
	rhominSq := o.rhomin * o.rhomin

	dec := &Decomposition{
		Shape:   shape,
		Factors: make([][][]float64, n),
	}

	for k := 0; k < o.kmax; k++ {
		tm := extractTerm(residual, o)

		prod := 1.0
		for _, c := range tm.nnz {
			prod *= float64(c)
		}
		// d = sqrt(Axsqr) / prod(nnz), with Axsqr = f * nnz[n-1].
		d := math.Sqrt(tm.f*float64(tm.nnz[n-1])) / prod

		residual.AddScaled(-d, Expand(tm.vectors))

		dec.Weights = append(dec.Weights, d)
		for j := 0; j < n; j++ {
			dec.Factors[j] = append(dec.Factors[j], tm.vectors[j])
		}
		dec.Iterations = append(dec.Iterations, tm.passes)

		rho = math.Max(rho-tm.beta, 0)
		dec.ResidualSq = append(dec.ResidualSq, rho)

		o.logger.Debug("term committed",
			"term", k+1,
			"weight", d,
			"passes", tm.passes,
			"residual_sq", rho,
		)

		if rho < rhominSq {
			break
		}
	}

	dec.FinalResidual = residual
	return dec, nil
}
