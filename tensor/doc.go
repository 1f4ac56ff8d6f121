// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense float64 n-dimensional array.
//
// # Overview
//
// Tensors carry explicit shape metadata (an ordered tuple of per-mode
// extents) and precomputed row-major strides over a flat backing slice.
// The last mode varies fastest, so a tensor of shape (m1, ..., mn) can be
// viewed without copying as a (m1*...*m(n-1)) x mn matrix, which is what
// the contraction kernels in the sdd package rely on.
//
// # Basic Usage
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	v := t.At(1, 2)      // 6
//	t.Set(0, 1, 2)       // in-place update
//	r := t.Reshape(tensor.Shape{3, 2}) // shared data, new shape
//
// Element accessors panic on out-of-bounds indices; construction from
// mismatched data returns an error.
package tensor
