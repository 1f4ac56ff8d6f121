// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import "errors"

var (
	// ErrMissingInput is returned when no input tensor is supplied.
	ErrMissingInput = errors.New("missing input tensor")

	// ErrInvalidArgument is returned when a parameter is outside its
	// documented range. The wrapped message names the parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)
