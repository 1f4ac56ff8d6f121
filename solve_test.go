package sdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveModeBasic(t *testing.T) {
	// Scores [3, -1, 2]: signs [+1, -1, +1], magnitude order 3, 2, 1,
	// prefix objectives 9, 12.5, 12 -> best prefix keeps two entries.
	x, imax, fmax := solveMode([]float64{3, -1, 2})

	assert.Equal(t, []float64{1, 0, 1}, x)
	assert.Equal(t, 2, imax)
	assert.InDelta(t, 12.5, fmax, 1e-15)
}

func TestSolveModeSingle(t *testing.T) {
	x, imax, fmax := solveMode([]float64{-3})

	assert.Equal(t, []float64{-1}, x)
	assert.Equal(t, 1, imax)
	assert.InDelta(t, 9, fmax, 1e-15)
}

func TestSolveModeKeepsAllOnEqualMagnitudes(t *testing.T) {
	// Equal magnitudes: every prefix objective grows, so everything is
	// retained with its own sign.
	x, imax, fmax := solveMode([]float64{2, -2, 2})

	assert.Equal(t, []float64{1, -1, 1}, x)
	assert.Equal(t, 3, imax)
	assert.InDelta(t, 12, fmax, 1e-15)
}

func TestSolveModeDropsZeroTail(t *testing.T) {
	x, imax, fmax := solveMode([]float64{2, 0, 0})

	assert.Equal(t, []float64{1, 0, 0}, x)
	assert.Equal(t, 1, imax)
	assert.InDelta(t, 4, fmax, 1e-15)
}

func TestSolveModeAllZero(t *testing.T) {
	// Every prefix objective is zero; the >=-scan lets the longest
	// prefix win, so all entries stay at +1.
	x, imax, fmax := solveMode([]float64{0, 0, 0, 0})

	assert.Equal(t, []float64{1, 1, 1, 1}, x)
	assert.Equal(t, 4, imax)
	assert.Zero(t, fmax)
}

func TestSolveModeDeterministic(t *testing.T) {
	s := []float64{0.5, -0.5, 1.5, -1.5, 0.5}

	x1, i1, f1 := solveMode(s)
	x2, i2, f2 := solveMode(s)

	require.Equal(t, x1, x2)
	require.Equal(t, i1, i2)
	require.Equal(t, f1, f2)
}
