package sdd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensoralg/sdd/internal/parallel"
	"github.com/tensoralg/sdd/tensor"
)

var sequential = parallel.Config{Enabled: false}

// naiveContract computes <t, x1 ∘ ... ∘ xn> by direct nested iteration.
func naiveContract(t *tensor.Tensor, xs [][]float64) float64 {
	shape := t.Shape()
	idx := make([]int, len(shape))
	sum := 0.0
	for {
		prod := t.At(idx...)
		for j, x := range xs {
			prod *= x[idx[j]]
		}
		sum += prod

		j := len(idx) - 1
		for j >= 0 {
			idx[j]++
			if idx[j] < shape[j] {
				break
			}
			idx[j] = 0
			j--
		}
		if j < 0 {
			return sum
		}
	}
}

func testTensor(tb testing.TB, shape tensor.Shape, seed int64) *tensor.Tensor {
	tb.Helper()
	return tensor.Randn(shape, rand.New(rand.NewSource(seed)))
}

func testVectors(shape tensor.Shape, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	xs := make([][]float64, len(shape))
	for j, mj := range shape {
		x := make([]float64, mj)
		for i := range x {
			x[i] = float64(rng.Intn(3) - 1) // -1, 0, or +1
		}
		xs[j] = x
	}
	return xs
}

func TestContractMatrix(t *testing.T) {
	ten, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	// [1,-1] * A * [1,1,1]: (1+2+3) - (4+5+6) = -9
	got := Contract(ten, [][]float64{{1, -1}, {1, 1, 1}})
	assert.InDelta(t, -9, got, 1e-12)
}

func TestContractMatchesNaive(t *testing.T) {
	shape := tensor.Shape{3, 4, 2, 3}
	ten := testTensor(t, shape, 11)
	xs := testVectors(shape, 12)

	got := Contract(ten, xs)
	want := naiveContract(ten, xs)
	assert.InDelta(t, want, got, 1e-10)
}

func TestContractExceptMatchesNaive(t *testing.T) {
	shape := tensor.Shape{4, 3, 5}
	ten := testTensor(t, shape, 21)
	xs := testVectors(shape, 22)

	for idx := 0; idx < len(shape); idx++ {
		got := ContractExcept(ten, xs, idx, sequential)
		require.Len(t, got, shape[idx])

		// Reference: contract with the idx-mode vector replaced by each
		// unit vector in turn.
		for i := 0; i < shape[idx]; i++ {
			unit := make([][]float64, len(xs))
			copy(unit, xs)
			e := make([]float64, shape[idx])
			e[i] = 1
			unit[idx] = e

			want := naiveContract(ten, unit)
			assert.InDeltaf(t, want, got[i], 1e-10, "mode %d, slice %d", idx, i)
		}
	}
}

func TestContractExceptMatrixRowsAndColumns(t *testing.T) {
	ten, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	ones := [][]float64{{1, 1}, {1, 1, 1}}

	rows := ContractExcept(ten, ones, 0, sequential)
	assert.InDelta(t, 6, rows[0], 1e-12)
	assert.InDelta(t, 15, rows[1], 1e-12)

	cols := ContractExcept(ten, ones, 1, sequential)
	assert.InDelta(t, 5, cols[0], 1e-12)
	assert.InDelta(t, 7, cols[1], 1e-12)
	assert.InDelta(t, 9, cols[2], 1e-12)
}

func TestContractExceptParallelIdentical(t *testing.T) {
	shape := tensor.Shape{8, 7, 6}
	ten := testTensor(t, shape, 31)
	xs := testVectors(shape, 32)

	par := parallel.Config{Enabled: true, NumWorkers: 4, MinItems: 2}
	for idx := 0; idx < len(shape); idx++ {
		seq := ContractExcept(ten, xs, idx, sequential)
		con := ContractExcept(ten, xs, idx, par)
		// Slices are computed independently, so parallel execution must
		// be bit-identical, not just close.
		require.Equal(t, seq, con)
	}
}
