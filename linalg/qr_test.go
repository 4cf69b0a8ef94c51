package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/linalg"
)

func TestSolveExactLinearFit(t *testing.T) {
	// y = 2 + 3x, sampled exactly.
	a := [][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
		{1, 3},
	}
	b := []float64{2, 5, 8, 11}

	qr, err := linalg.Factor(a)
	require.NoError(t, err)

	x, err := qr.Solve(b)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 2, x[0], 1e-9)
	assert.InDelta(t, 3, x[1], 1e-9)
}

func TestFactorRejectsRankDeficient(t *testing.T) {
	a := [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
	}
	_, err := linalg.Factor(a)
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

func TestFactorRejectsFewerRowsThanCols(t *testing.T) {
	a := [][]float64{
		{1, 2, 3},
	}
	_, err := linalg.Factor(a)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// Factor chooses each Householder alpha with the opposite sign of the pivot,
// so this identity block factors to R = -I and R⁻¹ = -I.
func TestRInverseOfIdentityIsNegatedIdentity(t *testing.T) {
	a := [][]float64{
		{1, 0},
		{0, 1},
		{0, 0},
	}
	qr, err := linalg.Factor(a)
	require.NoError(t, err)

	inv, err := qr.RInverse()
	require.NoError(t, err)
	assert.InDelta(t, -1, inv[0][0], 1e-9)
	assert.InDelta(t, -1, inv[1][1], 1e-9)
	assert.InDelta(t, 0, inv[0][1], 1e-9)
}
