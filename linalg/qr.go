// Package linalg implements the small dense linear algebra the OLS surface
// fitter needs (spec.md §4.H): a Householder QR decomposition/solve, plus
// ApplyQT and RInverse for callers that build regression statistics on top
// of the factorization. Problem sizes are tiny — at most
// the 10-coefficient cubic-with-cross-terms model against a local
// neighborhood of samples — so no sparsity or blocking is needed.
//
// The reflection-by-reflection Householder elimination here follows
// katalvlaran-lvlath's matrix/ops.QR almost step for step; the differences
// are that A need not be square (m samples by k coefficients, m >= k) and
// that Q is never materialized — Factor stores each reflection's vector and
// Solve/ApplyQT replay them on a right-hand side, which is the standard way
// to solve a least-squares system without forming the m×m orthogonal
// factor.
package linalg

import (
	"math"

	"github.com/pkg/errors"
)

// ErrSingular is returned when a system's coefficient matrix does not have
// full column rank (a reflection step finds an all-zero column).
var ErrSingular = errors.New("linalg: matrix is rank-deficient")

// ErrDimensionMismatch is returned when A, b, or x have incompatible shapes.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// QRResult holds the outputs of a Householder QR factorization of an m×k
// matrix (m >= k): R is the k×k upper-triangular factor, and the stored
// Householder vectors let Qᵀ be applied to right-hand sides after
// factorization (ApplyQT, Solve).
type QRResult struct {
	R           [][]float64 // k x k upper triangular
	k           int
	m           int
	reflections [][]float64 // the Householder vectors, for applying Qᵀ to further columns
}

// Factor computes the Householder QR factorization of the m×k matrix a
// (m >= k, full column rank required). a is not modified; the returned
// QRResult can be used to solve against one or more right-hand sides via
// Solve, and to apply Qᵀ to arbitrary columns via ApplyQT (used for the hat
// matrix diagonal).
func Factor(a [][]float64) (*QRResult, error) {
	m := len(a)
	if m == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "linalg: empty matrix")
	}
	k := len(a[0])
	if m < k {
		return nil, errors.Wrap(ErrDimensionMismatch, "linalg: fewer rows than columns")
	}

	work := make([][]float64, m)
	for i := range a {
		row := make([]float64, k)
		copy(row, a[i])
		work[i] = row
	}

	reflections := make([][]float64, k)

	for col := 0; col < k; col++ {
		norm := 0.0
		for i := col; i < m; i++ {
			norm += work[i][col] * work[i][col]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			return nil, errors.Wrapf(ErrSingular, "linalg: zero column %d", col)
		}

		alpha := -math.Copysign(norm, work[col][col])
		v := make([]float64, m-col)
		for i := col; i < m; i++ {
			v[i-col] = work[i][col]
		}
		v[0] -= alpha

		beta := 0.0
		for _, vi := range v {
			beta += vi * vi
		}
		if beta == 0 {
			return nil, errors.Wrapf(ErrSingular, "linalg: degenerate reflection at column %d", col)
		}
		tau := 2.0 / beta

		for j := col; j < k; j++ {
			sum := 0.0
			for i := col; i < m; i++ {
				sum += v[i-col] * work[i][j]
			}
			for i := col; i < m; i++ {
				work[i][j] -= tau * v[i-col] * sum
			}
		}

		reflections[col] = v
	}

	r := make([][]float64, k)
	for i := 0; i < k; i++ {
		row := make([]float64, k)
		copy(row, work[i][:k])
		r[i] = row
	}

	return &QRResult{R: r, k: k, m: m, reflections: reflections}, nil
}

// ApplyQT applies Qᵀ to the length-m vector b, returning a new length-m
// vector, by replaying the Householder reflections captured during
// Factor.
func (qr *QRResult) ApplyQT(b []float64) []float64 {
	out := make([]float64, qr.m)
	copy(out, b)

	for col := 0; col < qr.k; col++ {
		v := qr.reflections[col]
		beta := 0.0
		for _, vi := range v {
			beta += vi * vi
		}
		tau := 2.0 / beta

		sum := 0.0
		for i := col; i < qr.m; i++ {
			sum += v[i-col] * out[i]
		}
		for i := col; i < qr.m; i++ {
			out[i] -= tau * v[i-col] * sum
		}
	}
	return out
}

// Solve solves the least-squares system a*x = b (a is m×k, m>=k) given a's
// factorization and the original right-hand side b (length m): it applies
// Qᵀ to b, then back-substitutes against R.
func (qr *QRResult) Solve(b []float64) ([]float64, error) {
	if len(b) != qr.m {
		return nil, errors.Wrap(ErrDimensionMismatch, "linalg: rhs length mismatch")
	}
	qtb := qr.ApplyQT(b)
	return backSubstitute(qr.R, qtb[:qr.k])
}

func backSubstitute(r [][]float64, y []float64) ([]float64, error) {
	k := len(r)
	x := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		if r[i][i] == 0 {
			return nil, errors.Wrapf(ErrSingular, "linalg: zero pivot at row %d", i)
		}
		sum := y[i]
		for j := i + 1; j < k; j++ {
			sum -= r[i][j] * x[j]
		}
		x[i] = sum / r[i][i]
	}
	return x, nil
}

// RInverse computes the inverse of the k×k upper-triangular factor R by
// back-substituting against each standard basis column. (AᵀA)⁻¹ equals
// R⁻¹(R⁻¹)ᵀ; RInverse returns R⁻¹ only and does not form that product.
func (qr *QRResult) RInverse() ([][]float64, error) {
	k := qr.k
	inv := make([][]float64, k)
	for i := range inv {
		inv[i] = make([]float64, k)
	}
	e := make([]float64, k)
	for col := 0; col < k; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x, err := backSubstitute(qr.R, e)
		if err != nil {
			return nil, err
		}
		for row := 0; row < k; row++ {
			inv[row][col] = x[row]
		}
	}
	return inv, nil
}
