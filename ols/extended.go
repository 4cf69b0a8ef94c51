package ols

import (
	"math"

	"github.com/gotin/tin/linalg"
)

// ExtendedStats holds the per-sample anomaly diagnostics spec.md §4.H
// exposes on request: the hat-matrix diagonal (leverage) and the
// externally studentized (R-student) residual for each sample, in the
// same order Fit's samples slice was given.
type ExtendedStats struct {
	Leverage []float64
	RStudent []float64
}

// computeExtendedStats materializes the n×k design matrix (rows) and its
// QR factorization to get the hat-matrix diagonal without ever forming H
// explicitly: since A = QR, H = QQᵀ, and row i of H has the same diagonal
// entry as ‖Qᵀeᵢ‖² (eᵢ the i-th standard basis vector of length n) — so
// leverage is just ApplyQT on a unit vector, reusing the same machinery the
// basic solve already uses for standard errors.
func computeExtendedStats(rows [][]float64, zc []float64, beta []float64, sigma2 float64, dof int) (*ExtendedStats, error) {
	n := len(rows)
	k := len(beta)

	qr, err := linalg.Factor(rows)
	if err != nil {
		return nil, ErrSingular
	}

	leverage := make([]float64, n)
	rstudent := make([]float64, n)
	e := make([]float64, n)

	for i := 0; i < n; i++ {
		for j := range e {
			e[j] = 0
		}
		e[i] = 1
		qte := qr.ApplyQT(e)

		h := 0.0
		for a := 0; a < k; a++ {
			h += qte[a] * qte[a]
		}
		if h > 1 {
			h = 1
		}
		leverage[i] = h

		fitted := 0.0
		for a := 0; a < k; a++ {
			fitted += rows[i][a] * beta[a]
		}
		resid := zc[i] - fitted

		if 1-h < 1e-12 {
			rstudent[i] = 0
			continue
		}

		denom := float64(dof - 1)
		if denom < 1 {
			denom = 1
		}
		numerator := float64(dof)*sigma2 - resid*resid/(1-h)
		if numerator < 0 {
			numerator = 0
		}
		sI2 := numerator / denom

		se := math.Sqrt(sI2 * (1 - h))
		if se <= 0 {
			rstudent[i] = 0
			continue
		}
		rstudent[i] = resid / se
	}

	return &ExtendedStats{Leverage: leverage, RStudent: rstudent}, nil
}
