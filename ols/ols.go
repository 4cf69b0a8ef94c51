package ols

import (
	"math"

	"github.com/gotin/tin/linalg"
	"github.com/gotin/tin/tdist"
	"github.com/gotin/tin/vertex"
)

// Result is the outcome of a successful Fit: the query-centered
// coefficients and the regression statistics spec.md §4.H requires.
type Result struct {
	Model      Model
	Beta       []float64 // β₀ (estimate at query), β₁,β₂ (partials), ... per basis order
	SampleMean float64   // z̄ subtracted from every sample during reframing

	N, K                int
	SSE, SSR, SST       float64
	Sigma2              float64
	R2                  float64
	StdErr              []float64 // per-coefficient standard errors, same order as Beta
	PredictionStdErr    float64   // standard error for a new observation at the query (includes σ²)
	ConfidenceHalfWidth float64   // ± half-width for Beta[0] at the requested population fraction
	PredictionHalfWidth float64   // ± half-width for a new observation at the query

	// Extended is populated only when Fit is called with extendedStats
	// true: the hat-matrix diagonal and R-student residuals, in sample
	// order (matching the Samples slice Fit was given).
	Extended *ExtendedStats
}

// Estimate returns the fitted surface value at the query point: Beta[0]
// plus the sample mean subtracted during reframing.
func (r Result) Estimate() float64 {
	return r.Beta[0] + r.SampleMean
}

// Fit regresses the samples (already resolved to vertex.Vertex via vl)
// against model, in coordinates centered on q, per spec.md §4.H:
//   - subtract (q.X, q.Y) from every sample so the query sits at the origin
//   - subtract the sample mean z̄ from every sample z
//   - assemble the k×k normal-equation matrix AᵀA and right-hand side Aᵀz
//     via running scalar sums; the n×k design-matrix rows are also kept,
//     for the residual pass and the extended statistics
//   - solve by QR (not Cholesky — AᵀA is not always reliably
//     positive-definite with clustered samples)
//
// If model demands more coefficients than n-1 samples support, Fit
// downgrades to smaller models in sequence, finally to Planar, before
// failing with ErrInsufficientSamples. populationFraction selects the
// two-sided confidence/prediction interval width (e.g. 0.95).
func Fit(samples []vertex.ID, vl VertexLookup, q vertex.Vertex, model Model, populationFraction float64, extendedStats bool) (Result, error) {
	n := len(samples)

	for {
		k := TermCount(model)
		if n-1 >= k {
			break
		}
		next, ok := downgrade(model)
		if !ok {
			return Result{}, ErrInsufficientSamples
		}
		model = next
	}
	k := TermCount(model)

	pts := make([]vertex.Vertex, n)
	zMean := 0.0
	for i, id := range samples {
		pts[i] = vl.Vertex(id)
		zMean += pts[i].Z
	}
	zMean /= float64(n)

	ata := make([][]float64, k)
	for i := range ata {
		ata[i] = make([]float64, k)
	}
	atz := make([]float64, k)
	rows := make([][]float64, n)
	zc := make([]float64, n)

	for i, p := range pts {
		dx := p.X - q.X
		dy := p.Y - q.Y
		row := basis(model, dx, dy)
		rows[i] = row
		z := p.Z - zMean
		zc[i] = z

		for a := 0; a < k; a++ {
			atz[a] += row[a] * z
			for b := a; b < k; b++ {
				ata[a][b] += row[a] * row[b]
			}
		}
	}
	for a := 0; a < k; a++ {
		for b := 0; b < a; b++ {
			ata[a][b] = ata[b][a]
		}
	}

	qrSquare, err := linalg.Factor(ata)
	if err != nil {
		return Result{}, ErrSingular
	}
	beta, err := qrSquare.Solve(atz)
	if err != nil {
		return Result{}, ErrSingular
	}

	sst, sse := 0.0, 0.0
	for i, row := range rows {
		fitted := 0.0
		for a := 0; a < k; a++ {
			fitted += row[a] * beta[a]
		}
		resid := zc[i] - fitted
		sse += resid * resid
		sst += zc[i] * zc[i]
	}
	ssr := sst - sse
	dof := n - k
	if dof < 1 {
		dof = 1
	}
	sigma2 := sse / float64(dof)
	r2 := 0.0
	if sst > 0 {
		r2 = ssr / sst
	}

	ataInvDiag := make([]float64, k)
	e := make([]float64, k)
	for col := 0; col < k; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x, err := qrSquare.Solve(e)
		if err != nil {
			return Result{}, ErrSingular
		}
		ataInvDiag[col] = x[col]
	}

	stdErr := make([]float64, k)
	for i, d := range ataInvDiag {
		if d < 0 {
			d = 0
		}
		stdErr[i] = math.Sqrt(sigma2 * d)
	}

	predSE := math.Sqrt(sigma2 * (1 + ataInvDiag[0]))

	alpha := 1 - populationFraction
	if alpha <= 0 {
		alpha = 0.05
	}
	tval := tdist.Quantile(dof, alpha)

	res := Result{
		Model:               model,
		Beta:                beta,
		SampleMean:          zMean,
		N:                   n,
		K:                   k,
		SSE:                 sse,
		SSR:                 ssr,
		SST:                 sst,
		Sigma2:              sigma2,
		R2:                  r2,
		StdErr:              stdErr,
		PredictionStdErr:    predSE,
		ConfidenceHalfWidth: tval * stdErr[0],
		PredictionHalfWidth: tval * predSE,
	}

	if extendedStats {
		ext, err := computeExtendedStats(rows, zc, beta, sigma2, dof)
		if err != nil {
			return Result{}, err
		}
		res.Extended = ext
	}

	return res, nil
}
