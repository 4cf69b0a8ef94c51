package ols

import "github.com/pkg/errors"

// ErrNoSamples is returned when no neighborhood samples could be gathered
// around the query (outside the hull, or an isolated vertex with no
// pinwheel neighbors).
var ErrNoSamples = errors.New("ols: no samples available near query")

// ErrInsufficientSamples is returned when even Planar (the smallest model)
// cannot be supported by the gathered neighborhood (fewer than 4 samples).
var ErrInsufficientSamples = errors.New("ols: insufficient samples for any surface model")

// ErrSingular is returned when the normal-equation matrix is singular to
// working precision and no fallback model resolves it.
var ErrSingular = errors.New("ols: normal-equation matrix is singular")
