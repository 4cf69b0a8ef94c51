package tin

import (
	"github.com/gotin/tin/nn"
	"github.com/gotin/tin/ols"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// NaturalNeighborPolygon returns the ordered cavity edges the query point
// would carve out of the mesh (spec.md §6's naturalNeighborPolygon), without
// computing interpolation weights.
func (m *Mesh) NaturalNeighborPolygon(x, y float64) ([]quadedge.EdgeIndex, error) {
	q := vertex.New(x, y, 0, vertex.Ghost)
	loc, err := m.builder.Locate(q)
	if err != nil {
		return nil, err
	}
	return nn.Ring(m.builder.Pool, m.builder, m.builder.Thresholds(), loc.Edge, q)
}

// InterpolateNN computes the Sibson natural-neighbor interpolate at
// (x, y). valuator resolves each neighbor vertex to the scalar being
// interpolated; if nil, the vertex's stored Z is used.
func (m *Mesh) InterpolateNN(x, y float64, valuator func(vertex.ID) float64) (float64, error) {
	q := vertex.New(x, y, 0, vertex.Ghost)
	loc, err := m.builder.Locate(q)
	if err != nil {
		return 0, err
	}
	res, err := nn.Query(m.builder.Pool, m.builder, m.builder.Thresholds(), loc.Edge, q)
	if err != nil {
		return 0, err
	}
	if valuator == nil {
		return res.InterpolateZ(m.builder), nil
	}
	z := 0.0
	for _, w := range res.Weights {
		z += w.Value * valuator(w.Vertex)
	}
	return z, nil
}

// InterpolateOLS fits the requested surface model over the query's natural
// neighborhood and returns its regression result (spec.md §4.H /§6).
func (m *Mesh) InterpolateOLS(x, y float64, model ols.Model, extendedStats bool) (ols.Result, error) {
	q := vertex.New(x, y, 0, vertex.Ghost)
	loc, err := m.builder.Locate(q)
	if err != nil {
		return ols.Result{}, err
	}

	samples, err := ols.CollectSamples(m.builder.Pool, m.builder, m.builder.Thresholds(), loc.Edge, q, ols.NaturalNeighborhood, vertex.Ghost)
	if err != nil {
		return ols.Result{}, err
	}

	if !m.cfg.surfaceModelFallback && len(samples)-1 < ols.TermCount(model) {
		return ols.Result{}, ols.ErrInsufficientSamples
	}

	return ols.Fit(samples, m.builder, q, model, m.cfg.populationFraction, extendedStats || m.cfg.computeExtendedStats)
}

// CrossValidate fits the mesh's default surface model over vertex v's
// neighborhood with v itself excluded, reporting how well the surrounding
// surface predicts the value actually observed there.
func (m *Mesh) CrossValidate(v vertex.ID) (ols.Result, error) {
	target := m.builder.Vertex(v)
	if target.Index != v {
		return ols.Result{}, ErrInvalidVertex
	}

	samples, err := ols.CollectSamples(m.builder.Pool, m.builder, m.builder.Thresholds(), m.builder.HullHint(), target, ols.CoincidentVertex, v)
	if err != nil {
		return ols.Result{}, err
	}

	return ols.Fit(samples, m.builder, target, m.cfg.defaultModel, m.cfg.populationFraction, m.cfg.computeExtendedStats)
}
