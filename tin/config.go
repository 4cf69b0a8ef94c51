package tin

import (
	"github.com/gotin/tin/build"
	"github.com/gotin/tin/ols"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// Option configures a Mesh during construction, following the teacher's
// functional-options pattern (mesh.Option func(*config)).
type Option func(*config)

type debugHooks struct {
	onVertex func(vertex.ID, vertex.Vertex)
	onEdge   func(quadedge.EdgeIndex)
}

type config struct {
	mergeRule            build.MergeRule
	surfaceModelFallback bool
	computeExtendedStats bool
	populationFraction   float64
	defaultModel         ols.Model
	randomSeed           uint64
	debug                debugHooks
}

func newDefaultConfig() config {
	return config{
		mergeRule:            build.MergeFirstWins,
		surfaceModelFallback: true,
		computeExtendedStats: false,
		populationFraction:   0.95,
		defaultModel:         ols.Quadratic,
	}
}

// WithMergeRule sets the coincident-vertex merge policy (default
// MergeFirstWins).
func WithMergeRule(r build.MergeRule) Option {
	return func(c *config) { c.mergeRule = r }
}

// WithSurfaceModelFallback enables (default) or disables OLS's automatic
// downgrade to a smaller surface model when a query neighborhood can't
// support the requested one; disabled, InterpolateOLS fails outright with
// ols.ErrInsufficientSamples instead.
func WithSurfaceModelFallback(enabled bool) Option {
	return func(c *config) { c.surfaceModelFallback = enabled }
}

// WithComputeExtendedStats enables the hat-matrix/R-student diagnostics by
// default on every OLS interpolation and cross-validation (disabled by
// default, since it materializes the design matrix).
func WithComputeExtendedStats(enabled bool) Option {
	return func(c *config) { c.computeExtendedStats = enabled }
}

// WithPopulationFraction sets the two-sided confidence/prediction interval
// width (default 0.95) OLS regression statistics report against.
func WithPopulationFraction(fraction float64) Option {
	return func(c *config) {
		if fraction > 0 && fraction < 1 {
			c.populationFraction = fraction
		}
	}
}

// WithDefaultSurfaceModel sets the model CrossValidate uses (default
// Quadratic), since the operation table's crossValidate(v) takes no model
// argument of its own.
func WithDefaultSurfaceModel(m ols.Model) Option {
	return func(c *config) { c.defaultModel = m }
}

// WithRandomSeed fixes the incremental builder's stochastic locator seed,
// for reproducible builds.
func WithRandomSeed(seed uint64) Option {
	return func(c *config) { c.randomSeed = seed }
}

// WithDebugAddVertex registers a hook called whenever a vertex is accepted
// into the mesh, mirroring the teacher's mesh.WithDebugAddVertex.
func WithDebugAddVertex(fn func(vertex.ID, vertex.Vertex)) Option {
	return func(c *config) { c.debug.onVertex = fn }
}

// WithDebugAddEdge registers a hook called whenever a constraint edge is
// embedded, mirroring the teacher's mesh.WithDebugAddEdge.
func WithDebugAddEdge(fn func(quadedge.EdgeIndex)) Option {
	return func(c *config) { c.debug.onEdge = fn }
}
