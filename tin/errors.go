package tin

import "errors"

// ErrNotBootstrapped indicates an operation that needs a triangulated mesh
// was invoked before three non-collinear vertices were accepted.
var ErrNotBootstrapped = errors.New("tin: mesh has not been bootstrapped yet")

// ErrInvalidVertex indicates a vertex.ID outside the mesh's assigned range.
var ErrInvalidVertex = errors.New("tin: invalid vertex id")

// ErrInvalidSpacing indicates a non-positive nominal point spacing was
// supplied to NewMesh.
var ErrInvalidSpacing = errors.New("tin: nominal point spacing must be positive")
