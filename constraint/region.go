package constraint

import "github.com/gotin/tin/quadedge"

// LabelRegion flood-fills the region-interior flag outward from the face
// represented by seed, stopping at any edge already flagged as a region
// border (spec.md §4.F "Region labeling"). seed's face itself is marked
// interior. Returns the number of faces labeled.
//
// This replaces the teacher's centroid point-in-polygon classification
// (cdt.ClassifyTriangle/PruneOutside) with a pure mesh-topology flood fill:
// since InsertSegment has already embedded every region border as a
// constrained, border-flagged edge, a face is inside the region exactly
// when it's reachable from the seed without crossing one.
func LabelRegion(pool *quadedge.Pool, seed quadedge.EdgeIndex) int {
	visited := make(map[quadedge.EdgeIndex]bool)
	queue := []quadedge.EdgeIndex{seed}
	count := 0

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		e1 := pool.FaceNext(e)
		e2 := pool.FaceNext(e1)
		key := faceKey(e, e1, e2)
		if visited[key] {
			continue
		}
		visited[key] = true
		count++

		markFaceInterior(pool, e, e1, e2)

		for _, edge := range [3]quadedge.EdgeIndex{e, e1, e2} {
			if pool.IsRegionBorder(edge) {
				continue
			}
			neigh := edge.Twin()
			if !pool.Live(neigh) || pool.FaceNext(neigh).IsNil() {
				continue
			}
			queue = append(queue, neigh)
		}
	}
	return count
}

func markFaceInterior(pool *quadedge.Pool, edges ...quadedge.EdgeIndex) {
	for _, e := range edges {
		pool.SetRegionInterior(e, true)
	}
}

func faceKey(a, b, c quadedge.EdgeIndex) quadedge.EdgeIndex {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
