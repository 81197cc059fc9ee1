package graphbuilder

import (
	"github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/geo"
)

// DistanceFunc returns the weight in meters between two points.
type DistanceFunc func(a, b geo.Coordinate) float64

// Build turns an ordered point sequence into a path graph: one node per point, and a dense
// adjacency matrix where only consecutive points (i, i+1) are joined. a route polyline has
// no other meaningful connectivity.
// dist defaults to geo.HaversineDistance.
func Build(points []geo.Coordinate, dist DistanceFunc) ([]datastructure.Node, *datastructure.AdjacencyMatrix) {
	if dist == nil {
		dist = geo.HaversineDistance
	}

	var (
		n     int                            = len(points)
		nodes []datastructure.Node           = make([]datastructure.Node, n)
		adj   *datastructure.AdjacencyMatrix = datastructure.NewAdjacencyMatrix(n)
	)

	for i, p := range points {
		nodes[i] = datastructure.NewNode(i, p)
	}

	for i := 0; i+1 < n; i++ {
		adj.SetEdge(i, i+1, dist(points[i], points[i+1]))
	}

	return nodes, adj
}
