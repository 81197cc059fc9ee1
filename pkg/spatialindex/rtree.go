package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/tidwall/rtree"
)

// nearestCandidates bounds how many r-tree hits (ordered by planar box distance)
// are re-ranked with the haversine distance.
const nearestCandidates = 8

// Rtree indexes the nodes of one route polyline by position.
type Rtree struct {
	tr    *rtree.RTreeG[NodeEntry]
	nodes []da.Node
}

type NodeEntry struct {
	index int
}

func (ne NodeEntry) GetIndex() int {
	return ne.index
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[NodeEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build. insert every node as a point rectangle ([lon, lat]).
func (rt *Rtree) Build(nodes []da.Node) {
	rt.nodes = nodes
	for _, n := range nodes {
		p := [2]float64{n.GetLon(), n.GetLat()}
		rt.tr.Insert(p, p, NodeEntry{index: n.GetIndex()})
	}
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// Nearest returns the index of the node closest (haversine) to (qLat, qLon) and its distance in meters.
// ties go to the lower node index. false when the index is empty.
func (rt *Rtree) Nearest(qLat, qLon float64) (int, float64, bool) {
	if rt.tr.Len() == 0 {
		return da.NoVertex, 0, false
	}

	q := [2]float64{qLon, qLat}
	best := da.NoVertex
	bestDist := math.Inf(1)
	seen := 0
	rt.tr.Nearby(rtree.BoxDist[float64, NodeEntry](q, q, nil),
		func(min, max [2]float64, data NodeEntry, dist float64) bool {
			d := geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0])
			if d < bestDist || (d == bestDist && data.index < best) {
				best = data.index
				bestDist = d
			}
			seen++
			return seen < nearestCandidates
		})

	return best, bestDist, true
}
