package datastructure

import "github.com/lintang-b-s/navtrace/pkg/geo"

// PathResult is either a reachable path (vertex indices from start to target) or unreachable.
type PathResult struct {
	Reachable     bool             `json:"reachable"`
	Nodes         []int            `json:"nodes"`
	Positions     []geo.Coordinate `json:"positions"`
	TotalDistance float64          `json:"total_distance"`
}

func NewReachablePath(nodes []int, totalDistance float64) PathResult {
	return PathResult{
		Reachable:     true,
		Nodes:         nodes,
		TotalDistance: totalDistance,
	}
}

func Unreachable() PathResult {
	return PathResult{Reachable: false}
}

func (p PathResult) Len() int {
	return len(p.Nodes)
}
