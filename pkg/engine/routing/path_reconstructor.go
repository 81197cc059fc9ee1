package routing

import (
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

// ReconstructPath walks the predecessors of the final snapshot back from target to start.
// a target without predecessor (other than start itself) is unreachable, which is a normal result.
// errors are returned only for an out of range target, or for a corrupted trace (cycle or broken chain).
func ReconstructPath(final *da.TraceStep, start, target int) (da.PathResult, error) {
	n := final.NumberOfVertices()
	if target < 0 || target >= n {
		return da.Unreachable(), util.WrapErrorf(ErrInvalidTarget, util.ErrBadParamInput,
			"target vertex %d is not in [0, %d)", target, n)
	}

	if target == start {
		return da.NewReachablePath([]int{start}, 0), nil
	}

	if _, ok := final.Predecessor(target); !ok {
		return da.Unreachable(), nil
	}

	var (
		path []int  = make([]int, 0, 16)
		seen []bool = make([]bool, n)
		v    int    = target
	)

	for v != start {
		if seen[v] || len(path) >= n {
			return da.Unreachable(), util.WrapErrorf(ErrPredecessorCycle, util.ErrInternalServerError,
				"vertex %d seen twice while walking back from %d", v, target)
		}
		seen[v] = true
		path = append(path, v)

		p, ok := final.Predecessor(v)
		if !ok || p < 0 || p >= n {
			return da.Unreachable(), util.WrapErrorf(ErrBrokenChain, util.ErrInternalServerError,
				"vertex %d has no predecessor but is not the start vertex %d", v, start)
		}
		v = p
	}
	path = append(path, start)

	return da.NewReachablePath(util.ReverseG(path), final.Distances[target]), nil
}

// ReconstructFromTrace reconstructs the path to target from the final step of trace and
// attaches node positions.
func ReconstructFromTrace(trace *da.Trace, nodes []da.Node, target int) (da.PathResult, error) {
	res, err := ReconstructPath(trace.Final(), trace.Start, target)
	if err != nil {
		return res, err
	}
	return AttachPositions(res, nodes), nil
}

func AttachPositions(res da.PathResult, nodes []da.Node) da.PathResult {
	if !res.Reachable {
		return res
	}
	positions := make([]geo.Coordinate, len(res.Nodes))
	for i, v := range res.Nodes {
		positions[i] = nodes[v].Position
	}
	res.Positions = positions
	return res
}
