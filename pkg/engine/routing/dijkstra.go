package routing

import (
	"math"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

/*
DijkstraTracer. dense (array-scan) dijkstra that records a snapshot of its whole state at every iteration.

[1] Dijkstra, E.W. (1959) "A note on two problems in connexion with graphs," Numerische Mathematik, 1(1), pp. 269–271.

no priority queue: every outer iteration is one linear scan for the closest unvisited vertex, O(n^2) overall,
which is fine for the few thousand points of a route polyline and makes every iteration one discrete step.

the recorded trace is reproducible:
  - selection scans vertices in increasing index and only replaces the candidate on a strictly smaller distance,
    so on ties the lowest index wins.
  - relaxation only updates on a strict improvement, an equal-cost alternative never overwrites a predecessor.
*/
type DijkstraTracer struct {
	adj *da.AdjacencyMatrix

	distances    []float64
	visited      []bool
	predecessors []int

	numSettledNodes int
}

func NewDijkstraTracer(adj *da.AdjacencyMatrix) *DijkstraTracer {
	return &DijkstraTracer{
		adj: adj,
	}
}

// Trace runs dijkstra from start and returns every snapshot.
// one snapshot is taken before each selection (Current = the vertex about to be settled, or NoVertex when
// nothing reachable is left) and one after the loop. with every vertex reachable the trace has n+1 steps.
// the only error is an out of range start.
func (dt *DijkstraTracer) Trace(start int) (*da.Trace, error) {
	n := dt.adj.Size()
	if start < 0 || start >= n {
		return nil, util.WrapErrorf(ErrInvalidStart, util.ErrBadParamInput,
			"start vertex %d is not in [0, %d)", start, n)
	}

	dt.preallocate(start)

	trace := da.NewTrace(start, n+1)
	for iter := 0; iter < n; iter++ {
		u := dt.selectClosestUnvisited()

		trace.Append(dt.snapshot(u))

		if u == da.NoVertex {
			// remaining vertices are unreachable from start
			break
		}

		dt.visited[u] = true
		dt.numSettledNodes++

		dt.relax(u)
	}

	trace.Append(dt.snapshot(da.NoVertex))

	return trace, nil
}

func (dt *DijkstraTracer) GetNumSettledNodes() int {
	return dt.numSettledNodes
}

func (dt *DijkstraTracer) selectClosestUnvisited() int {
	u := da.NoVertex
	best := math.Inf(1)
	for v := range dt.distances {
		if !dt.visited[v] && dt.distances[v] < best {
			best = dt.distances[v]
			u = v
		}
	}
	return u
}

func (dt *DijkstraTracer) relax(u int) {
	dt.adj.ForNeighborsOf(u, func(v int, w float64) {
		if dt.visited[v] {
			return
		}

		newDist := dt.distances[u] + w
		if newDist < dt.distances[v] {
			dt.distances[v] = newDist
			dt.predecessors[v] = u
		}
	})
}

func (dt *DijkstraTracer) snapshot(current int) da.TraceStep {
	return da.NewTraceStep(dt.distances, dt.visited, dt.predecessors, current)
}

func (dt *DijkstraTracer) preallocate(start int) {
	n := dt.adj.Size()
	dt.distances = make([]float64, n)
	dt.visited = make([]bool, n)
	dt.predecessors = make([]int, n)
	for v := 0; v < n; v++ {
		dt.distances[v] = math.Inf(1)
		dt.predecessors[v] = da.NoVertex
	}
	dt.distances[start] = 0
	dt.numSettledNodes = 0
}
