package routing

import (
	"math"
	"testing"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructPathThreePoints(t *testing.T) {
	a, b, c := geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1), geo.NewCoordinate(0, 2)
	nodes, adj := buildChain(t, a, b, c)

	trace, err := NewDijkstraTracer(adj).Trace(0)
	require.NoError(t, err)

	res, err := ReconstructFromTrace(trace, nodes, 2)
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []int{0, 1, 2}, res.Nodes)
	assert.Equal(t, []geo.Coordinate{a, b, c}, res.Positions)
	assert.Equal(t, geo.HaversineDistance(a, b)+geo.HaversineDistance(b, c), res.TotalDistance)
}

func TestReconstructPathSinglePoint(t *testing.T) {
	a := geo.NewCoordinate(-7.78, 110.37)
	nodes, adj := buildChain(t, a)

	trace, err := NewDijkstraTracer(adj).Trace(0)
	require.NoError(t, err)
	require.Equal(t, 2, trace.Len())

	res, err := ReconstructFromTrace(trace, nodes, 0)
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []int{0}, res.Nodes)
	assert.Equal(t, []geo.Coordinate{a}, res.Positions)
	assert.Equal(t, 0.0, res.TotalDistance)
}

func TestReconstructPathChainSum(t *testing.T) {
	routes := [][]geo.Coordinate{
		{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1)},
		{
			geo.NewCoordinate(-7.7956, 110.3695), geo.NewCoordinate(-7.7901, 110.3702),
			geo.NewCoordinate(-7.7829, 110.3671), geo.NewCoordinate(-7.7801, 110.3660),
			geo.NewCoordinate(-7.7760, 110.3650),
		},
		{
			geo.NewCoordinate(51.5007, -0.1246), geo.NewCoordinate(51.5014, -0.1419),
			geo.NewCoordinate(51.5081, -0.0759), geo.NewCoordinate(51.5033, -0.1196),
			geo.NewCoordinate(51.5194, -0.1270), geo.NewCoordinate(51.5194, -0.1270),
			geo.NewCoordinate(51.5138, -0.0984),
		},
	}

	for _, points := range routes {
		nodes, adj := buildChain(t, points...)
		trace, err := NewDijkstraTracer(adj).Trace(0)
		require.NoError(t, err)
		require.Equal(t, len(points)+1, trace.Len())

		last := len(points) - 1
		res, err := ReconstructFromTrace(trace, nodes, last)
		require.NoError(t, err)

		sum := 0.0
		wantNodes := make([]int, len(points))
		for i := range points {
			wantNodes[i] = i
			if i > 0 {
				sum += adj.Get(i-1, i)
			}
		}
		assert.Equal(t, wantNodes, res.Nodes)
		assert.InDelta(t, sum, res.TotalDistance, 1e-9*math.Max(1, sum))
	}
}

func TestReconstructPathUnreachable(t *testing.T) {
	adj := da.NewAdjacencyMatrix(3)
	adj.SetEdge(0, 1, 10)

	trace, err := NewDijkstraTracer(adj).Trace(0)
	require.NoError(t, err)

	res, err := ReconstructPath(trace.Final(), trace.Start, 2)
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Empty(t, res.Nodes)
	assert.Equal(t, 0, res.Len())

	res, err = ReconstructPath(trace.Final(), trace.Start, 1)
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []int{0, 1}, res.Nodes)
	assert.Equal(t, 10.0, res.TotalDistance)
}

func TestReconstructPathErrors(t *testing.T) {
	const n = 4
	inf := math.Inf(1)

	testCases := []struct {
		name         string
		predecessors []int
		target       int
		wantErr      error
		wantCode     error
	}{
		{
			name:         "target below range",
			predecessors: []int{da.NoVertex, 0, 1, 2},
			target:       -1,
			wantErr:      ErrInvalidTarget,
			wantCode:     util.ErrBadParamInput,
		},
		{
			name:         "target above range",
			predecessors: []int{da.NoVertex, 0, 1, 2},
			target:       n,
			wantErr:      ErrInvalidTarget,
			wantCode:     util.ErrBadParamInput,
		},
		{
			name:         "predecessor cycle",
			predecessors: []int{da.NoVertex, 2, 3, 1},
			target:       3,
			wantErr:      ErrPredecessorCycle,
			wantCode:     util.ErrInternalServerError,
		},
		{
			name:         "self loop",
			predecessors: []int{da.NoVertex, 1, 1, 2},
			target:       3,
			wantErr:      ErrPredecessorCycle,
			wantCode:     util.ErrInternalServerError,
		},
		{
			name:         "chain ends before start",
			predecessors: []int{da.NoVertex, da.NoVertex, 1, 2},
			target:       3,
			wantErr:      ErrBrokenChain,
			wantCode:     util.ErrInternalServerError,
		},
		{
			name:         "predecessor out of range",
			predecessors: []int{da.NoVertex, 0, 9, 2},
			target:       3,
			wantErr:      ErrBrokenChain,
			wantCode:     util.ErrInternalServerError,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			step := da.NewTraceStep([]float64{0, 1, 2, inf}, []bool{true, true, true, true}, tt.predecessors, da.NoVertex)

			res, err := ReconstructPath(&step, 0, tt.target)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
			assert.False(t, res.Reachable)
		})
	}
}
