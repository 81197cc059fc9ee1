package datastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAdjacencyMatrix(t *testing.T) {
	m := NewAdjacencyMatrix(3)
	assert.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 0.0, m.Get(i, j))
				continue
			}
			assert.True(t, math.IsInf(m.Get(i, j), 1))
			assert.False(t, m.IsEdge(i, j))
		}
	}

	assert.Equal(t, 0, NewAdjacencyMatrix(0).Size())
	assert.Equal(t, 0, NewAdjacencyMatrix(-2).Size())
}

func TestAdjacencyMatrixSetEdge(t *testing.T) {
	m := NewAdjacencyMatrix(3)
	m.SetEdge(0, 1, 12.5)
	m.SetEdge(2, 2, 99)

	assert.Equal(t, 12.5, m.Get(0, 1))
	assert.Equal(t, 12.5, m.Get(1, 0))
	assert.True(t, m.IsEdge(1, 0))
	assert.Equal(t, 0.0, m.Get(2, 2), "diagonal stays zero")

	row := m.Row(0)
	row[1] = -1
	assert.Equal(t, 12.5, m.Get(0, 1), "row is a copy")
}

func TestAdjacencyMatrixForNeighborsOf(t *testing.T) {
	m := NewAdjacencyMatrix(4)
	m.SetEdge(1, 3, 2)
	m.SetEdge(1, 0, 1)

	var (
		vs []int
		ws []float64
	)
	m.ForNeighborsOf(1, func(v int, w float64) {
		vs = append(vs, v)
		ws = append(ws, w)
	})
	assert.Equal(t, []int{0, 3}, vs)
	assert.Equal(t, []float64{1, 2}, ws)

	called := false
	m.ForNeighborsOf(2, func(v int, w float64) { called = true })
	assert.False(t, called)
}
