package datastructure

import "math"

// AdjacencyMatrix is a dense n x n weight matrix. the diagonal is 0 and a missing edge is +Inf.
// weights are stored row-major in one slice.
type AdjacencyMatrix struct {
	n       int
	weights []float64
}

// NewAdjacencyMatrix returns an n x n matrix with no edges.
func NewAdjacencyMatrix(n int) *AdjacencyMatrix {
	if n < 0 {
		n = 0
	}
	weights := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				weights[i*n+j] = math.Inf(1)
			}
		}
	}
	return &AdjacencyMatrix{
		n:       n,
		weights: weights,
	}
}

// SetEdge sets the undirected weight between i and j. i == j is ignored, the diagonal stays 0.
func (m *AdjacencyMatrix) SetEdge(i, j int, w float64) {
	if i == j {
		return
	}
	m.weights[i*m.n+j] = w
	m.weights[j*m.n+i] = w
}

func (m *AdjacencyMatrix) Size() int {
	return m.n
}

func (m *AdjacencyMatrix) Get(i, j int) float64 {
	return m.weights[i*m.n+j]
}

// IsEdge reports whether i and j are joined by a finite weight.
func (m *AdjacencyMatrix) IsEdge(i, j int) bool {
	return i != j && !math.IsInf(m.Get(i, j), 1)
}

// Row returns a copy of row i.
func (m *AdjacencyMatrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.weights[i*m.n:(i+1)*m.n])
	return row
}

// Rows returns a copy of the whole matrix as nested slices.
func (m *AdjacencyMatrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// ForNeighborsOf calls handle for every j with a finite edge (u, j), in increasing j.
func (m *AdjacencyMatrix) ForNeighborsOf(u int, handle func(v int, w float64)) {
	row := m.weights[u*m.n : (u+1)*m.n]
	for v, w := range row {
		if v == u || math.IsInf(w, 1) {
			continue
		}
		handle(v, w)
	}
}
