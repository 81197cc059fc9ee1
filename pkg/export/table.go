package export

import (
	"fmt"
	"math"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
)

const Infinity = "∞"

// NodeLabels returns "N0".."N{n-1}".
func NodeLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("N%d", i)
	}
	return labels
}

// FormatWeight renders a weight in meters with one decimal, +Inf as "∞".
func FormatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return Infinity
	}
	return fmt.Sprintf("%.1f", w)
}

// AdjacencyTable renders the matrix for display, one row of strings per node.
func AdjacencyTable(m *da.AdjacencyMatrix) [][]string {
	n := m.Size()
	table := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, n)
		for j := 0; j < n; j++ {
			row[j] = FormatWeight(m.Get(i, j))
		}
		table[i] = row
	}
	return table
}

// NullableDistances maps +Inf to nil so the values survive json encoding.
func NullableDistances(ds []float64) []*float64 {
	out := make([]*float64, len(ds))
	for i := range ds {
		if math.IsInf(ds[i], 0) || math.IsNaN(ds[i]) {
			continue
		}
		d := ds[i]
		out[i] = &d
	}
	return out
}

// NullableVertices maps da.NoVertex to nil.
func NullableVertices(vs []int) []*int {
	out := make([]*int, len(vs))
	for i := range vs {
		if vs[i] == da.NoVertex {
			continue
		}
		v := vs[i]
		out[i] = &v
	}
	return out
}

// NullableVertex maps da.NoVertex to nil.
func NullableVertex(v int) *int {
	if v == da.NoVertex {
		return nil
	}
	return &v
}
