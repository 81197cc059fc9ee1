package datastructure

import "github.com/lintang-b-s/navtrace/pkg/geo"

// NoVertex marks an absent vertex: no predecessor, or no current selection.
const NoVertex = -1

// Node is one polyline point. Index is its position in the input sequence.
type Node struct {
	Index    int            `json:"index"`
	Position geo.Coordinate `json:"position"`
}

func NewNode(index int, position geo.Coordinate) Node {
	return Node{
		Index:    index,
		Position: position,
	}
}

func (n Node) GetIndex() int {
	return n.Index
}

func (n Node) GetLat() float64 {
	return n.Position.Lat
}

func (n Node) GetLon() float64 {
	return n.Position.Lon
}

// Positions returns the coordinates of nodes in order.
func Positions(nodes []Node) []geo.Coordinate {
	coords := make([]geo.Coordinate, len(nodes))
	for i, n := range nodes {
		coords[i] = n.Position
	}
	return coords
}
