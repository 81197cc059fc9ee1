// Package navigation moves over an already computed trace. every operation is index arithmetic
// on the materialized steps, nothing is recomputed and nothing is shared between cursors.
package navigation

import (
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

// Next returns clamp(index+1, 0, length-1).
func Next(index, length int) int {
	return util.Clamp(index+1, 0, length-1)
}

// Prev returns clamp(index-1, 0, length-1).
func Prev(index, length int) int {
	return util.Clamp(index-1, 0, length-1)
}

// Jump returns clamp(index, 0, length-1).
func Jump(index, length int) int {
	return util.Clamp(index, 0, length-1)
}

// Cursor is a step index over one trace. it is a value; moving returns a new cursor.
type Cursor struct {
	trace *da.Trace
	index int
}

func NewCursor(trace *da.Trace) Cursor {
	return Cursor{trace: trace, index: 0}
}

func (c Cursor) Index() int {
	return c.index
}

func (c Cursor) Len() int {
	return c.trace.Len()
}

// LastIndex is the index of the final step.
func (c Cursor) LastIndex() int {
	return c.trace.Len() - 1
}

func (c Cursor) Next() Cursor {
	c.index = Next(c.index, c.trace.Len())
	return c
}

func (c Cursor) Prev() Cursor {
	c.index = Prev(c.index, c.trace.Len())
	return c
}

func (c Cursor) Jump(index int) Cursor {
	c.index = Jump(index, c.trace.Len())
	return c
}

func (c Cursor) First() Cursor {
	return c.Jump(0)
}

func (c Cursor) Last() Cursor {
	return c.Jump(c.LastIndex())
}

func (c Cursor) Step() *da.TraceStep {
	return c.trace.At(c.index)
}

// PartialPath walks the predecessors of step from its current vertex and returns the
// positions from start to current. empty when the step has no current vertex.
// the walk stops after len(nodes) vertices so a corrupted step can not loop forever.
func PartialPath(step *da.TraceStep, nodes []da.Node) []geo.Coordinate {
	if !step.HasCurrent() {
		return []geo.Coordinate{}
	}

	path := make([]geo.Coordinate, 0, 8)
	for v, hops := step.Current, 0; v >= 0 && v < len(nodes) && hops < len(nodes); hops++ {
		path = append(path, nodes[v].Position)
		v = step.Predecessors[v]
	}
	return util.ReverseG(path)
}

// StepView is what a presentation layer needs to render one step.
type StepView struct {
	Index        int
	Total        int
	Step         *da.TraceStep
	PartialPath  []geo.Coordinate
	SettledCount int
}

func View(c Cursor, nodes []da.Node) StepView {
	step := c.Step()
	settled := 0
	for _, v := range step.Visited {
		if v {
			settled++
		}
	}
	return StepView{
		Index:        c.Index(),
		Total:        c.Len(),
		Step:         step,
		PartialPath:  PartialPath(step, nodes),
		SettledCount: settled,
	}
}
