package datastructure

import (
	"math"

	"github.com/lintang-b-s/navtrace/pkg/util"
)

// TraceStep is a snapshot of the dijkstra state at one iteration boundary.
// a step owns its slices, nothing else holds a reference to them.
type TraceStep struct {
	Distances    []float64 `json:"distances"`
	Visited      []bool    `json:"visited"`
	Predecessors []int     `json:"predecessors"`
	Current      int       `json:"current"`
}

// NewTraceStep copies the given state into a new step.
func NewTraceStep(distances []float64, visited []bool, predecessors []int, current int) TraceStep {
	step := TraceStep{
		Distances:    make([]float64, len(distances)),
		Visited:      make([]bool, len(visited)),
		Predecessors: make([]int, len(predecessors)),
		Current:      current,
	}
	copy(step.Distances, distances)
	copy(step.Visited, visited)
	copy(step.Predecessors, predecessors)
	return step
}

func (s *TraceStep) NumberOfVertices() int {
	return len(s.Distances)
}

func (s *TraceStep) HasCurrent() bool {
	return s.Current != NoVertex
}

// Predecessor returns the predecessor of v, false when v has none.
func (s *TraceStep) Predecessor(v int) (int, bool) {
	p := s.Predecessors[v]
	return p, p != NoVertex
}

// Clone returns a deep copy of s.
func (s *TraceStep) Clone() TraceStep {
	return NewTraceStep(s.Distances, s.Visited, s.Predecessors, s.Current)
}

// Reached reports whether v has a finite tentative distance.
func (s *TraceStep) Reached(v int) bool {
	return !math.IsInf(s.Distances[v], 1)
}

// Trace is the ordered, fully materialized sequence of dijkstra snapshots for one start vertex.
// Steps is read-only once appended. At and Final hand out copies.
type Trace struct {
	Start int         `json:"start"`
	Steps []TraceStep `json:"steps"`
}

func NewTrace(start int, capacity int) *Trace {
	return &Trace{
		Start: start,
		Steps: make([]TraceStep, 0, capacity),
	}
}

func (t *Trace) Append(step TraceStep) {
	t.Steps = append(t.Steps, step)
}

func (t *Trace) Len() int {
	return len(t.Steps)
}

// Clamp maps any step index into [0, Len()-1].
func (t *Trace) Clamp(i int) int {
	return util.Clamp(i, 0, t.Len()-1)
}

// At returns a copy of step Clamp(i). the trace must not be empty.
func (t *Trace) At(i int) *TraceStep {
	step := t.Steps[t.Clamp(i)].Clone()
	return &step
}

// Final returns a copy of the terminal snapshot.
func (t *Trace) Final() *TraceStep {
	step := t.Steps[t.Len()-1].Clone()
	return &step
}
