package routing

import "errors"

var (
	ErrInvalidStart  = errors.New("routing: start vertex out of range")
	ErrInvalidTarget = errors.New("routing: target vertex out of range")

	// the two below mean the trace itself is corrupted, a correctly produced trace never yields them.
	ErrPredecessorCycle = errors.New("routing: predecessor walk revisits a vertex")
	ErrBrokenChain      = errors.New("routing: predecessor walk ended before reaching the start vertex")
)
