package routing

import (
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
)

type Tracer interface {
	Trace(start int) (*da.Trace, error)
}
