package engine

import "errors"

var (
	ErrEmptyRoute    = errors.New("engine: route has no points")
	ErrTooManyPoints = errors.New("engine: route has too many points")
)
