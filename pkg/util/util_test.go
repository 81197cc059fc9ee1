package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{name: "inside", v: 2, lo: 0, hi: 4, want: 2},
		{name: "below", v: -1, lo: 0, hi: 4, want: 0},
		{name: "above", v: 9, lo: 0, hi: 4, want: 4},
		{name: "empty range", v: 3, lo: 0, hi: -1, want: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
	assert.Equal(t, 1.5, Clamp(7.0, -1.5, 1.5))
}

func TestFormatDistance(t *testing.T) {
	testCases := []struct {
		meters float64
		units  string
		want   string
	}{
		{meters: 0, units: "km", want: "0.00 km"},
		{meters: 1234.5, units: "km", want: "1.23 km"},
		{meters: 1234.5, units: "", want: "1.23 km"},
		{meters: 1609.344, units: "mi", want: "1.00 mi"},
		{meters: 55773.68, units: "mi", want: "34.66 mi"},
	}

	for _, tt := range testCases {
		t.Run(fmt.Sprintf("%v %s", tt.meters, tt.units), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.meters, tt.units))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0, want: "0m"},
		{seconds: 59.4, want: "0m"},
		{seconds: 420, want: "7m"},
		{seconds: 3600, want: "1h 0m"},
		{seconds: 3929.6, want: "1h 5m"},
		{seconds: -5, want: "0m"},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("pkg: broken")
	err := WrapErrorf(orig, ErrBadParamInput, "vertex %d", 3)

	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Equal(t, ErrBadParamInput, ErrorCode(fmt.Errorf("profile %q: %w", "foot-walking", err)))
	assert.Equal(t, ErrInternalServerError, ErrorCode(orig))
	assert.Contains(t, err.Error(), "vertex 3")
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Equal(t, []int{}, ReverseG([]int{}))
}
