package util

import (
	"fmt"
	"math"
)

const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.344
)

// FormatDistance renders meters as kilometers (default) or miles ("mi") with two decimals.
func FormatDistance(meters float64, units string) string {
	if units == "mi" {
		return fmt.Sprintf("%.2f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.2f km", meters/metersPerKilometer)
}

// FormatDuration renders seconds as "Xh Ym", or "Ym" below one hour.
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
