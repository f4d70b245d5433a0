package utils

import (
	"math"
	"time"
)

// HoursBetween returns the elapsed time between two timestamps in fractional
// hours. It returns 0 when either timestamp is missing.
func HoursBetween(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	return float64(end.Sub(*start).Milliseconds()) / 3600000.0
}

// EffectiveHours returns worked hours between start and end minus the break
// duration when both break timestamps are present, floored at 0.
func EffectiveHours(start, end, breakStart, breakEnd *time.Time) float64 {
	hours := HoursBetween(start, end)
	if breakStart != nil && breakEnd != nil {
		hours -= HoursBetween(breakStart, breakEnd)
	}
	return math.Max(0, hours)
}

// Overtime returns the hours worked beyond the daily baseline, floored at 0.
func Overtime(effectiveHours, dailyBaseline float64) float64 {
	return math.Max(0, effectiveHours-dailyBaseline)
}

// Round2 rounds to 2 decimal places, half away from zero. Presentation only:
// aggregation always sums unrounded values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
