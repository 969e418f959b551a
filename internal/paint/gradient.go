package paint

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeStops spreads stops evenly across [0, 100] keeping their order.
// The incoming At values are ignored. A single stop is placed at 0.
func NormalizeStops(stops []Stop) []Stop {
	out := make([]Stop, len(stops))
	step := 0.0
	if len(stops) > 1 {
		step = 100 / float64(len(stops)-1)
	}
	for i, s := range stops {
		out[i] = Stop{At: step * float64(i), Color: s.Color}
	}
	return out
}

// LinearGradient builds a CSS linear-gradient from evenly re-spaced stops.
// A single stop degenerates to a flat fill of that colour.
func LinearGradient(angle float64, stops []Stop) string {
	normalized := NormalizeStops(stops)
	if len(normalized) == 1 {
		normalized = append(normalized, Stop{At: 100, Color: normalized[0].Color})
	}

	parts := make([]string, len(normalized))
	for i, s := range normalized {
		parts[i] = ColorToRGBString(s.Color) + " " + formatNumber(s.At) + "%"
	}

	return "linear-gradient(" + formatNumber(angle) + "deg, " + strings.Join(parts, ", ") + ")"
}

// formatNumber prints a float the way a browser script would: shortest
// round-trip digits, no negative zero, and exponent form outside
// [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
