package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/Fiszh/7TVPaintsViewer/internal/paint"
)

const ansiReset = "\033[0m"

// previewLabel colours each rune of the label along the paint gradient using
// 24-bit ANSI escapes. Image paints and missing paints print plain.
func previewLabel(label string, p *paint.Paint) string {
	if p == nil || p.HasImage() || len(p.Stops) == 0 {
		return label
	}

	stops := paint.NormalizeStops(p.Stops)
	runes := []rune(label)

	var b strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = 100 * float64(i) / float64(len(runes)-1)
		}
		c := colourAt(stops, pos)
		fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", c.R, c.G, c.B, r)
	}
	b.WriteString(ansiReset)
	return b.String()
}

// colourAt interpolates the colour at pos (0-100) between evenly spaced stops.
func colourAt(stops []paint.Stop, pos float64) paint.RGBA {
	if len(stops) == 1 {
		return paint.Channels(stops[0].Color)
	}

	for i := 1; i < len(stops); i++ {
		if pos > stops[i].At && i < len(stops)-1 {
			continue
		}
		from, to := paint.Channels(stops[i-1].Color), paint.Channels(stops[i].Color)
		span := stops[i].At - stops[i-1].At
		t := 0.0
		if span > 0 {
			t = math.Max(0, math.Min(1, (pos-stops[i-1].At)/span))
		}
		return paint.RGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: lerp(from.A, to.A, t),
		}
	}
	return paint.Channels(stops[len(stops)-1].Color)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
