package game

import (
	"image/color"
	"time"
)

func f32(v float64) float32 {
	return float32(v)
}

// vertexColor converts c to straight-alpha vertex components.
func vertexColor(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// envelope is a linear fade from 1 to 0 over length, used to shape the
// synthesized tick.
func envelope(elapsed, length time.Duration) float64 {
	if length <= 0 {
		return 0
	}
	return clamp01(1 - float64(elapsed)/float64(length))
}
