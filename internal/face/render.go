package face

import (
	"fmt"
	"image/color"
	"math"
)

const (
	tickCount    = 60
	tickStep     = 360 / tickCount
	tickOuter    = 0.99
	tickInner    = 0.95
	strokeFactor = 0.01

	fullAlpha    = 255
	reducedAlpha = 140

	numeralRadius = 0.9
	numeralSize   = strokeFactor * 5

	hourNeedle   = 0.6
	minuteNeedle = 0.7
	secondNeedle = 0.8

	hubRadius = 20

	digitalSize  = 0.2
	meridiemSize = 0.3
)

// Render lays out the face for t inside g. Later commands are drawn on
// top of earlier ones.
func (f *Face) Render(t TimeOfDay, g Geometry) []Command {
	if !f.style.ShowAnalog {
		return f.renderDigital(t, g)
	}
	var cmds []Command
	if g.Radius > 0 {
		cmds = f.appendTicks(cmds, g)
		cmds = f.appendNumerals(cmds, g)
		cmds = f.appendNeedles(cmds, t, g)
	}
	return f.appendHub(cmds, g)
}

// TickAlpha is the opacity of tick i; every fifth tick marks an hour.
func TickAlpha(i int) uint8 {
	if i%5 == 0 {
		return fullAlpha
	}
	return reducedAlpha
}

func (f *Face) appendTicks(cmds []Command, g Geometry) []Command {
	r := float64(g.Radius)
	width := float64(g.Side) * strokeFactor
	for i := 0; i < tickCount; i++ {
		rad := radians(float64(i * tickStep))
		cos, sin := math.Cos(rad), math.Sin(rad)
		cmds = append(cmds, Line{
			X0:       g.CenterX + r*tickOuter*cos,
			Y0:       g.CenterY - r*tickOuter*sin,
			X1:       g.CenterX + r*tickInner*cos,
			Y1:       g.CenterY - r*tickInner*sin,
			Width:    width,
			Color:    withAlpha(f.style.DegreesColor, TickAlpha(i)),
			RoundCap: true,
		})
	}
	return cmds
}

func (f *Face) appendNumerals(cmds []Command, g Geometry) []Command {
	size := float64(g.Side) * numeralSize
	dist := float64(g.Radius) * numeralRadius
	for i := 1; i <= 12; i++ {
		label := fmt.Sprintf("%02d", i)
		_, ascent, descent := f.metrics.Measure(label, size)
		rad := radians(float64(i*30 - 90))
		cmds = append(cmds, Text{
			X:     g.CenterX + math.Cos(rad)*dist,
			Y:     g.CenterY + math.Sin(rad)*dist + (ascent+descent)/4,
			Size:  size,
			Align: AlignCenter,
			Color: f.style.HoursValuesColor,
			Text:  label,
		})
	}
	return cmds
}

// NeedleEnd returns the tip of a needle showing value out of full, measured
// clockwise from 12 o'clock.
func NeedleEnd(g Geometry, value, full int, length float64) (x, y float64) {
	rad := radians(float64(value) / float64(full) * 360)
	l := float64(g.Radius) * length
	return g.CenterX + math.Sin(rad)*l, g.CenterY - math.Cos(rad)*l
}

func (f *Face) appendNeedles(cmds []Command, t TimeOfDay, g Geometry) []Command {
	width := float64(g.Side) * strokeFactor
	line := func(value, full int, length float64, c color.NRGBA) Line {
		x, y := NeedleEnd(g, value, full, length)
		return Line{X0: g.CenterX, Y0: g.CenterY, X1: x, Y1: y, Width: width, Color: c}
	}
	// Hour goes last so it stays on top.
	return append(cmds,
		line(t.Second, 60, secondNeedle, f.style.SecondsNeedleColor),
		line(t.Minute, 60, minuteNeedle, f.style.MinutesNeedleColor),
		line(t.Hour, 12, hourNeedle, f.style.HoursNeedleColor),
	)
}

func (f *Face) appendHub(cmds []Command, g Geometry) []Command {
	width := float64(g.Side) * strokeFactor
	return append(cmds,
		Circle{X: g.CenterX, Y: g.CenterY, R: hubRadius, Fill: true, Color: f.style.CenterInnerColor},
		Circle{X: g.CenterX, Y: g.CenterY, R: hubRadius, Width: width / 2, Color: f.style.CenterOuterColor},
	)
}

func (f *Face) renderDigital(t TimeOfDay, g Geometry) []Command {
	size := float64(g.Side) * digitalSize
	if size <= 0 {
		return nil
	}
	small := size * meridiemSize
	digits, suffix := t.clock(), t.Meridiem.String()

	w1, ascent, descent := f.metrics.Measure(digits, size)
	w2, _, _ := f.metrics.Measure(suffix, small)

	x := g.CenterX - (w1+w2)/2
	baseline := g.CenterY + (ascent-descent)/2
	return []Command{
		Text{X: x, Y: baseline, Size: size, Color: f.style.NumbersColor, Text: digits},
		Text{X: x + w1, Y: baseline, Size: small, Color: f.style.NumbersColor, Text: suffix},
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
