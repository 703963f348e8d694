package face

import "image/color"

// Command is a single draw primitive emitted by Render.
type Command interface {
	command()
}

// Line is a stroked segment.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
	RoundCap       bool
}

// Circle is either a filled disc or a stroked ring of the given width.
type Circle struct {
	X, Y, R float64
	Width   float64
	Fill    bool
	Color   color.NRGBA
}

// Align is the horizontal anchoring of a Text relative to X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is a single run of text. Y is the baseline.
type Text struct {
	X, Y  float64
	Size  float64
	Align Align
	Color color.NRGBA
	Text  string
}

func (Line) command()   {}
func (Circle) command() {}
func (Text) command()   {}
