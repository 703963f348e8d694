package game

import (
	"bytes"
	"image"
	"image/color"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/clockface/internal/face"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whiteSource is the source image for DrawTriangles. The border pixels are
// left out so sampling never bleeds.
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Renderer executes face commands on an ebiten image and supplies the
// font metrics the face lays text out with.
type Renderer struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer loads the Go regular font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "loading font")
	}
	return &Renderer{
		source: src,
		faces:  map[float64]*text.GoTextFace{},
	}, nil
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.source, Size: size}
		r.faces[size] = f
	}
	return f
}

// Reset drops the cached font faces. Text sizes follow the face size, so
// the host calls it whenever the layout changes.
func (r *Renderer) Reset() {
	clear(r.faces)
}

// Measure implements face.TextMetrics.
func (r *Renderer) Measure(s string, size float64) (width, ascent, descent float64) {
	if size <= 0 {
		return 0, 0, 0
	}
	f := r.face(size)
	width, _ = text.Measure(s, f, 0)
	m := f.Metrics()
	return width, m.HAscent, m.HDescent
}

// Draw executes cmds on dst in order.
func (r *Renderer) Draw(dst *ebiten.Image, cmds []face.Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case face.Line:
			r.drawLine(dst, c)
		case face.Circle:
			if c.Fill {
				vector.DrawFilledCircle(dst, f32(c.X), f32(c.Y), f32(c.R), c.Color, true)
			} else {
				vector.StrokeCircle(dst, f32(c.X), f32(c.Y), f32(c.R), f32(c.Width), c.Color, true)
			}
		case face.Text:
			r.drawText(dst, c)
		}
	}
}

func (r *Renderer) drawLine(dst *ebiten.Image, l face.Line) {
	if !l.RoundCap {
		vector.StrokeLine(dst, f32(l.X0), f32(l.Y0), f32(l.X1), f32(l.Y1), f32(l.Width), l.Color, true)
		return
	}

	var path vector.Path
	path.MoveTo(f32(l.X0), f32(l.Y0))
	path.LineTo(f32(l.X1), f32(l.Y1))
	op := &vector.StrokeOptions{Width: f32(l.Width), LineCap: vector.LineCapRound}
	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)

	cr, cg, cb, ca := vertexColor(l.Color)
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}
	dst.DrawTriangles(r.vertices, r.indices, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawText(dst *ebiten.Image, t face.Text) {
	if t.Size <= 0 || t.Text == "" {
		return
	}
	f := r.face(t.Size)
	op := &text.DrawOptions{}
	// Text is positioned from the top of the line; commands carry the baseline.
	op.GeoM.Translate(t.X, t.Y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(t.Color)
	if t.Align == face.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, t.Text, f, op)
}
