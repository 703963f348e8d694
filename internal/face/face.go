// Package face lays out an analog or digital clock face as a sequence of
// draw commands. It knows nothing about the surface the commands end up on.
package face

// Padding is the space reserved around the face inside the viewport.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Geometry is derived from the viewport on every size change.
type Geometry struct {
	CenterX, CenterY float64
	Radius           int
	Side             int
}

// NewGeometry fits the largest square into the padded viewport, centered
// on both axes. Negative or zero viewports give a zero radius.
func NewGeometry(width, height int, p Padding) Geometry {
	w := max(width-p.Left-p.Right, 0)
	h := max(height-p.Top-p.Bottom, 0)
	side := min(w, h)
	return Geometry{
		CenterX: float64(p.Left) + float64(w)/2,
		CenterY: float64(p.Top) + float64(h)/2,
		Radius:  side / 2,
		Side:    side,
	}
}

// Face is the clock widget. It is not safe for concurrent use; the host
// calls it from its single render goroutine.
type Face struct {
	style   Style
	padding Padding
	metrics TextMetrics
	geom    Geometry
	redraw  bool
}

// Option configures a Face.
type Option func(*Face)

// WithPadding reserves space around the face.
func WithPadding(p Padding) Option {
	return func(f *Face) { f.padding = p }
}

// WithMetrics sets the font metrics used to place text. The default
// is ApproxMetrics.
func WithMetrics(m TextMetrics) Option {
	return func(f *Face) { f.metrics = m }
}

// New returns a face configured with style.
func New(style Style, opts ...Option) *Face {
	f := &Face{metrics: ApproxMetrics{}}
	for _, opt := range opts {
		opt(f)
	}
	f.Configure(style)
	return f
}

// Configure replaces the style, defaulting unset colors, and requests a
// redraw.
func (f *Face) Configure(style Style) {
	f.style = style.withDefaults()
	f.Invalidate()
}

// Style returns the effective style.
func (f *Face) Style() Style { return f.style }

// SetShowAnalog switches between the analog and digital face.
func (f *Face) SetShowAnalog(analog bool) {
	f.style.ShowAnalog = analog
	f.Invalidate()
}

// ShowAnalog reports whether the analog face is shown.
func (f *Face) ShowAnalog() bool { return f.style.ShowAnalog }

// OnSizeChanged recomputes the geometry for a new viewport.
func (f *Face) OnSizeChanged(width, height int) {
	f.geom = NewGeometry(width, height, f.padding)
	f.Invalidate()
}

// Geometry returns the geometry of the last OnSizeChanged.
func (f *Face) Geometry() Geometry { return f.geom }

// Measure reports the square size the face wants inside the given space,
// padding included.
func (f *Face) Measure(width, height int) (int, int) {
	g := NewGeometry(width, height, f.padding)
	p := f.padding
	return g.Side + p.Left + p.Right, g.Side + p.Top + p.Bottom
}

// Invalidate requests a redraw.
func (f *Face) Invalidate() { f.redraw = true }

// TakeRedraw reports whether a redraw was requested since the last call
// and clears the request.
func (f *Face) TakeRedraw() bool {
	r := f.redraw
	f.redraw = false
	return r
}
