package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/clockface/internal/face"
)

func TestRendererMeasure(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w, ascent, descent := r.Measure("12", 20)
	assert.Greater(t, w, 0.0)
	assert.Greater(t, ascent, 0.0)
	assert.Greater(t, descent, 0.0)

	wide, _, _ := r.Measure("12:00:00", 20)
	assert.Greater(t, wide, w)

	w, ascent, descent = r.Measure("12", 0)
	assert.Zero(t, w)
	assert.Zero(t, ascent)
	assert.Zero(t, descent)
}

func TestRendererDrivesFaceLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	style := face.DefaultStyle()
	style.ShowAnalog = false
	f := face.New(style, face.WithMetrics(r))
	f.OnSizeChanged(400, 400)

	cmds := f.Render(face.TimeOfDay{Hour: 7, Minute: 5, Second: 9, Meridiem: face.PM}, f.Geometry())
	require.Len(t, cmds, 2)
	digits, suffix := cmds[0].(face.Text), cmds[1].(face.Text)
	w1, _, _ := r.Measure(digits.Text, digits.Size)
	w2, _, _ := r.Measure(suffix.Text, suffix.Size)
	assert.InDelta(t, 200, digits.X+(w1+w2)/2, 1e-6)
}

func TestRendererFaceCacheFollowsLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	f := face.New(face.DefaultStyle(), face.WithMetrics(r))
	g := New(f, r, start, WithLogger(log.New(io.Discard)))

	sizes := []int{200, 300, 400, 500}
	for _, side := range sizes {
		g.Layout(side, side)
		f.Render(g.now, f.Geometry())
		// Numerals share one size per layout.
		assert.Len(t, r.faces, 1, "side %d", side)
	}

	// Same size again keeps the cache.
	g.Layout(500, 500)
	assert.Len(t, r.faces, 1)

	r.Reset()
	assert.Empty(t, r.faces)
}
