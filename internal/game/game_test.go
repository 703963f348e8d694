package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/clockface/internal/face"
)

var start = time.Date(2024, 5, 4, 15, 4, 5, 0, time.UTC)

func newTestGame(opts ...Option) *Game {
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(face.New(face.DefaultStyle()), nil, start, opts...)
}

func TestNewSamplesStartTime(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, face.TimeOfDay{Hour: 3, Minute: 4, Second: 5, Meridiem: face.PM}, g.now)
}

func TestTickNeverBlocks(t *testing.T) {
	g := newTestGame()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			g.Tick(start.Add(time.Duration(i) * time.Second))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Tick blocked")
	}

	// Only the newest sample survives.
	g.face.TakeRedraw()
	require.True(t, g.applyPending())
	assert.Equal(t, face.FromTime(start.Add(99*time.Second)), g.now)
	assert.True(t, g.face.TakeRedraw())
	assert.False(t, g.applyPending())
}

func TestConfigureAppliedOnGameLoop(t *testing.T) {
	g := newTestGame()
	style := face.DefaultStyle()
	style.ShowAnalog = false

	g.Configure(style)
	assert.True(t, g.face.ShowAnalog(), "style must wait for the game loop")

	assert.False(t, g.applyPending())
	assert.False(t, g.face.ShowAnalog())
}

func TestToggleAnalog(t *testing.T) {
	g := newTestGame()
	g.toggleAnalog()
	assert.False(t, g.face.ShowAnalog())
	g.toggleAnalog()
	assert.True(t, g.face.ShowAnalog())
}

func TestLayout(t *testing.T) {
	g := newTestGame()
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, 240, g.face.Geometry().Radius)

	w, h = g.Layout(0, -3)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, 0, g.face.Geometry().Radius)
}

func TestOpenTickSoundDialogCanceled(t *testing.T) {
	g := newTestGame(WithFilePicker(func() (string, error) { return "", zenity.ErrCanceled }))
	assert.NoError(t, g.openTickSoundDialog())
	assert.Nil(t, g.sound)
}

func TestOpenTickSoundDialogUnsupported(t *testing.T) {
	g := newTestGame(WithFilePicker(func() (string, error) { return writeFile(t, "tick.ogg"), nil }))
	err := g.openTickSoundDialog()
	assert.True(t, errors.Is(err, ErrUnsupportedSound))
	assert.Nil(t, g.sound)
}
