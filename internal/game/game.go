// Package game hosts the clock face in an ebiten window.
package game

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/clockface/internal/face"
)

// Game implements ebiten.Game. Face state is only touched from the ebiten
// game goroutine; the ticker and the config watcher hand their values over
// through one-slot channels.
type Game struct {
	face     *face.Face
	renderer *Renderer
	logger   *log.Logger

	background color.NRGBA
	sound      *TickSound
	now        face.TimeOfDay

	ticks  chan time.Time
	styles chan face.Style

	width, height int

	// pickFile opens the tick sound picker.
	pickFile func() (string, error)
	lastErr  error
}

// Option configures a Game.
type Option func(*Game)

// WithBackground sets the color the screen is cleared to before each redraw.
func WithBackground(c color.NRGBA) Option {
	return func(g *Game) { g.background = c }
}

// WithTickSound plays s on every tick.
func WithTickSound(s *TickSound) Option {
	return func(g *Game) { g.sound = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithFilePicker replaces the zenity dialog used to choose a tick sound.
func WithFilePicker(pick func() (string, error)) Option {
	return func(g *Game) { g.pickFile = pick }
}

// New returns a game showing f, sampled at now until the first tick.
func New(f *face.Face, r *Renderer, now time.Time, opts ...Option) *Game {
	g := &Game{
		face:       f,
		renderer:   r,
		logger:     log.Default(),
		background: color.NRGBA{A: 0xff},
		now:        face.FromTime(now),
		ticks:      make(chan time.Time, 1),
		styles:     make(chan face.Style, 1),
		pickFile:   selectSoundFile,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Tick implements ticker.Target. It never blocks; when the game loop falls
// behind only the newest sample is kept.
func (g *Game) Tick(now time.Time) {
	handOver(g.ticks, now)
}

// Configure queues a new style, typically from a config reload.
func (g *Game) Configure(s face.Style) {
	handOver(g.styles, s)
}

func handOver[T any](c chan T, v T) {
	for {
		select {
		case c <- v:
			return
		default:
		}
		select {
		case <-c:
		default:
		}
	}
}

// applyPending consumes queued ticks and styles. It reports whether a tick
// was consumed.
func (g *Game) applyPending() bool {
	ticked := false
	select {
	case now := <-g.ticks:
		g.now = face.FromTime(now)
		g.face.Invalidate()
		ticked = true
	default:
	}
	select {
	case s := <-g.styles:
		g.face.Configure(s)
		g.logger.Info("style reloaded", "analog", s.ShowAnalog)
	default:
	}
	return ticked
}

func (g *Game) toggleAnalog() {
	g.face.SetShowAnalog(!g.face.ShowAnalog())
	g.logger.Debug("mode switched", "analog", g.face.ShowAnalog())
}

func (g *Game) Update() error {
	if g.applyPending() {
		g.sound.Play()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.toggleAnalog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openTickSoundDialog(); err != nil {
			g.logger.Error("tick sound", "err", err)
			g.lastErr = err
			g.face.Invalidate()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw repaints only when the face asked for it; the screen is kept between
// frames otherwise.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.face.TakeRedraw() {
		return
	}
	screen.Fill(g.background)
	g.renderer.Draw(screen, g.face.Render(g.now, g.face.Geometry()))

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 4, 4)
	}
}

// Layout tracks the outside size and lays the face out in it. ebiten
// requires a positive screen, so degenerate sizes are clamped to one pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		if g.renderer != nil {
			g.renderer.Reset()
		}
		g.face.OnSizeChanged(w, h)
		g.logger.Debug("layout", "width", w, "height", h, "radius", g.face.Geometry().Radius)
	}
	return w, h
}

func (g *Game) openTickSoundDialog() error {
	filename, err := g.pickFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	s, err := LoadTickSound(filename)
	if err != nil {
		return err
	}
	if err := InitSpeaker(); err != nil {
		return err
	}
	g.sound = s
	g.lastErr = nil
	g.face.Invalidate()
	g.logger.Info("tick sound loaded", "file", filename, "samples", s.Len())
	return nil
}

func selectSoundFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Choose Tick Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
}
