package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	speakerRate beep.SampleRate = 44100

	clickLength    = 30 * time.Millisecond
	clickFrequency = 2000.0
	clickVolume    = 0.4

	resampleQuality = 4
)

var ErrUnsupportedSound = errors.New("unsupported sound file")

var (
	speakerOnce  sync.Once
	speakerErr   error
	speakerReady atomic.Bool
)

// InitSpeaker opens the audio device once. Later calls return the first
// result.
func InitSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/20))
		if speakerErr != nil {
			speakerErr = errors.Wrap(speakerErr, "initializing speaker")
			return
		}
		speakerReady.Store(true)
	})
	return speakerErr
}

// TickSound is a short sample played on every tick. It is decoded once and
// kept in memory at the speaker rate.
type TickSound struct {
	name   string
	buffer *beep.Buffer
}

func newBuffer() *beep.Buffer {
	return beep.NewBuffer(beep.Format{SampleRate: speakerRate, NumChannels: 2, Precision: 2})
}

// NewClickSound synthesizes a short fading beep.
func NewClickSound() *TickSound {
	buf := newBuffer()
	buf.Append(click(speakerRate))
	return &TickSound{name: "click", buffer: buf}
}

func click(sr beep.SampleRate) beep.Streamer {
	total := sr.N(clickLength)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			elapsed := sr.D(pos)
			v := math.Sin(2*math.Pi*clickFrequency*elapsed.Seconds()) * envelope(elapsed, clickLength) * clickVolume
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}

// LoadTickSound decodes a wav, mp3 or flac file.
func LoadTickSound(path string) (*TickSound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening tick sound")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.Wrapf(ErrUnsupportedSound, "extension %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		s = beep.Resample(resampleQuality, format.SampleRate, speakerRate, s)
	}
	buf := newBuffer()
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return &TickSound{name: filepath.Base(path), buffer: buf}, nil
}

// Name is a short label for the status line.
func (s *TickSound) Name() string {
	if s == nil {
		return "off"
	}
	return s.name
}

// Len is the length in samples at the speaker rate.
func (s *TickSound) Len() int {
	if s == nil {
		return 0
	}
	return s.buffer.Len()
}

// Play starts the sound. It is a no-op until InitSpeaker succeeded.
func (s *TickSound) Play() {
	if s == nil || !speakerReady.Load() {
		return
	}
	speaker.Play(s.buffer.Streamer(0, s.buffer.Len()))
}
