// Package synth renders block notes as enveloped tones through the system
// audio device.
package synth

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/tui-bounce/internal/music"
)

const (
	sampleRate          = 44100
	bufferSizeBytes20ms = sampleRate / 50 * 2 // 20ms of 16-bit mono audio
)

// Options configures the tone generator.
type Options struct {
	Waveform Waveform
	Volume   float64 // Per-tone gain in (0, 1]
	Release  time.Duration
}

// DefaultOptions returns a quiet sine with a 400ms tail.
func DefaultOptions() Options {
	return Options{Waveform: Sine, Volume: 0.2, Release: 400 * time.Millisecond}
}

// Engine owns the audio device. The device is opened on first use; oto
// allows one context per process, so create a single Engine.
type Engine struct {
	opts   Options
	logger *log.Logger

	once   sync.Once
	err    error
	player *oto.Player
	mix    *mixer

	closed atomic.Bool
}

// New creates an engine. Nothing is opened until Start or the first note.
func New(opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{opts: opts, logger: logger}
}

// Start opens the audio device and reports whether it is usable.
func (e *Engine) Start() error {
	e.once.Do(e.open)
	return e.err
}

func (e *Engine) open() {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		e.err = fmt.Errorf("synth: opening audio device: %w", err)
		return
	}
	<-ready

	e.mix = &mixer{}
	p := ctx.NewPlayer(e.mix)
	p.SetBufferSize(bufferSizeBytes20ms)
	p.Play()
	e.player = p
	e.logger.Debug("audio device opened", "sample_rate", sampleRate, "waveform", e.opts.Waveform)
}

// Close stops playback. Notes played afterwards are dropped.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	if e.player == nil {
		return nil
	}
	return e.player.Close()
}

// NewEmitter returns a per-block voice handle.
func (e *Engine) NewEmitter() *Voice {
	return &Voice{engine: e}
}

// trigger schedules one note.
func (e *Engine) trigger(n music.Note) {
	if e.closed.Load() {
		return
	}
	e.once.Do(e.open)
	if e.mix == nil {
		return
	}
	release := int(e.opts.Release.Seconds() * sampleRate)
	e.mix.Add(newTone(e.opts.Waveform, n.Frequency(), e.opts.Volume, release, sampleRate))
}

// ErrVoiceClosed is returned by Close on an already released voice.
var ErrVoiceClosed = errors.New("synth: voice already closed")

// Voice is the sound capability of one block.
type Voice struct {
	engine *Engine
	closed atomic.Bool
}

// Play sounds the note, an octave higher when transposeUp is set.
func (v *Voice) Play(pitch music.PitchClass, octave int, transposeUp bool) {
	if v.closed.Load() {
		return
	}
	n := music.Note{Pitch: pitch, Octave: octave}
	if transposeUp {
		n = n.Transpose(1)
	}
	v.engine.trigger(n)
}

// Close releases the voice; later Play calls are ignored.
func (v *Voice) Close() error {
	if v.closed.Swap(true) {
		return ErrVoiceClosed
	}
	return nil
}

// Silent is an emitter that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(music.PitchClass, int, bool) {}
