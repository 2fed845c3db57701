package player

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"punini/internal/config"
	"punini/internal/logging"
)

// ErrNoTrack reports an operation that needs a loaded track.
var ErrNoTrack = errors.New("no track loaded")

const resampleQuality = 4

// Engine plays one track at a time at a fixed output sample rate.
type Engine struct {
	output     Output
	logger     *slog.Logger
	sampleRate beep.SampleRate
	bufferSize int
	baseVolume float64

	mu      sync.Mutex
	inited  bool
	current *track
}

type track struct {
	path     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	done     chan struct{}
	doneOnce sync.Once
}

func (t *track) signalDone() {
	t.doneOnce.Do(func() { close(t.done) })
}

// New constructs an engine from playback configuration. Pass nil output to
// use the platform speaker.
func New(cfg *config.Config, output Output, logger *slog.Logger) *Engine {
	if output == nil {
		output = SpeakerOutput{}
	}
	sampleRate := beep.SampleRate(cfg.Playback.SampleRate)
	return &Engine{
		output:     output,
		logger:     logging.WithComponent(logger, "player"),
		sampleRate: sampleRate,
		bufferSize: sampleRate.N(time.Duration(cfg.Playback.BufferMs) * time.Millisecond),
		baseVolume: cfg.Playback.Volume,
	}
}

func (e *Engine) ensureOutput() error {
	if e.inited {
		return nil
	}
	if err := e.output.Init(e.sampleRate, e.bufferSize); err != nil {
		return fmt.Errorf("init audio output: %w", err)
	}
	e.inited = true
	return nil
}

// Load stops the current track, decodes path, and starts playing it. The
// returned channel closes when the track stops streaming for any reason:
// natural completion, Stop, or replacement by another Load. Callers that
// care about the difference compare Path against what they loaded.
func (e *Engine) Load(path string) (<-chan struct{}, error) {
	streamer, format, err := Decode(path)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureOutput(); err != nil {
		_ = streamer.Close()
		return nil, err
	}

	e.stopLocked()

	var source beep.Streamer = streamer
	if format.SampleRate != e.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, e.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: source}
	volume := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   volumeGain(e.baseVolume),
		Silent:   e.baseVolume == 0,
	}

	current := &track{
		path:     path,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   volume,
		done:     make(chan struct{}),
	}
	e.current = current

	e.output.Play(beep.Seq(volume, beep.Callback(current.signalDone)))

	e.logger.Info("track loaded",
		logging.Path(path),
		logging.Int("sample_rate", int(format.SampleRate)),
		logging.Duration("duration", format.SampleRate.D(streamer.Len())))

	return current.done, nil
}

// volumeGain maps a linear 0..2 config volume onto the exponential scale
// effects.Volume expects (base 2).
func volumeGain(linear float64) float64 {
	if linear <= 0 {
		return 0
	}
	return math.Log2(linear)
}

// Pause suspends playback, keeping the position.
func (e *Engine) Pause() { e.setPaused(true) }

// Resume continues a paused track.
func (e *Engine) Resume() { e.setPaused(false) }

// Toggle flips between playing and paused and reports the new paused state.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return false
	}
	e.output.Lock()
	e.current.ctrl.Paused = !e.current.ctrl.Paused
	paused := e.current.ctrl.Paused
	e.output.Unlock()
	return paused
}

func (e *Engine) setPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return
	}
	e.output.Lock()
	e.current.ctrl.Paused = paused
	e.output.Unlock()
}

// Paused reports whether a loaded track is paused.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return false
	}
	e.output.Lock()
	defer e.output.Unlock()
	return e.current.ctrl.Paused
}

// Position returns the playhead of the current track.
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return 0
	}
	e.output.Lock()
	pos := e.current.streamer.Position()
	e.output.Unlock()
	return e.current.format.SampleRate.D(pos)
}

// Duration returns the total length of the current track.
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return 0
	}
	return e.current.format.SampleRate.D(e.current.streamer.Len())
}

// Seek moves the playhead. Positions past the end clamp to the end.
func (e *Engine) Seek(to time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return ErrNoTrack
	}
	if to < 0 {
		to = 0
	}
	target := e.current.format.SampleRate.N(to)
	e.output.Lock()
	defer e.output.Unlock()
	if max := e.current.streamer.Len(); target > max {
		target = max
	}
	if err := e.current.streamer.Seek(target); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

// Path returns the file currently loaded, or "".
func (e *Engine) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return ""
	}
	return e.current.path
}

// Stop halts playback and releases the current track.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.current == nil {
		return
	}
	e.output.Clear()
	if err := e.current.streamer.Close(); err != nil {
		e.logger.Warn("close streamer", logging.Error(err), logging.Path(e.current.path))
	}
	e.current.signalDone()
	e.current = nil
}

// Close stops playback and shuts the audio device down.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	if e.inited {
		e.output.Close()
		e.inited = false
	}
}
