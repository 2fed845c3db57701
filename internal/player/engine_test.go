package player_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"punini/internal/logging"
	"punini/internal/player"
	"punini/internal/testsupport"
)

// fakeOutput stands in for the speaker. Tests pump samples through Step to
// advance playback deterministically.
type fakeOutput struct {
	mu       sync.Mutex
	inited   bool
	rate     beep.SampleRate
	streamer beep.Streamer
	closed   bool
}

func (f *fakeOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	f.inited = true
	f.rate = sampleRate
	return nil
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streamer = s
}

func (f *fakeOutput) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streamer = nil
}

func (f *fakeOutput) Lock() { f.mu.Lock() }

func (f *fakeOutput) Unlock() { f.mu.Unlock() }

func (f *fakeOutput) Close() { f.closed = true }

// Step pulls n samples from the playing streamer, as the audio device would.
func (f *fakeOutput) Step(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.streamer == nil {
		return
	}
	buf := make([][2]float64, 512)
	for n > 0 {
		chunk := len(buf)
		if n < chunk {
			chunk = n
		}
		got, ok := f.streamer.Stream(buf[:chunk])
		n -= got
		if !ok {
			f.streamer = nil
			return
		}
	}
}

func newTestEngine(t *testing.T) (*player.Engine, *fakeOutput, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	out := &fakeOutput{}
	engine := player.New(cfg, out, logging.NewNop())
	t.Cleanup(engine.Close)

	wavPath := filepath.Join(cfg.Paths.MusicDir, "tone.wav")
	testsupport.WriteWAV(t, wavPath, cfg.Playback.SampleRate, 500*time.Millisecond)
	return engine, out, wavPath
}

func TestLoadReportsDuration(t *testing.T) {
	engine, out, wavPath := newTestEngine(t)

	if _, err := engine.Load(wavPath); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !out.inited {
		t.Fatal("expected output to be initialized")
	}
	got := engine.Duration()
	if got < 490*time.Millisecond || got > 510*time.Millisecond {
		t.Fatalf("unexpected duration: %v", got)
	}
	if engine.Position() != 0 {
		t.Fatalf("expected position 0 before streaming, got %v", engine.Position())
	}
	if engine.Path() != wavPath {
		t.Fatalf("unexpected path: %q", engine.Path())
	}
}

func TestPositionAdvancesWithStreaming(t *testing.T) {
	engine, out, wavPath := newTestEngine(t)
	if _, err := engine.Load(wavPath); err != nil {
		t.Fatalf("Load: %v", err)
	}

	out.Step(44100 / 10) // 100ms of samples
	pos := engine.Position()
	if pos < 90*time.Millisecond || pos > 110*time.Millisecond {
		t.Fatalf("unexpected position after streaming: %v", pos)
	}
}

func TestToggleAndPausedState(t *testing.T) {
	engine, out, wavPath := newTestEngine(t)
	if _, err := engine.Load(wavPath); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if engine.Paused() {
		t.Fatal("new track should start unpaused")
	}
	if paused := engine.Toggle(); !paused {
		t.Fatal("first toggle should pause")
	}
	if !engine.Paused() {
		t.Fatal("engine should report paused")
	}

	// A paused ctrl yields silence but keeps the streamer position.
	before := engine.Position()
	out.Step(4410)
	if engine.Position() != before {
		t.Fatalf("position moved while paused: %v -> %v", before, engine.Position())
	}

	if paused := engine.Toggle(); paused {
		t.Fatal("second toggle should resume")
	}
}

func TestPauseAndResume(t *testing.T) {
	engine, _, wavPath := newTestEngine(t)
	if _, err := engine.Load(wavPath); err != nil {
		t.Fatalf("Load: %v", err)
	}

	engine.Pause()
	if !engine.Paused() {
		t.Fatal("Pause should report paused")
	}
	engine.Resume()
	if engine.Paused() {
		t.Fatal("Resume should clear paused")
	}
}

func TestLoadReplacesCurrentTrack(t *testing.T) {
	engine, _, wavPath := newTestEngine(t)
	done1, err := engine.Load(wavPath)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}

	other := filepath.Join(filepath.Dir(wavPath), "other.wav")
	testsupport.WriteWAV(t, other, 44100, 200*time.Millisecond)
	if _, err := engine.Load(other); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if engine.Path() != other {
		t.Fatalf("expected current path %q, got %q", other, engine.Path())
	}
	// The replaced track releases its done channel so waiters can observe
	// it is no longer current.
	select {
	case <-done1:
	case <-time.After(time.Second):
		t.Fatal("replaced track did not release done channel")
	}
	if engine.Path() != other {
		t.Fatalf("replacement should remain current, got %q", engine.Path())
	}
}

func TestTrackCompletionClosesDone(t *testing.T) {
	engine, out, wavPath := newTestEngine(t)
	done, err := engine.Load(wavPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out.Step(44100) // stream past the 500ms of audio
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done channel did not close after track end")
	}
}

func TestSeekClampsAndMoves(t *testing.T) {
	engine, _, wavPath := newTestEngine(t)
	if _, err := engine.Load(wavPath); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := engine.Seek(250 * time.Millisecond); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	pos := engine.Position()
	if pos < 240*time.Millisecond || pos > 260*time.Millisecond {
		t.Fatalf("unexpected position after seek: %v", pos)
	}

	if err := engine.Seek(time.Hour); err != nil {
		t.Fatalf("Seek past end: %v", err)
	}
	if engine.Position() < 490*time.Millisecond {
		t.Fatalf("expected clamp to end, got %v", engine.Position())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	engine, _, wavPath := newTestEngine(t)
	bogus := filepath.Join(filepath.Dir(wavPath), "video.m4a")
	testsupport.WriteFile(t, bogus, []byte("not audio"))

	_, err := engine.Load(bogus)
	if !errors.Is(err, player.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOperationsWithoutTrack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	engine := player.New(cfg, &fakeOutput{}, logging.NewNop())
	t.Cleanup(engine.Close)

	if engine.Position() != 0 || engine.Duration() != 0 {
		t.Fatal("empty engine should report zero position and duration")
	}
	if engine.Toggle() {
		t.Fatal("toggle without track should stay unpaused")
	}
	if err := engine.Seek(time.Second); !errors.Is(err, player.ErrNoTrack) {
		t.Fatalf("expected ErrNoTrack, got %v", err)
	}
	engine.Stop() // must not panic
}
