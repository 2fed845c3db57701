package testsupport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates a file (and parent directories) with the given contents.
func WriteFile(t testing.TB, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteWAV synthesizes a 16-bit mono PCM WAV file of the given length
// containing a 440Hz sine so decoders have real samples to chew on.
func WriteWAV(t testing.TB, path string, sampleRate int, length time.Duration) {
	t.Helper()
	WriteFile(t, path, WAVBytes(sampleRate, length))
}

// WAVBytes builds the in-memory WAV used by WriteWAV.
func WAVBytes(sampleRate int, length time.Duration) []byte {
	samples := int(float64(sampleRate) * length.Seconds())
	dataLen := samples * 2 // 16-bit mono

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for i := 0; i < samples; i++ {
		sample := int16(10000 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		binary.Write(&buf, binary.LittleEndian, sample)
	}

	return buf.Bytes()
}

// SampleLRC returns LRC text with cues at the given second offsets, one
// numbered line per cue.
func SampleLRC(seconds ...int) string {
	var buf bytes.Buffer
	buf.WriteString("[ar:Test Artist]\n[ti:Test Title]\n")
	for i, sec := range seconds {
		fmt.Fprintf(&buf, "[%02d:%02d.00]line %d\n", sec/60, sec%60, i)
	}
	return buf.String()
}
