package song

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeTestWAV encodes interleaved 16-bit samples to a temporary WAV file.
func writeTestWAV(t *testing.T, rate, channels int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWAV(t *testing.T) {
	t.Parallel()

	const rate = 8000
	samples := make([]int, rate) // one second, mono
	for i := range samples {
		samples[i] = int(16384 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	path := writeTestWAV(t, rate, 1, samples)

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.SampleRate() != rate {
		t.Errorf("SampleRate = %d, want %d", s.SampleRate(), rate)
	}
	if s.Channels() != 1 {
		t.Errorf("Channels = %d, want 1", s.Channels())
	}
	if d := s.Duration(); d != time.Second {
		t.Errorf("Duration = %v, want 1s", d)
	}
	if m := s.MaxSample(); math.Abs(float64(m)-16384) > 100 {
		t.Errorf("MaxSample = %g, want ~16384", m)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "track.aiff")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 1000)
	for i := range pcm {
		pcm[i] = int16(i)
	}
	s := New(pcm, 1000, 1) // one sample per millisecond

	got := s.Range(100*time.Millisecond, 50*time.Millisecond)
	if len(got) != 50 {
		t.Fatalf("Range length = %d, want 50", len(got))
	}
	if want := float32(100); got[0] != want {
		t.Errorf("Range[0] = %g, want %g", got[0], want)
	}

	// truncated at end of track
	got = s.Range(990*time.Millisecond, 50*time.Millisecond)
	if len(got) != 10 {
		t.Errorf("tail Range length = %d, want 10", len(got))
	}

	// past the end
	if got := s.Range(2*time.Second, 50*time.Millisecond); got != nil {
		t.Errorf("Range past end = %d samples, want nil", len(got))
	}

	// mutating the returned slice must not affect the song
	got = s.Range(0, 10*time.Millisecond)
	got[0] = 99
	if again := s.Range(0, 10*time.Millisecond); again[0] == 99 {
		t.Error("Range returned a view into the song's samples")
	}
}

func TestMonoMixdown(t *testing.T) {
	t.Parallel()

	// stereo: left 1000, right -1000 averages to silence
	s := New([]int16{1000, -1000, 2000, 2000}, 100, 2)

	mono := s.Range(0, time.Second)
	if len(mono) != 2 {
		t.Fatalf("mono length = %d, want 2", len(mono))
	}
	if mono[0] != 0 {
		t.Errorf("mono[0] = %g, want 0", mono[0])
	}
	if want := float32(2000); mono[1] != want {
		t.Errorf("mono[1] = %g, want %g", mono[1], want)
	}
}

func TestPCMReader(t *testing.T) {
	t.Parallel()

	s := New([]int16{0x0102, -2}, 44100, 1)
	raw, err := io.ReadAll(s.PCMReader())
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("PCM bytes = %x, want %x", raw, want)
		}
	}
}

func TestReadMetadataFallsBackToFilename(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "My Song.wav")
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	m := ReadMetadata(path)
	if m.Title != "My Song" {
		t.Errorf("Title = %q, want %q", m.Title, "My Song")
	}
}
