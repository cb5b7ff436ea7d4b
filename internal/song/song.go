// Package song loads an audio file fully into memory and exposes the two
// views the pipeline needs: interleaved 16-bit PCM for playback and a mono
// float view for spectral analysis.
package song

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"
)

// Song is an immutable, fully-decoded audio track.
type Song struct {
	pcm       []int16 // interleaved
	mono      []float32
	rate      int
	channels  int
	maxSample float32
}

// New builds a Song from interleaved 16-bit PCM.
func New(pcm []int16, rate, channels int) *Song {
	if channels < 1 {
		channels = 1
	}
	s := &Song{pcm: pcm, rate: rate, channels: channels}

	// the mono view keeps the raw int16 scale; the spectrum heuristics
	// downstream normalize against MaxSample
	frames := len(pcm) / channels
	s.mono = make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(pcm[i*channels+ch])
		}
		v := sum / float32(channels)
		s.mono[i] = v
		if v < 0 {
			v = -v
		}
		if v > s.maxSample {
			s.maxSample = v
		}
	}
	return s
}

func (s *Song) SampleRate() int { return s.rate }
func (s *Song) Channels() int   { return s.channels }

// Duration returns the playback length of the track.
func (s *Song) Duration() time.Duration {
	if s.rate == 0 {
		return 0
	}
	frames := len(s.pcm) / s.channels
	return time.Duration(frames) * time.Second / time.Duration(s.rate)
}

// MaxSample returns the largest absolute mono sample, used to scale
// spectrum magnitudes.
func (s *Song) MaxSample() float32 { return s.maxSample }

// Range returns a copy of the mono samples in [start, start+dur),
// truncated at the end of the track. Past the end it returns nil.
func (s *Song) Range(start, dur time.Duration) []float32 {
	if s.rate == 0 || start < 0 {
		return nil
	}
	lo := int(int64(start) * int64(s.rate) / int64(time.Second))
	count := int(int64(dur) * int64(s.rate) / int64(time.Second))
	if lo >= len(s.mono) || count <= 0 {
		return nil
	}
	hi := lo + count
	if hi > len(s.mono) {
		hi = len(s.mono)
	}
	out := make([]float32, hi-lo)
	copy(out, s.mono[lo:])
	return out
}

// PCMReader returns a reader over the track's interleaved little-endian
// 16-bit PCM, the format the audio output consumes.
func (s *Song) PCMReader() io.Reader {
	raw := make([]byte, len(s.pcm)*2)
	for i, v := range s.pcm {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(v))
	}
	return bytes.NewReader(raw)
}
