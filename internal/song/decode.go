package song

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// Load decodes the audio file at path entirely into memory. The format is
// detected by extension: .wav, .mp3, .ogg, .flac.
func Load(path string) (*Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		pcm            []int16
		rate, channels int
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		pcm, rate, channels, err = decodeWAV(f)
	case ".mp3":
		pcm, rate, channels, err = decodeMP3(f)
	case ".ogg":
		pcm, rate, channels, err = decodeOGG(f)
	case ".flac":
		pcm, rate, channels, err = decodeFLAC(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if len(pcm) == 0 {
		return nil, ErrEmptyTrack
	}

	return New(pcm, rate, channels), nil
}

func decodeWAV(f *os.File) ([]int16, int, int, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}

	depth := int(dec.BitDepth)
	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm[i] = sampleToInt16(v, depth)
	}
	return pcm, int(dec.SampleRate), int(dec.NumChans), nil
}

// sampleToInt16 rescales a PCM sample of the given source bit depth to 16
// bits. 8-bit WAV is unsigned.
func sampleToInt16(v, depth int) int16 {
	switch depth {
	case 8:
		v = (v - 128) << 8
	case 24:
		v >>= 8
	case 32:
		v >>= 16
	}
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}

func decodeMP3(f *os.File) ([]int16, int, int, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, 0, err
	}

	// go-mp3 always emits 16-bit little-endian stereo
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, 0, err
	}
	pcm := make([]int16, len(raw)/2)
	for i := range pcm {
		pcm[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return pcm, dec.SampleRate(), 2, nil
}

func decodeOGG(f *os.File) ([]int16, int, int, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, 0, 0, err
	}

	channels := reader.Channels()
	pcm := make([]int16, 0, int(reader.Length())*channels)
	samples := make([]float32, 4096*channels)
	for {
		n, err := reader.Read(samples)
		for _, s := range samples[:n] {
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			pcm = append(pcm, int16(s*32767))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, err
		}
	}
	return pcm, reader.SampleRate(), channels, nil
}

func decodeFLAC(f *os.File) ([]int16, int, int, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, 0, 0, err
	}

	info := stream.Info
	channels := int(info.NChannels)
	bps := int(info.BitsPerSample)
	pcm := make([]int16, 0, int(info.NSamples)*channels)

	for {
		fr, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, err
		}

		nSamples := int(fr.Subframes[0].NSamples)
		for i := 0; i < nSamples; i++ {
			for ch := 0; ch < channels; ch++ {
				sample := int(fr.Subframes[ch].Samples[i])
				switch {
				case bps > 16:
					sample >>= bps - 16
				case bps < 16:
					sample <<= 16 - bps
				}
				pcm = append(pcm, sampleToInt16(sample, 16))
			}
		}
	}
	return pcm, int(info.SampleRate), channels, nil
}
