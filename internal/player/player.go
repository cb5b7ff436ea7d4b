// Package player plays a decoded song through the system audio output and
// drives the visualization frame clock against it.
package player

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/olivier-w/ledvis/internal/song"
)

// Player streams a song's PCM through the audio device.
type Player struct {
	otoPlayer *oto.Player
	duration  time.Duration
	done      chan struct{}
	mu        sync.Mutex
	paused    bool
	watching  bool
	closed    bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

// initOto creates the process-wide audio context. oto allows one context
// per process, so its sample format is fixed by the first song played.
func initOto(rate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// New prepares playback for the song. Playback starts on Play.
func New(s *song.Song) (*Player, error) {
	ctx, err := initOto(s.SampleRate(), s.Channels())
	if err != nil {
		return nil, err
	}

	p := &Player{
		duration: s.Duration(),
		done:     make(chan struct{}),
	}
	p.otoPlayer = ctx.NewPlayer(s.PCMReader())
	return p, nil
}

// Play starts (or resumes) audio output and begins watching for the end
// of the track.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.paused = false
	p.otoPlayer.Play()
	if !p.watching {
		p.watching = true
		go p.watch()
	}
}

// Pause suspends audio output.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.paused = true
	p.otoPlayer.Pause()
}

func (p *Player) watch() {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		playing := p.otoPlayer.IsPlaying()
		paused := p.paused
		p.mu.Unlock()

		if !playing && !paused {
			close(p.done)
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Done returns a channel that closes when the track finishes.
func (p *Player) Done() <-chan struct{} { return p.done }

// Duration returns the track length.
func (p *Player) Duration() time.Duration { return p.duration }

// Close releases the audio player.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.otoPlayer.Close()
}
