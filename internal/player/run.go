package player

import (
	"errors"
	"time"

	"github.com/olivier-w/ledvis/internal/frame"
	"github.com/olivier-w/ledvis/internal/song"
	"github.com/olivier-w/ledvis/internal/vis"
)

// ErrNoFrames is returned when the generator cannot produce even the
// first frame.
var ErrNoFrames = errors.New("player: generator produced no frames")

// Run plays the song (unless audio is nil) while driving gen at its frame
// rate and pushing every frame to sink. Frame deadlines are derived from
// the start time rather than accumulated sleeps, so generation cost does
// not drift the clock. When the generator finishes, the last image is
// scrolled off the display and the function waits for audio to drain.
func Run(s *song.Song, gen vis.Generator, sink frame.Sink, audio *Player) error {
	var f frame.Frame

	// the first frame is generated before audio starts so its cost does
	// not delay the opening beat
	if !gen.NextFrame(s, 0, &f) {
		return ErrNoFrames
	}

	if audio != nil {
		audio.Play()
	}

	interval := time.Second / time.Duration(gen.FrameRate())
	start := time.Now()
	count := 0

	for {
		if err := sink.Display(&f); err != nil {
			return err
		}
		count++

		offset := time.Duration(count) * interval
		if !gen.NextFrame(s, offset, &f) {
			break
		}
		time.Sleep(time.Until(start.Add(offset)))
	}

	// scroll the final image off the edge
	for range frame.Width {
		count++
		f.ShiftRight()
		if err := sink.Display(&f); err != nil {
			return err
		}
		time.Sleep(time.Until(start.Add(time.Duration(count) * interval)))
	}

	if audio != nil {
		<-audio.Done()
	}
	return nil
}
