// ledvis plays an audio file and streams its visualization to a 32x32 LED
// matrix over SPI, or to a terminal preview.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olivier-w/ledvis/internal/frame"
	"github.com/olivier-w/ledvis/internal/player"
	"github.com/olivier-w/ledvis/internal/song"
	"github.com/olivier-w/ledvis/internal/vis"
)

func main() {
	var (
		mode   = flag.String("mode", "fft", "visualization mode: fft, test or rainbow")
		out    = flag.String("out", "term", "output: 'term' or an SPI device path like /dev/spidev0.0")
		rate   = flag.Int("rate", 0, "frame rate (default 50)")
		cutoff = flag.Float64("cutoff", 0, "spectrum cutoff (default 0.3)")
		frac   = flag.Float64("frac", 0, "fraction of the spectrum to display (default 0.02)")
		params = flag.String("params", "", "parameter file overriding cutoff/frac/rate")
		silent = flag.Bool("silent", false, "render frames without playing audio")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.{wav,mp3,ogg,flac}\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := vis.Config{FrameRate: *rate, Cutoff: *cutoff, SpecFrac: *frac}
	if *params != "" {
		loaded, err := vis.LoadConfig(*params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(flag.Arg(0), *mode, *out, cfg, *silent); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, mode, out string, cfg vis.Config, silent bool) error {
	var gen vis.Generator
	switch mode {
	case "fft":
		gen = vis.NewScrollingFFT(cfg)
	case "test":
		gen = vis.TestPattern()
	case "rainbow":
		gen = vis.RainbowWash()
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	s, err := song.Load(path)
	if err != nil {
		return err
	}

	meta := song.ReadMetadata(path)
	if meta.Artist != "" {
		fmt.Printf("Playing: %s - %s\n", meta.Artist, meta.Title)
	} else {
		fmt.Printf("Playing: %s\n", meta.Title)
	}

	var sink frame.Sink
	if out == "term" {
		sink = frame.NewTermSink(os.Stdout)
	} else {
		sink, err = frame.OpenSPI(out)
		if err != nil {
			return err
		}
	}
	defer sink.Close()

	var audio *player.Player
	if !silent {
		audio, err = player.New(s)
		if err != nil {
			return err
		}
		defer audio.Close()
	}

	return player.Run(s, gen, sink, audio)
}
