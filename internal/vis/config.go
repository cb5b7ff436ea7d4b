package vis

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the scrolling-visualizer tunables.
type Config struct {
	// FrameRate is the display refresh rate in frames per second.
	FrameRate int
	// Cutoff is the log-magnitude floor below which a bin stays dark.
	Cutoff float64
	// SpecFrac is the fraction of the spectrum (from DC upward) that is
	// mapped onto the display; music content lives in the low bins.
	SpecFrac float64
}

func (c *Config) applyDefaults() {
	if c.FrameRate <= 0 {
		c.FrameRate = 50
	}
	if c.Cutoff <= 0 {
		c.Cutoff = 0.3
	}
	if c.SpecFrac <= 0 {
		c.SpecFrac = 0.02
	}
}

// LoadConfig reads a parameter file: one value per line in the order
// cutoff, spectrum fraction, frame rate. Lines containing "order" and
// blank lines are skipped. Missing trailing values keep their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	cfg.applyDefaults()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "order") {
			continue
		}

		count++
		switch count {
		case 1:
			cfg.Cutoff, err = strconv.ParseFloat(line, 64)
		case 2:
			cfg.SpecFrac, err = strconv.ParseFloat(line, 64)
		case 3:
			cfg.FrameRate, err = strconv.Atoi(line)
		default:
			return cfg, fmt.Errorf("parameter file %s: unexpected extra line %q", path, line)
		}
		if err != nil {
			return cfg, fmt.Errorf("parameter file %s line %d: %w", path, count, err)
		}
	}
	return cfg, scanner.Err()
}
