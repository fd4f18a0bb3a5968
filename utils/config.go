package utils

import (
	"encoding/json"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// DefaultRounds is used when no valid round count is given
	DefaultRounds = 1000

	RendererText   = "text"
	RendererPlain  = "plain"
	RendererScreen = "screen"
)

// PatternNames lists the shapes a run can start from instead of random noise
var PatternNames = []string{"block", "blinker", "glider"}

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Duration is a time.Duration that also accepts strings like "250ms" in JSON
type Duration time.Duration

// UnmarshalJSON accepts either a number of nanoseconds or a duration string
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %s", data)
	}
	*d = Duration(ns)
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Rows           int         `json:"rows"`
	Cols           int         `json:"cols"`
	DensityDivisor int         `json:"density_divisor"`
	Seed           int64       `json:"seed"`
	FrameRate      Duration    `json:"frame_rate"`
	Rounds         int         `json:"rounds"`
	Rules          rules.Rules `json:"rules"`
	Renderer       string      `json:"renderer"`
	Pattern        string      `json:"pattern"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           60,
		DensityDivisor: 3,
		FrameRate:      Duration(time.Second),
		Rounds:         DefaultRounds,
		Rules:          rules.Conway(),
		Renderer:       RendererText,
	}
}

// LoadConfig loads configuration from JSON file, fields missing from the file keep their defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid %dx%d", c.Rows, c.Cols)
	case c.DensityDivisor < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density divisor %d", c.DensityDivisor)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", time.Duration(c.FrameRate))
	case !slices.Contains([]string{RendererText, RendererPlain, RendererScreen}, c.Renderer):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	case c.Pattern != "" && !slices.Contains(PatternNames, c.Pattern):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	return c.Rules.Validate()
}

// ResolveSeed returns the configured seed, or one derived from the clock when it is zero
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
