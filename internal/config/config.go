// Package config holds the quotebot configuration: defaults, the per-key
// schema used for interactive edits, and load/save against a JSON file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rcliao/quotebot/internal/jsonfile"
	"github.com/rcliao/quotebot/internal/model"
)

var (
	// ErrMalformed marks a config file that exists but could not be used.
	ErrMalformed = errors.New("malformed config")
	// ErrUnknownKey is returned by Set and Get for keys outside the schema.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned by Set when the value does not fit the key.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config is the full set of bot options. Delays are in seconds.
type Config struct {
	MessagePrefix        string     `json:"message_prefix"`
	MinDelay             float64    `json:"min_delay"`
	MaxDelay             float64    `json:"max_delay"`
	InitialDelay         float64    `json:"initial_delay"`
	MaxMessages          int        `json:"max_messages"`
	AvoidRepeats         bool       `json:"avoid_repeats"`
	LogMessages          bool       `json:"log_messages"`
	TestMode             model.Mode `json:"test_mode"`
	BurstCount           int        `json:"burst_count"`
	BurstDelay           float64    `json:"burst_delay"`
	FloodRate            float64    `json:"flood_rate"`
	PatternRepeat        int        `json:"pattern_repeat"`
	SimilarMessageChance float64    `json:"similar_message_chance"`
	CapsChance           float64    `json:"caps_chance"`
	SpamWordsChance      float64    `json:"spam_words_chance"`
	RepeatCharsChance    float64    `json:"repeat_chars_chance"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MessagePrefix:        ">>> ",
		MinDelay:             2,
		MaxDelay:             5,
		InitialDelay:         2,
		MaxMessages:          100,
		AvoidRepeats:         true,
		LogMessages:          true,
		TestMode:             model.ModeNormal,
		BurstCount:           5,
		BurstDelay:           0.1,
		FloodRate:            0.5,
		PatternRepeat:        3,
		SimilarMessageChance: 0.3,
		CapsChance:           0.2,
		SpamWordsChance:      0.1,
		RepeatCharsChance:    0.3,
	}
}

// Load reads the config file at path and merges it over the defaults:
// keys present in the file win, missing keys keep their default, unknown
// keys are ignored.
//
// If the file does not exist the defaults are written to path. If it exists
// but cannot be parsed or fails validation, Load returns the defaults
// together with an error wrapping ErrMalformed. The returned config is never
// nil, so callers may log the error and carry on.
func Load(path string) (*Config, error) {
	cfg := Default()
	err := jsonfile.Read(path, cfg)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(path); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	case err != nil:
		return Default(), fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	return cfg, nil
}

// Save writes the config to path as indented JSON.
func (c *Config) Save(path string) error {
	return jsonfile.Write(path, c)
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	if !model.ValidModes[c.TestMode] {
		return fmt.Errorf("test_mode %q (valid: normal, burst, flood, pattern, mixed)", c.TestMode)
	}
	for _, d := range []struct {
		key string
		v   float64
	}{
		{"min_delay", c.MinDelay},
		{"max_delay", c.MaxDelay},
		{"initial_delay", c.InitialDelay},
		{"burst_delay", c.BurstDelay},
		{"flood_rate", c.FloodRate},
	} {
		if d.v < 0 {
			return fmt.Errorf("%s must not be negative", d.key)
		}
	}
	if c.MinDelay > c.MaxDelay {
		return fmt.Errorf("min_delay (%g) exceeds max_delay (%g)", c.MinDelay, c.MaxDelay)
	}
	if c.MaxMessages < 0 {
		return fmt.Errorf("max_messages must not be negative")
	}
	if c.BurstCount < 0 {
		return fmt.Errorf("burst_count must not be negative")
	}
	if c.PatternRepeat < 1 {
		return fmt.Errorf("pattern_repeat must be at least 1")
	}
	for _, p := range []struct {
		key string
		v   float64
	}{
		{"similar_message_chance", c.SimilarMessageChance},
		{"caps_chance", c.CapsChance},
		{"spam_words_chance", c.SpamWordsChance},
		{"repeat_chars_chance", c.RepeatCharsChance},
	} {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%s must be between 0 and 1", p.key)
		}
	}
	return nil
}

// Seconds converts a delay option to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
