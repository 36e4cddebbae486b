package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/quotebot/internal/model"
)

// Kind is the declared type of a config key.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "string"
	}
}

// Field describes one config key.
type Field struct {
	Key  string
	Kind Kind
	Enum []string // allowed values for String keys; empty means any
	Help string

	ref func(c *Config) any
}

// Fields is the config schema in file order.
var Fields = []Field{
	{Key: "message_prefix", Kind: String, Help: "text prepended to every message",
		ref: func(c *Config) any { return &c.MessagePrefix }},
	{Key: "min_delay", Kind: Float, Help: "lower bound of the random pause, seconds",
		ref: func(c *Config) any { return &c.MinDelay }},
	{Key: "max_delay", Kind: Float, Help: "upper bound of the random pause, seconds",
		ref: func(c *Config) any { return &c.MaxDelay }},
	{Key: "initial_delay", Kind: Float, Help: "pause before the first message, seconds",
		ref: func(c *Config) any { return &c.InitialDelay }},
	{Key: "max_messages", Kind: Int, Help: "successful deliveries per run",
		ref: func(c *Config) any { return &c.MaxMessages }},
	{Key: "avoid_repeats", Kind: Bool, Help: "exhaust the quote list before repeating",
		ref: func(c *Config) any { return &c.AvoidRepeats }},
	{Key: "log_messages", Kind: Bool, Help: "write the log file and console log",
		ref: func(c *Config) any { return &c.LogMessages }},
	{Key: "test_mode", Kind: String, Enum: modeNames(), Help: "delivery mode",
		ref: func(c *Config) any { return &c.TestMode }},
	{Key: "burst_count", Kind: Int, Help: "messages per burst",
		ref: func(c *Config) any { return &c.BurstCount }},
	{Key: "burst_delay", Kind: Float, Help: "pause between burst messages, seconds",
		ref: func(c *Config) any { return &c.BurstDelay }},
	{Key: "flood_rate", Kind: Float, Help: "pause between flood messages, seconds",
		ref: func(c *Config) any { return &c.FloodRate }},
	{Key: "pattern_repeat", Kind: Int, Help: "sends per near-duplicate variant",
		ref: func(c *Config) any { return &c.PatternRepeat }},
	{Key: "similar_message_chance", Kind: Float, Help: "reserved; kept for file compatibility",
		ref: func(c *Config) any { return &c.SimilarMessageChance }},
	{Key: "caps_chance", Kind: Float, Help: "probability of uppercasing a noisy message",
		ref: func(c *Config) any { return &c.CapsChance }},
	{Key: "spam_words_chance", Kind: Float, Help: "probability of prepending a spam word",
		ref: func(c *Config) any { return &c.SpamWordsChance }},
	{Key: "repeat_chars_chance", Kind: Float, Help: "probability of appending repeated punctuation",
		ref: func(c *Config) any { return &c.RepeatCharsChance }},
}

func modeNames() []string {
	names := make([]string, len(model.Modes))
	for i, m := range model.Modes {
		names[i] = string(m)
	}
	return names
}

// Lookup returns the schema entry for key.
func Lookup(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ParseBool reads an interactive boolean answer. "true", "1", "yes" and "on"
// (any case) are true; everything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// Get returns the current value of key.
func (c *Config) Get(key string) (any, error) {
	f, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	switch p := f.ref(c).(type) {
	case *bool:
		return *p, nil
	case *int:
		return *p, nil
	case *float64:
		return *p, nil
	case *string:
		return *p, nil
	case *model.Mode:
		return string(*p), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set coerces raw to the declared type of key and assigns it. The config is
// left unchanged when raw does not parse or the result fails validation.
func (c *Config) Set(key, raw string) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	// Free-form strings keep their whitespace; a prefix usually ends in one.
	trimmed := strings.TrimSpace(raw)

	next := *c
	switch p := f.ref(&next).(type) {
	case *bool:
		*p = ParseBool(trimmed)
	case *int:
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidValue, key, raw)
		}
		*p = n
	case *float64:
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidValue, key, raw)
		}
		*p = v
	case *string:
		*p = raw
	case *model.Mode:
		*p = model.Mode(strings.ToLower(trimmed))
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	*c = next
	return nil
}

// Entry is a key and its formatted value.
type Entry struct {
	Key   string
	Value string
}

// Entries returns every key with its current value, in schema order.
func (c *Config) Entries() []Entry {
	out := make([]Entry, 0, len(Fields))
	for _, f := range Fields {
		v, _ := c.Get(f.Key)
		out = append(out, Entry{Key: f.Key, Value: fmt.Sprint(v)})
	}
	return out
}
