// Package noise holds the spam-pattern tables and mutates messages to look
// like spam for filter testing.
package noise

import (
	"math/rand"
	"strings"
)

// Patterns is the spam-pattern library.
type Patterns struct {
	SpamWords       []string
	RepeatChars     []string
	SimilarMessages []string
	FloodMessages   []string
}

// DefaultPatterns returns the built-in tables.
func DefaultPatterns() Patterns {
	return Patterns{
		SpamWords:   []string{"FREE", "CLICK HERE", "URGENT", "LIMITED TIME", "ACT NOW", "WINNER", "CONGRATULATIONS"},
		RepeatChars: []string{"!!!", "???", "...", "~~~", "***"},
		SimilarMessages: []string{
			"Check this out!",
			"Check this out!!",
			"CHECK THIS OUT!",
			"check this out",
			"Ch3ck th1s 0ut!",
		},
		FloodMessages: []string{
			"SPAM TEST 1",
			"SPAM TEST 2",
			"SPAM TEST 3",
			"TESTING FLOOD DETECTION",
			"RAPID MESSAGE TEST",
		},
	}
}

// Chances are the per-transformation probabilities, each in [0, 1].
type Chances struct {
	Caps        float64
	SpamWord    float64
	RepeatChars float64
}

// Injector applies noise transformations.
type Injector struct {
	patterns Patterns
	chances  Chances
	rng      *rand.Rand
}

// NewInjector creates an injector drawing from rng.
func NewInjector(p Patterns, c Chances, rng *rand.Rand) *Injector {
	return &Injector{patterns: p, chances: c, rng: rng}
}

// Apply runs three independent draws over msg: uppercase it, prepend a spam
// word, append a punctuation run. Any combination may fire.
func (in *Injector) Apply(msg string) string {
	if in.rng.Float64() < in.chances.Caps {
		msg = strings.ToUpper(msg)
	}
	if in.rng.Float64() < in.chances.SpamWord && len(in.patterns.SpamWords) > 0 {
		msg = in.Pick(in.patterns.SpamWords) + " " + msg
	}
	if in.rng.Float64() < in.chances.RepeatChars && len(in.patterns.RepeatChars) > 0 {
		msg += in.Pick(in.patterns.RepeatChars)
	}
	return msg
}

// Pick returns a uniformly random element of list, which must not be empty.
func (in *Injector) Pick(list []string) string {
	return list[in.rng.Intn(len(list))]
}

// Patterns returns the tables the injector draws from.
func (in *Injector) Patterns() Patterns {
	return in.patterns
}
