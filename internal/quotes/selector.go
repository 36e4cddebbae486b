package quotes

import (
	"errors"
	"math/rand"
)

// ErrNoQuotes is returned by Next when the selector holds no quotes.
var ErrNoQuotes = errors.New("no quotes to choose from")

// Selector picks quotes uniformly at random. With repeat-avoidance on it
// tracks the quotes already returned and only picks among the rest until
// every quote has been used, then starts a new cycle.
type Selector struct {
	quotes []string
	used   map[string]struct{}
	avoid  bool
	rng    *rand.Rand
}

// NewSelector returns a selector over list. The selector keeps its own copy
// of the list.
func NewSelector(list []string, avoidRepeats bool, rng *rand.Rand) *Selector {
	return &Selector{
		quotes: append([]string(nil), list...),
		used:   make(map[string]struct{}),
		avoid:  avoidRepeats,
		rng:    rng,
	}
}

// Next returns the next quote.
func (s *Selector) Next() (string, error) {
	if len(s.quotes) == 0 {
		return "", ErrNoQuotes
	}
	if !s.avoid {
		return s.quotes[s.rng.Intn(len(s.quotes))], nil
	}

	eligible := make([]string, 0, len(s.quotes))
	for _, q := range s.quotes {
		if _, seen := s.used[q]; !seen {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		clear(s.used)
		eligible = s.quotes
	}

	q := eligible[s.rng.Intn(len(eligible))]
	s.used[q] = struct{}{}
	return q, nil
}

// Add appends a quote to the selection pool. It becomes eligible at once.
func (s *Selector) Add(q string) {
	s.quotes = append(s.quotes, q)
}

// Quotes returns a copy of the pool in insertion order.
func (s *Selector) Quotes() []string {
	return append([]string(nil), s.quotes...)
}

// Used returns the quotes consumed in the current cycle, in pool order.
func (s *Selector) Used() []string {
	var out []string
	seen := make(map[string]bool, len(s.used))
	for _, q := range s.quotes {
		if _, ok := s.used[q]; ok && !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}

// SetAvoidRepeats switches repeat-avoidance. Turning it off forgets the
// current cycle.
func (s *Selector) SetAvoidRepeats(on bool) {
	if !on {
		clear(s.used)
	}
	s.avoid = on
}
