package noise

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_NeverFires(t *testing.T) {
	in := NewInjector(DefaultPatterns(), Chances{}, rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		assert.Equal(t, "hello", in.Apply("hello"))
	}
}

func TestApply_AllFire(t *testing.T) {
	p := DefaultPatterns()
	in := NewInjector(p, Chances{Caps: 1, SpamWord: 1, RepeatChars: 1}, rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		got := in.Apply("hello")

		var word string
		for _, w := range p.SpamWords {
			if strings.HasPrefix(got, w+" ") {
				word = w
			}
		}
		assert.NotEmpty(t, word, "no spam word prefix in %q", got)

		var tail string
		for _, r := range p.RepeatChars {
			if strings.HasSuffix(got, r) {
				tail = r
			}
		}
		assert.NotEmpty(t, tail, "no punctuation suffix in %q", got)

		body := strings.TrimSuffix(strings.TrimPrefix(got, word+" "), tail)
		assert.Equal(t, "HELLO", body)
	}
}

func TestApply_OnlyCaps(t *testing.T) {
	in := NewInjector(DefaultPatterns(), Chances{Caps: 1}, rand.New(rand.NewSource(7)))
	assert.Equal(t, ">>> QUIET WORDS", in.Apply(">>> quiet words"))
}

func TestApply_DrawsAreIndependent(t *testing.T) {
	in := NewInjector(DefaultPatterns(), Chances{Caps: 0.5, SpamWord: 0.5, RepeatChars: 0.5}, rand.New(rand.NewSource(3)))

	var caps, plain int
	for i := 0; i < 400; i++ {
		got := in.Apply("msg")
		if strings.Contains(got, "MSG") {
			caps++
		} else {
			plain++
		}
	}
	assert.Greater(t, caps, 100)
	assert.Greater(t, plain, 100)
}
