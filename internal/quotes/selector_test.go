package quotes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestSelector_ExhaustsBeforeRepeating(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}
	s := NewSelector(list, true, newRand())

	seen := map[string]bool{}
	for i := 0; i < len(list); i++ {
		q, err := s.Next()
		require.NoError(t, err)
		assert.False(t, seen[q], "quote %q repeated before exhaustion", q)
		seen[q] = true
	}
	assert.ElementsMatch(t, list, s.Used())

	// The cycle is complete: the next pick starts a fresh one.
	q, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{q}, s.Used())
}

func TestSelector_UsedIsSubsetAcrossCycles(t *testing.T) {
	list := []string{"a", "b", "c"}
	s := NewSelector(list, true, newRand())
	for i := 0; i < 20; i++ {
		_, err := s.Next()
		require.NoError(t, err)
		used := s.Used()
		assert.Subset(t, list, used)
		assert.Equal(t, i%len(list)+1, len(used))
	}
}

func TestSelector_WithoutAvoidance(t *testing.T) {
	s := NewSelector([]string{"x", "y"}, false, newRand())
	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		q, err := s.Next()
		require.NoError(t, err)
		counts[q]++
	}
	assert.Empty(t, s.Used())
	assert.Greater(t, counts["x"], 0)
	assert.Greater(t, counts["y"], 0)
}

func TestSelector_Add(t *testing.T) {
	s := NewSelector([]string{"a"}, true, newRand())
	q, _ := s.Next()
	assert.Equal(t, "a", q)

	s.Add("b")
	q, _ = s.Next()
	assert.Equal(t, "b", q)
	assert.Equal(t, []string{"a", "b"}, s.Quotes())
}

func TestSelector_Empty(t *testing.T) {
	s := NewSelector(nil, true, newRand())
	_, err := s.Next()
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestSelector_DisableForgetsCycle(t *testing.T) {
	s := NewSelector([]string{"a", "b"}, true, newRand())
	_, _ = s.Next()
	s.SetAvoidRepeats(false)
	assert.Empty(t, s.Used())
}
