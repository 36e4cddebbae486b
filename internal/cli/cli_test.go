package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/quotebot/internal/config"
	"github.com/rcliao/quotebot/internal/quotes"
)

type paths struct {
	config, quotes, history string
}

func tempPaths(t *testing.T) paths {
	t.Helper()
	dir := t.TempDir()
	return paths{
		config:  filepath.Join(dir, "config.json"),
		quotes:  filepath.Join(dir, "quotes.json"),
		history: filepath.Join(dir, "history.db"),
	}
}

func execute(t *testing.T, p paths, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append([]string{
		"--config", p.config,
		"--quotes", p.quotes,
		"--history", p.history,
	}, args...))
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestConfigSetPersists(t *testing.T) {
	p := tempPaths(t)

	out := execute(t, p, "config", "set", "burst_count", "9")
	assert.JSONEq(t, `{"burst_count": 9}`, out)

	cfg, err := config.Load(p.config)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.BurstCount)
}

func TestConfigShowListsEveryKey(t *testing.T) {
	p := tempPaths(t)

	out := execute(t, p, "config", "show")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(config.Fields))
	assert.Equal(t, "message_prefix: >>> ", lines[0])
	assert.Equal(t, "test_mode: normal", lines[7])
}

func TestAddAppendsToQuoteFile(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, quotes.Save(p.quotes, []string{"one"}))

	out := execute(t, p, "add", "  two", "words  ")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "two words", got["added"])
	assert.EqualValues(t, 2, got["total"])

	list, err := quotes.Load(p.quotes)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two words"}, list)
}

func TestQuotePrintsDistinctQuotes(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, quotes.Save(p.quotes, []string{"a", "b", "c"}))

	out := execute(t, p, "quote", "--count", "3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{"a", "b", "c"}, lines)
}

func TestHistoryEmpty(t *testing.T) {
	p := tempPaths(t)

	out := execute(t, p, "history", "--limit", "5")
	assert.Equal(t, "null", strings.TrimSpace(out))

	_, err := os.Stat(p.history)
	assert.NoError(t, err)
}

func TestAppendQuoteLeavesMalformedFile(t *testing.T) {
	p := tempPaths(t)
	broken := []byte(`["mine 1", "mine 2",`)
	require.NoError(t, os.WriteFile(p.quotes, broken, 0o644))

	_, _, err := appendQuote(p.quotes, "new")
	assert.ErrorIs(t, err, quotes.ErrMalformed)

	raw, err := os.ReadFile(p.quotes)
	require.NoError(t, err)
	assert.Equal(t, broken, raw)
}

func TestAppendQuoteEmptyFileStartsFromBuiltins(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, os.WriteFile(p.quotes, []byte("[]"), 0o644))

	q, total, err := appendQuote(p.quotes, " new ")
	require.NoError(t, err)
	assert.Equal(t, "new", q)
	assert.Equal(t, len(quotes.Builtin())+1, total)
}
