package quotes

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingUsesBuiltin(t *testing.T) {
	list, err := Load(filepath.Join(t.TempDir(), "quotes.json"))
	require.NoError(t, err)
	assert.Equal(t, Builtin(), list)
	assert.Len(t, list, len(builtin))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(`["one", "two"]`), 0o644))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, list)
}

func TestLoad_FallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"truncated", `["one", `, ErrMalformed},
		{"object", `{"quotes": []}`, ErrMalformed},
		{"numbers", `[1, 2]`, ErrMalformed},
		{"empty", `[]`, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "quotes.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			list, err := Load(path)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, Builtin(), list)
		})
	}
}

func TestSaveAppendsExactlyOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, Save(path, []string{"a", "b"}))

	q, ok := Normalize("  a brand new quote \n")
	require.True(t, ok)
	require.NoError(t, Save(path, []string{"a", "b", q}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, []string{"a", "b", "a brand new quote"}, got)
}

func TestNormalizeRejectsBlank(t *testing.T) {
	_, ok := Normalize("   \t ")
	assert.False(t, ok)
}

func TestBuiltinIsACopy(t *testing.T) {
	b := Builtin()
	b[0] = "changed"
	assert.NotEqual(t, "changed", Builtin()[0])
}
