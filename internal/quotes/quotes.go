// Package quotes manages the quote list: the built-in set, the JSON quote
// file, and random selection with optional repeat-avoidance.
package quotes

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rcliao/quotebot/internal/jsonfile"
)

var (
	// ErrMalformed marks a quote file that exists but is not a JSON string array.
	ErrMalformed = errors.New("malformed quote file")
	// ErrEmpty marks a quote file holding no quotes.
	ErrEmpty = errors.New("empty quote file")
)

// Load reads the quote file at path. A missing file yields the built-in list
// and no error. A malformed or empty file yields the built-in list and an
// error wrapping ErrMalformed or ErrEmpty.
func Load(path string) ([]string, error) {
	var list []string
	err := jsonfile.Read(path, &list)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Builtin(), nil
	case err != nil:
		return Builtin(), fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	case len(list) == 0:
		return Builtin(), fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return list, nil
}

// Save rewrites the quote file with the full list.
func Save(path string, list []string) error {
	return jsonfile.Write(path, list)
}

// Normalize trims a quote typed by an operator. It returns false for input
// that is blank after trimming.
func Normalize(q string) (string, bool) {
	q = strings.TrimSpace(q)
	return q, q != ""
}
