// Package snippet loads snippet files into their indexed in-memory form.
package snippet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// PreviewMaxLen is the maximum number of runes kept in an entry preview.
const PreviewMaxLen = 100

const ellipsis = "…"

// ErrRead signals that a snippet file could not be read. Scans treat it as
// local to the file: log and skip, never abort.
var ErrRead = errors.New("snippet: read failed")

// Entry is one indexed snippet. Entries are immutable once constructed and
// belong to the snapshot that holds them.
type Entry struct {
	Identifier  string
	DisplayText string
	Preview     string
}

// Identify derives a snippet identifier from a file path by stripping the
// directory and extension.
func Identify(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the file at path and produces its entry. Invalid UTF-8 bytes
// are replaced rather than treated as fatal.
func Load(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	id := Identify(path)
	text := strings.ToValidUTF8(string(data), string(unicode.ReplacementChar))

	return Entry{
		Identifier:  id,
		DisplayText: id,
		Preview:     Truncate(Normalize(text), PreviewMaxLen),
	}, nil
}

// Normalize collapses consecutive whitespace into single spaces and trims
// the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts text to at most max runes, appending an ellipsis when
// anything was removed.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + ellipsis
}
