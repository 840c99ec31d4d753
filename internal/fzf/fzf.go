// Package fzf wraps the interactive fuzzy finder over the snippet catalog.
package fzf

import (
	"errors"
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/snipstash/snip/internal/cache"
	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/index"
	"github.com/snipstash/snip/internal/snippet"
)

// ErrNoSelection is returned when the user aborts the finder.
var ErrNoSelection = errors.New("fzf: no snippet selected")

// FuzzyFinder presents the catalog snapshot for interactive selection with
// a live preview of the snippet file.
type FuzzyFinder struct {
	handler *handler.FileHandler
	Header  string

	entries  []snippet.Entry
	previews *cache.Contents
}

func NewFuzzyFinder(h *handler.FileHandler, header string) *FuzzyFinder {
	return &FuzzyFinder{
		handler:  h,
		Header:   header,
		previews: cache.NewContents(64),
	}
}

// Find lets the user pick one entry from the snapshot and returns its
// identifier.
func (f *FuzzyFinder) Find(snap *index.Snapshot, query string) (string, error) {
	f.entries = snap.Entries()
	f.previews.Reset(snap.Generation())
	if len(f.entries) == 0 {
		return "", ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.entries, func(i int) string {
		return f.entries[i].DisplayText
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrNoSelection
		}
		return "", fmt.Errorf("fzf: %w", err)
	}

	return f.entries[idx].Identifier, nil
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	entry := f.entries[i]
	path := f.handler.Path(entry.Identifier)

	content, ok := f.previews.Get(path)
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "Error reading file"
		}
		f.previews.Put(path, data)
		content = data
	}

	out := termenv.String(entry.DisplayText).Bold().String()
	return out + "\n\n" + string(content)
}
