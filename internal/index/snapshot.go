package index

import (
	"sort"

	"github.com/snipstash/snip/internal/snippet"
)

// Snapshot is a published, immutable view of the indexed snippets. Once a
// snapshot is handed out it never changes; readers on any goroutine may use
// it without locking.
type Snapshot struct {
	generation uint64
	entries    map[string]snippet.Entry
	order      []string
}

func newSnapshot(generation uint64, entries map[string]snippet.Entry) *Snapshot {
	order := make([]string, 0, len(entries))
	for id := range entries {
		order = append(order, id)
	}
	sort.Strings(order)

	return &Snapshot{
		generation: generation,
		entries:    entries,
		order:      order,
	}
}

// Generation reports the snapshot's position in the publish sequence. It
// increases monotonically across publishes.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// Len reports the number of indexed snippets.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Get looks up an entry by identifier.
func (s *Snapshot) Get(identifier string) (snippet.Entry, bool) {
	entry, ok := s.entries[identifier]
	return entry, ok
}

// Entries returns the indexed entries ordered by identifier.
func (s *Snapshot) Entries() []snippet.Entry {
	out := make([]snippet.Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
