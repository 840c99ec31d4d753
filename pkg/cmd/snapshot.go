// Package cmd holds helpers shared by the CLI subcommands.
package cmd

import (
	"context"
	"time"

	"github.com/snipstash/snip/internal/index"
	"github.com/snipstash/snip/internal/state"
)

// SnapshotNow waits for the initial (or any in-flight) rescan to settle and
// returns the published snapshot. One-shot commands call this because the
// coordinator indexes in the background and never blocks requesters.
func SnapshotNow(s *state.State) (*index.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Index.WaitIdle(ctx); err != nil {
		return nil, err
	}
	return s.Index.Snapshot(), nil
}
