package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	cmdpkg "github.com/snipstash/snip/pkg/cmd"

	"github.com/snipstash/snip/internal/state"
)

func NewCmdList(s *state.State) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the indexed snippets.",
		Long: heredoc.Doc(`
			Print every snippet in the catalog with its preview, ordered by
			identifier.

			Example:
			  snip ls
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := cmdpkg.SnapshotNow(s)
			if err != nil {
				return err
			}

			for _, entry := range snap.Entries() {
				fmt.Printf("%-24s %s\n", entry.Identifier, entry.Preview)
			}

			if verbose {
				stats := s.Index.Stats()
				fmt.Printf("\n%d snippets, index generation %d\n", snap.Len(), stats.Generation)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print index statistics after the listing.")

	return cmd
}
