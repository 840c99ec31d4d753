package untrash

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/state"
)

func NewCmdUntrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restore <name>",
		Aliases: []string{"untrash"},
		Short:   "Restore a snippet from the trash.",
		Long: heredoc.Doc(`
			Move a previously trashed snippet back into the snippet
			directory.

			Example:
			  snip restore greeting
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			target, err := s.Handler.Untrash(name)
			if err != nil {
				switch {
				case errors.Is(err, handler.ErrNotFound):
					return fmt.Errorf("snippet %q is not in the trash", name)
				case errors.Is(err, handler.ErrNameConflict):
					return fmt.Errorf("snippet %q already exists; not restoring over it", name)
				}
				return err
			}

			fmt.Printf("Restored snippet to %s\n", target)
			return nil
		},
	}

	return cmd
}
