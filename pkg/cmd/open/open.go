package open

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/state"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <name>",
		Aliases: []string{"open"},
		Short:   "Open a snippet in the external editor.",
		Long: heredoc.Doc(`
			Launch the configured editor on the snippet file. The index
			picks up any changes once the editor writes the file.

			Example:
			  snip edit greeting
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ok, err := s.Handler.Exists(name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("snippet %q does not exist", name)
			}

			return s.Editor.Open(s.Handler.Path(name))
		},
	}

	return cmd
}
