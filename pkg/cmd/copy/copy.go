package copy

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/state"
)

var writeClipboard = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy <name>",
		Aliases: []string{"cp"},
		Short:   "Copy a snippet's contents to the clipboard.",
		Long: heredoc.Doc(`
			Read the snippet file and place its full contents on the
			clipboard.

			Example:
			  snip copy greeting
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			data, err := os.ReadFile(s.Handler.Path(name))
			if err != nil {
				return fmt.Errorf("read snippet %q: %w", name, err)
			}

			if err := writeClipboard(string(data)); err != nil {
				return fmt.Errorf("copy snippet %q: %w", name, err)
			}

			fmt.Printf("Copied snippet %q to clipboard\n", name)
			return nil
		},
	}

	return cmd
}
