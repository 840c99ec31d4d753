package browse

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/state"
	"github.com/snipstash/snip/internal/tui/snippets"
)

func NewCmdBrowse(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b", "ui"},
		Short:   "Browse snippets interactively",
		Long: heredoc.Doc(`
			This command opens the interactive snippet browser.

			Type to rank snippets against your query, tab to move between the
			query and the result list, and enter to copy the selected snippet.
			A query starting with "+" offers to create a new snippet from the
			text after the plus.
		`),
		Example: heredoc.Doc(`
			snip browse
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	return snippets.Run(s)
}
