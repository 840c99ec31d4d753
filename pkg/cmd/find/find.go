package find

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	cmdpkg "github.com/snipstash/snip/pkg/cmd"

	"github.com/snipstash/snip/internal/fzf"
	"github.com/snipstash/snip/internal/state"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "find [query]",
		Short: "Pick a snippet interactively.",
		Long: heredoc.Doc(`
			Open a fuzzy finder over the snippet catalog with a preview of
			each file. The selected snippet is copied to the clipboard, or
			opened in the editor with --edit.

			Example:
			  snip find sig
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			snap, err := cmdpkg.SnapshotNow(s)
			if err != nil {
				return err
			}

			finder := fzf.NewFuzzyFinder(s.Handler, "Snippets")
			name, err := finder.Find(snap, query)
			if err != nil {
				if errors.Is(err, fzf.ErrNoSelection) {
					fmt.Println("No snippet selected")
					return nil
				}
				return err
			}

			if edit {
				return s.Editor.Open(s.Handler.Path(name))
			}

			data, err := os.ReadFile(s.Handler.Path(name))
			if err != nil {
				return fmt.Errorf("read snippet %q: %w", name, err)
			}
			if err := clipboard.WriteAll(string(data)); err != nil {
				return fmt.Errorf("copy snippet %q: %w", name, err)
			}

			fmt.Printf("Copied snippet %q to clipboard\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the selection in the editor instead of copying it.")

	return cmd
}
