package new

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/state"
)

var readClipboard = clipboard.ReadAll

func NewCmdNew(s *state.State) *cobra.Command {
	var paste bool
	var edit bool

	cmd := &cobra.Command{
		Use:   "new <name> [text]",
		Short: "Create a new snippet.",
		Long: heredoc.Doc(`
			Create a snippet file in the snippet directory. With no text the
			file is opened in the configured editor so you can author it.

			Examples:
			  snip new greeting "Hello, world"
			  snip new standup --paste
			  snip new scratch
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := handler.ValidateName(name); err != nil {
				return err
			}

			content := strings.Join(args[1:], " ")
			if paste {
				if content != "" {
					return errors.New("cannot combine --paste with inline text")
				}
				text, err := readClipboard()
				if err != nil {
					return fmt.Errorf("read clipboard: %w", err)
				}
				content = text
			}

			path, err := s.Handler.Create(name, content)
			if err != nil {
				if errors.Is(err, handler.ErrNameConflict) {
					return fmt.Errorf("snippet %q already exists", name)
				}
				return err
			}

			fmt.Printf("Created snippet %s\n", path)

			// The watcher picks the new file up; the index catches up in
			// the background.
			if content == "" || edit {
				return s.Editor.Open(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&paste, "paste", "p", false, "Use the clipboard contents as the snippet text.")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the snippet in the editor after creating it.")

	return cmd
}
