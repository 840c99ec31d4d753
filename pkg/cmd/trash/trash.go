package trash

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/state"
)

func NewCmdTrash(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"trash", "remove"},
		Short:   "Move a snippet to the trash.",
		Long: heredoc.Doc(`
			Move a snippet file into the recoverable trash location inside
			the snippet directory. Nothing is permanently deleted; use
			"snip restore" to bring a snippet back.

			Example:
			  snip rm greeting
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if !force {
				ok, err := confirmTrash(name)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			target, err := s.Handler.Trash(name)
			if err != nil {
				switch {
				case errors.Is(err, handler.ErrNotFound):
					return fmt.Errorf("snippet %q does not exist", name)
				case errors.Is(err, handler.ErrTrash):
					return fmt.Errorf("could not move snippet %q to trash: %v", name, err)
				}
				return err
			}

			fmt.Printf("Moved snippet to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	return cmd
}

func confirmTrash(name string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("refusing to trash without confirmation; use --force")
	}

	input := confirmation.New(
		fmt.Sprintf("Move snippet %q to trash?", name),
		confirmation.Undecided,
	)
	return input.RunPrompt()
}
