package initialize

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/snipstash/snip/internal/state"
)

func NewCmdInit(s *state.State) *cobra.Command {
	var (
		dir    string
		editor string
	)

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i", "initialize"},
		Short:   "Initialize the snippet directory and configuration",
		Long: heredoc.Doc(`
			This command writes the configuration file and creates the snippet
			directory if it does not exist yet.

			Running it again is safe: existing settings are kept unless
			overridden with flags.
		`),
		Example: heredoc.Doc(`
			snip init
			snip init --dir ~/snippets --editor vim
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, dir, editor)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory holding the snippet files")
	cmd.Flags().StringVar(&editor, "editor", "", "editor command used to open snippets")

	return cmd
}

func run(s *state.State, dir, editor string) error {
	if dir != "" {
		s.Config.SnippetsDir = dir
	}
	if editor != "" {
		s.Config.Editor = editor
	}

	if err := s.Config.Save(); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	if err := s.Config.EnsureSnippetsDir(); err != nil {
		return err
	}

	fmt.Printf("Snippets live in %s\n", s.Config.SnippetsDir)
	return nil
}
