package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snipstash/snip/internal/state"
	"github.com/snipstash/snip/pkg/cmd/browse"
	"github.com/snipstash/snip/pkg/cmd/copy"
	"github.com/snipstash/snip/pkg/cmd/find"
	"github.com/snipstash/snip/pkg/cmd/initialize"
	"github.com/snipstash/snip/pkg/cmd/list"
	"github.com/snipstash/snip/pkg/cmd/new"
	"github.com/snipstash/snip/pkg/cmd/open"
	"github.com/snipstash/snip/pkg/cmd/search"
	"github.com/snipstash/snip/pkg/cmd/trash"
	"github.com/snipstash/snip/pkg/cmd/untrash"
)

var editorOverride string

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "snip",
		Short: "Keep a directory of text snippets searchable and one keystroke away.",
		Long: heredoc.Doc(`
			snip turns a directory of small text files into a searchable,
			rankable snippet catalog. The directory is watched for changes
			and the catalog rebuilt in the background.

			Run without arguments to open the interactive browser.
		`),
		Example: heredoc.Doc(`
			snip
			snip search sig
			snip new standup "Daily standup at 9:30"
		`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyEditorOverride(s)
		},
		RunE: browse.NewCmdBrowse(s).RunE,
	}

	cmd.PersistentFlags().
		StringVar(
			&editorOverride,
			"editor",
			"",
			"Editor command to use for this invocation.",
		)
	viper.BindPFlag("editor", cmd.PersistentFlags().Lookup("editor"))

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		list.NewCmdList(s),
		search.NewCmdSearch(s),
		new.NewCmdNew(s),
		copy.NewCmdCopy(s),
		open.NewCmdOpen(s),
		trash.NewCmdTrash(s),
		untrash.NewCmdUntrash(s),
		find.NewCmdFind(s),
		browse.NewCmdBrowse(s),
	)

	return cmd, nil
}

func applyEditorOverride(s *state.State) {
	if v := viper.GetString("editor"); v != "" {
		s.Config.Editor = v
		s.Editor.Command = v
	}
}
