package search

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	cmdpkg "github.com/snipstash/snip/pkg/cmd"

	"github.com/snipstash/snip/internal/rank"
	"github.com/snipstash/snip/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank snippets against a query.",
		Long: heredoc.Doc(`
			Fuzzy-match the query against the snippet catalog and print the
			results in rank order. A query starting with "+" offers creating
			a new snippet from the text after the prefix.

			Examples:
			  snip search sig
			  snip search "+hello world"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			snap, err := cmdpkg.SnapshotNow(s)
			if err != nil {
				return err
			}

			results := rank.Rank(query, snap)
			if len(results) == 0 {
				fmt.Println("no matches")
				return nil
			}

			for _, res := range results {
				if res.Create {
					fmt.Printf("%-24s %s\n", res.Entry.Identifier, rank.CreateDisplayText)
					continue
				}
				fmt.Printf("%-24s %s\n", res.Entry.Identifier, res.Entry.Preview)
			}
			return nil
		},
	}

	return cmd
}
