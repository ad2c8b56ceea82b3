package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oggyb/noor-names/internal/catalog"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search names by English name, Arabic name or meaning",
		Long: `Search the catalog case-insensitively.

Names starting with the query rank first, then names containing it, then
matches on the Arabic name or meaning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.load(limit)
			if err != nil {
				return err
			}
			names := cat.Search(strings.Join(args, " "))
			return writeNames(cmd.OutOrStdout(), rootOpts.Format, names)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", catalog.DefaultSearchLimit, "maximum number of results")

	return cmd
}
