package cli

import (
	"github.com/spf13/cobra"

	"github.com/oggyb/noor-names/internal/catalog"
)

type browseOptions struct {
	gender string
	letter string
	order  string
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List names filtered by gender and initial letter",
		Long: `List the catalog filtered by gender and initial letter, sorted by popularity.

The letter filter is case-sensitive and matches the start of the English name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gender, err := catalog.ParseGenderFilter(opts.gender)
			if err != nil {
				return err
			}
			order, err := catalog.ParseDirection(opts.order)
			if err != nil {
				return err
			}
			cat, err := rootOpts.load(0)
			if err != nil {
				return err
			}
			names := cat.Browse(catalog.Query{Gender: gender, Letter: opts.letter, Order: order})
			return writeNames(cmd.OutOrStdout(), rootOpts.Format, names)
		},
	}

	cmd.Flags().StringVar(&opts.gender, "gender", catalog.GenderAll, "male|female|unisex|all")
	cmd.Flags().StringVar(&opts.letter, "letter", catalog.AllLetters, "initial letter of the English name")
	cmd.Flags().StringVar(&opts.order, "order", string(catalog.Descending), "popularity order (asc|desc)")

	return cmd
}
