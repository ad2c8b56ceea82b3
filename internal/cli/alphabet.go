package cli

import "github.com/spf13/cobra"

// NewAlphabetCommand creates the alphabet command.
func NewAlphabetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the initial letters present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.load(0)
			if err != nil {
				return err
			}
			return writeLetters(cmd.OutOrStdout(), rootOpts.Format, cat.Alphabet())
		},
	}
}
