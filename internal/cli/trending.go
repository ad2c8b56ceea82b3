package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

// NewTrendingCommand creates the trending command.
func NewTrendingCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Pick a random selection of names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.load(0)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			names := cat.Trending(count, rand.New(rand.NewSource(seed)))
			return writeNames(cmd.OutOrStdout(), rootOpts.Format, names)
		},
	}

	cmd.Flags().IntVar(&count, "count", 8, "number of names")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	return cmd
}
