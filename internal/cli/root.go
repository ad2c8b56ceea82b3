// Package cli implements the offline "names" command: the catalog query
// engine over a YAML dataset, with no server, database or account.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/oggyb/noor-names/internal/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Catalog string // path to a catalog YAML file; empty uses the built-in dataset
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the names CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Browse and search the Islamic baby name catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "catalog YAML file (default: built-in dataset)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewTrendingCommand(opts))
	cmd.AddCommand(NewAlphabetCommand(opts))

	return cmd
}

// load reads the catalog named by --catalog. searchLimit 0 keeps the default cap.
func (o *RootOptions) load(searchLimit int) (*catalog.Catalog, error) {
	records, err := catalog.LoadFile(o.Catalog)
	if err != nil {
		return nil, err
	}
	return catalog.New(records, searchLimit), nil
}
