// Package cli implements the sectionlist command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/sectionlist/internal/logging"
)

var version = "dev"

// SetVersion sets the version string.
func SetVersion(v string) {
	version = v
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "sectionlist",
		Short: "Inspect sectioned list layouts",
		Long: `sectionlist computes where every header, row and footer of a sectioned
list sits, from the heights declared in a TOML definition.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewCLI(verbose)
			if err != nil {
				return err
			}
			logging.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Logger().Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	root.AddCommand(
		newLookupCmd(),
		newLocateCmd(),
		newDumpCmd(),
		newFindCmd(),
		newViewCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sectionlist "+version)
		},
	}
}
