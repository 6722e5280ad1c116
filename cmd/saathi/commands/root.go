package commands

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

// NewRootCmd builds the saathi command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "saathi",
		Short: "Porter Saathi - driver assistant from the terminal",
		Long: `saathi runs the Porter Saathi assistant in-process against the configured driver store.
Queries are classified and answered exactly as the HTTP API would answer them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newAskCmd(opts),
		newClassifyCmd(opts),
		newCommandsCmd(opts),
		newDriverCmd(opts),
	)
	return rootCmd
}
