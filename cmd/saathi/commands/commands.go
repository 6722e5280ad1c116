package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"porter-saathi/config"
)

func newCommandsCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List example voice commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			kb, err := loadKnowledge(cfg)
			if err != nil {
				return err
			}
			for _, c := range kb.Commands() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", c)
			}
			return nil
		},
	}
}
