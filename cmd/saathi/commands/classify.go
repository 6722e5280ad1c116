package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"porter-saathi/internal/router"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <query>",
		Short: "Show which intent rule a query matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := router.New(newLogger(root))
			query := strings.Join(args, " ")
			out := rt.Classify(cmd.Context(), query)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "intent:  %s\n", out.Intent)
			if out.Intent == router.IntentUnknown {
				fmt.Fprintln(w, "rule:    none")
				return nil
			}
			fmt.Fprintf(w, "rule:    %d\n", out.Rule)
			fmt.Fprintf(w, "keyword: %q\n", out.Keyword)
			return nil
		},
	}
}
