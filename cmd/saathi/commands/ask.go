package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"porter-saathi/internal/assistant"
)

type askOptions struct {
	driverID string
	language string
}

func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Ask the assistant a question",
		Long: `Ask the assistant a question as a driver. Without a query argument, questions are
read line by line from stdin until EOF or "exit".`,
		Example: `  saathi ask "Aaj maine kitna kamaya?"
  saathi ask --driver driver456 "namaste"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return ask(cmd, a, opts, strings.Join(args, " "), out)
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					return nil
				}
				if line != "" {
					if err := ask(cmd, a, opts, line, out); err != nil {
						return err
					}
				}
				fmt.Fprint(out, "> ")
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&opts.driverID, "driver", "d", "driver123", "driver id to ask as")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "reply language (hi or en)")
	return cmd
}

func ask(cmd *cobra.Command, a *app, opts *askOptions, query string, out io.Writer) error {
	resp, err := a.uc.ProcessQuery(cmd.Context(), assistant.Request{
		DriverID: opts.driverID,
		Query:    query,
		Language: opts.language,
	})
	if err != nil {
		return fmt.Errorf("process query: %w", err)
	}
	printResponse(out, resp)
	return nil
}

func printResponse(out io.Writer, resp assistant.Response) {
	fmt.Fprintln(out, resp.Text)
	if len(resp.Suggestions) == 0 {
		return
	}

	fmt.Fprintln(out, "Suggestions:")
	for _, k := range sortedKeys(resp.Suggestions) {
		fmt.Fprintf(out, "  %s: %s\n", k, resp.Suggestions[k])
	}
}
