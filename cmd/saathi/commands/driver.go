package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/model"
)

func newDriverCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Inspect and edit driver records",
	}
	cmd.AddCommand(newDriverShowCmd(root), newDriverEarningsCmd(root))
	return cmd
}

func newDriverShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <driver-id>",
		Short: "Print a driver's profile and earnings ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.close()

			d, err := a.uc.GetDriver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDriver(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

type earningsOptions struct {
	date      string
	total     float64
	expenses  float64
	net       float64
	trips     int
	penalties map[string]string
	rewards   map[string]string
}

func newDriverEarningsCmd(root *rootOptions) *cobra.Command {
	opts := &earningsOptions{}

	cmd := &cobra.Command{
		Use:   "earnings <driver-id>",
		Short: "Record one day of earnings for a driver",
		Long: `Overwrite one ledger day. --date accepts YYYY-MM-DD, today or yesterday.
When --net is omitted it is derived as total - expenses. With the memory store the
change only lives for this invocation.`,
		Example: `  saathi driver earnings driver123 --date today --total 2500 --expenses 500 --trips 8 \
    --penalty penalty1="Late delivery by 30 minutes"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.close()

			input := assistant.SetEarningsInput{
				DriverID:       args[0],
				Day:            opts.date,
				TotalEarnings:  opts.total,
				Expenses:       opts.expenses,
				CompletedTrips: opts.trips,
				Penalties:      opts.penalties,
				Rewards:        opts.rewards,
			}
			if cmd.Flags().Changed("net") {
				net := opts.net
				input.NetEarnings = &net
			}

			out, err := a.uc.SetEarnings(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s\n", out.Date, args[0])
			printEarnings(cmd.OutOrStdout(), out.Date, out.Earnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "today", "ledger day")
	cmd.Flags().Float64Var(&opts.total, "total", 0, "total earnings")
	cmd.Flags().Float64Var(&opts.expenses, "expenses", 0, "expenses")
	cmd.Flags().Float64Var(&opts.net, "net", 0, "net earnings (default total - expenses)")
	cmd.Flags().IntVar(&opts.trips, "trips", 0, "completed trips")
	cmd.Flags().StringToStringVar(&opts.penalties, "penalty", nil, "penalty id=reason, repeatable")
	cmd.Flags().StringToStringVar(&opts.rewards, "reward", nil, "reward id=reason, repeatable")
	return cmd
}

func printDriver(w io.Writer, d model.Driver) {
	fmt.Fprintf(w, "%s  %s  %s  (lang %s)\n", d.ID, d.Name, d.Phone, d.LanguagePreference)
	if d.Vehicle.Number != "" {
		fmt.Fprintf(w, "vehicle: %s %s, insurance until %s\n", d.Vehicle.Type, d.Vehicle.Number, d.Vehicle.InsuranceExpiry)
	}
	if ec := d.EmergencyContact; ec != nil {
		fmt.Fprintf(w, "emergency contact: %s (%s) %s\n", ec.Name, ec.Relationship, ec.Phone)
	}

	days := make([]model.Date, 0, len(d.Earnings))
	for day := range d.Earnings {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].String() > days[j].String() })

	if len(days) == 0 {
		fmt.Fprintln(w, "no earnings recorded")
		return
	}
	for _, day := range days {
		printEarnings(w, day, d.Earnings[day])
	}
}

func printEarnings(w io.Writer, day model.Date, e model.DailyEarnings) {
	fmt.Fprintf(w, "%s  trips %d  total ₹%.2f  expenses ₹%.2f  net ₹%.2f\n",
		day, e.CompletedTrips, e.TotalEarnings, e.Expenses, e.NetEarnings)
	for _, id := range sortedKeys(e.Penalties) {
		fmt.Fprintf(w, "    penalty %s: %s\n", id, e.Penalties[id])
	}
	for _, id := range sortedKeys(e.Rewards) {
		fmt.Fprintf(w, "    reward %s: %s\n", id, e.Rewards[id])
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
