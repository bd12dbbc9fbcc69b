package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the saved chart type of each dashboard chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			names := make([]string, 0, len(chartKeys))
			for name := range chartKeys {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preferences: %s\n\n", e.cfg.Storage.PreferencesPath)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHART\tKEY\tTYPE")
			for _, name := range names {
				key := chartKeys[name]
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, key, e.prefs.Load(key, domain.DefaultChartType))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "set <chart> <type>",
		Short:   "Save the chart type for a dashboard chart",
		Example: `  bpmdash prefs set defect pie`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := chartKeys[args[0]]
			if !ok {
				return fmt.Errorf("unknown chart %q (want one of: %s)", args[0], chartNames())
			}
			t, ok := domain.ParseChartType(args[1])
			if !ok {
				return fmt.Errorf("unknown chart type %q (want one of: bar, line, area, pie)", args[1])
			}

			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			e.prefs.Save(key, t)
			if got := e.prefs.Load(key, domain.DefaultChartType); got != t {
				return fmt.Errorf("failed to save preference to %s", e.cfg.Storage.PreferencesPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], t)
			return nil
		},
	})

	return cmd
}
