package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/export"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/h0rv/bpmdash/internal/store"
	"github.com/h0rv/bpmdash/internal/tui"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// chartKeys maps chart names used on the command line to preference keys.
var chartKeys = map[string]string{
	"parts":    prefs.KeyParts,
	"location": prefs.KeyLocation,
	"defect":   prefs.KeyDefect,
}

func chartNames() string {
	names := make([]string, 0, len(chartKeys))
	for name := range chartKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// newPanel builds the named chart panel and fills it from s.
func newPanel(name string, s *store.Store, ps prefs.Store) (tui.Panel, error) {
	switch name {
	case "parts":
		p := tui.NewPartsPanel(ps)
		p.SetData(s.Parts())
		return p, nil
	case "location":
		p := tui.NewLocationPanel(ps)
		p.SetData(s.Locations())
		return p, nil
	case "defect":
		p := tui.NewDefectPanel(ps)
		p.SetData(s.Defects())
		return p, nil
	}
	return nil, fmt.Errorf("unknown chart %q (want one of: %s)", name, chartNames())
}

func newExportCmd() *cobra.Command {
	var (
		chartFlag  string
		typeFlag   string
		outFlag    string
		formatFlag string
		widthFlag  int
		heightFlag int
		openFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a chart to an SVG, PNG, HTML or XLSX file",
		Long: `Export renders one dashboard chart to a file.

The chart type defaults to the one last selected in the dashboard. The format
is taken from the output file extension unless --format is given.`,
		Example: `  bpmdash export --chart defect --out defects.html --open
  bpmdash export --chart parts --type pie --out parts.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			format, err := export.FormatFromPath(outFlag)
			if formatFlag != "" {
				format, err = export.ParseFormat(formatFlag)
			}
			if err != nil {
				return err
			}

			source, err := e.source()
			if err != nil {
				return err
			}
			snap, err := source.Fetch(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch metrics: %w", err)
			}
			s := store.New(e.logger)
			s.SetSnapshot(snap)

			panel, err := newPanel(chartFlag, s, e.prefs)
			if err != nil {
				return err
			}

			kind := panel.ChartType()
			if typeFlag != "" {
				t, ok := domain.ParseChartType(typeFlag)
				if !ok {
					return fmt.Errorf("unknown chart type %q (want one of: bar, line, area, pie)", typeFlag)
				}
				kind = t
			}

			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFlag, err)
			}
			err = export.Write(f, format, panel.ChartAs(kind), export.Options{
				Title:      panel.Title(),
				Subtitle:   "Updated " + snap.FetchedAt.Format("2006-01-02 15:04"),
				ValueLabel: panel.ValueLabel(),
				Width:      widthFlag,
				Height:     heightFlag,
			})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(outFlag)
				return fmt.Errorf("failed to export %s chart: %w", chartFlag, err)
			}

			e.logger.Info("Exported chart",
				zap.String("chart", chartFlag),
				zap.String("type", string(kind)),
				zap.String("format", string(format)),
				zap.String("path", outFlag))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outFlag)

			if openFlag {
				if err := browser.OpenFile(outFlag); err != nil {
					return fmt.Errorf("failed to open %s: %w", outFlag, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chartFlag, "chart", "parts", "Chart to export: "+chartNames()+".")
	cmd.Flags().StringVar(&typeFlag, "type", "", "Chart type: bar, line, area or pie. Defaults to the saved preference.")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file.")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: svg, png, html or xlsx. Defaults to the file extension.")
	cmd.Flags().IntVar(&widthFlag, "width", export.DefaultWidth, "Image width in pixels.")
	cmd.Flags().IntVar(&heightFlag, "height", export.DefaultHeight, "Image height in pixels.")
	cmd.Flags().BoolVar(&openFlag, "open", false, "Open the exported file when done.")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
