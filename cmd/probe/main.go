// Command probe fetches one metrics snapshot and prints what the dashboard
// would plot. Useful for checking an API endpoint without the TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/h0rv/bpmdash/internal/api"
	"github.com/h0rv/bpmdash/internal/auth"
	"github.com/h0rv/bpmdash/internal/config"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var source metrics.Source = metrics.SampleSource{}
	if cfg.API.Endpoint != "" {
		token, err := auth.GetToken(cfg.API.TokenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		client, err := api.New(cfg.API.Endpoint, token)
		if err != nil {
			log.Fatal(err)
		}
		source = client
		fmt.Printf("Endpoint: %s\n\n", cfg.API.Endpoint)
	} else {
		fmt.Printf("Endpoint: none (sample data)\n\n")
	}

	snap, err := source.Fetch(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	s := store.New(nil)
	s.SetSnapshot(snap)

	summary, err := s.Summary()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Requests: %d total, %d open, %d PRCs completed, %.1fh avg cycle\n\n",
		summary.TotalRequests, summary.OpenRequests, summary.CompletedPRCs, summary.AvgCycleTimeHours)

	fmt.Printf("Parts (%d):\n", len(snap.Parts))
	for _, p := range s.Parts() {
		fmt.Printf("  %s: %s (%v)\n", p.PartNumber, p.Description, p.Value)
	}

	fmt.Printf("\nLocations (%d):\n", len(snap.Locations))
	for _, l := range s.Locations() {
		fmt.Printf("  %s: %s (%v)\n", l.LocationCode, l.LocationName, l.Value)
	}

	fmt.Printf("\nDefects (%d):\n", len(snap.Defects))
	for _, d := range s.Defects() {
		fmt.Printf("  %s: %s (%v, %s)\n", d.DefectCode, d.DefectName, d.Value, d.Severity)
	}

	rows := s.LocationRows("")
	fmt.Printf("\nLocation paths (%d):\n", len(rows))
	for _, row := range rows {
		leaf := row.Leaf()
		fmt.Printf("  %s / %s / %s / %s / %s  -> %s\n",
			row.Levels[0].Code, row.Levels[1].Code, row.Levels[2].Code, row.Levels[3].Code, row.Levels[4].Code, leaf.Name)
	}
}
