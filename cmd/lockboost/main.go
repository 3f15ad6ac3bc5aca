// Command lockboost fits the lock-time multiplier curve, prints a report and
// exports the daily and weekly multiplier tables.
//
// Usage:
//
//	lockboost [flags]
//
// Examples:
//
//	lockboost
//	lockboost -chart curve.png -v
//	lockboost -preset months -no-files
//	lockboost -config lockboost.yaml -serve -addr :8080
//	lockboost -list-presets
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/internal/config"
	"github.com/cwbudde/algo-lockboost/internal/server"
	"github.com/cwbudde/algo-lockboost/pipeline"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "lockboost.yaml", "YAML config file (missing file uses defaults)")
	preset := flag.String("preset", "", "named anchor set, overrides the config")
	chart := flag.String("chart", "", "save the chart to this image file (png, svg, pdf)")
	noFiles := flag.Bool("no-files", false, "skip writing the daily and weekly files")
	verbose := flag.Bool("v", false, "print every daily value in the report")
	listPresets := flag.Bool("list-presets", false, "list available anchor presets")
	serve := flag.Bool("serve", false, "serve the result over HTTP after the run")
	addr := flag.String("addr", "", "HTTP listen address, overrides the config")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lockboost [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Fits the lock-time multiplier curve through the anchor points and\n")
		fmt.Fprintf(os.Stderr, "writes the daily (%s) and weekly tables.\n\n", pipeline.DefaultConfig().DailyPath)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lockboost -chart curve.png\n")
		fmt.Fprintf(os.Stderr, "  lockboost -preset months -no-files\n")
		fmt.Fprintf(os.Stderr, "  lockboost -serve -addr :8080\n")
		fmt.Fprintf(os.Stderr, "  lockboost -list-presets\n")
	}
	flag.Parse()

	if *listPresets {
		printPresets()
		return
	}

	app, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	if *preset != "" {
		app.Preset = *preset
		if err := app.ApplyPreset(); err != nil {
			log.Fatalf("[FATAL] preset: %v", err)
		}
	}

	if *chart != "" {
		app.Pipeline.ChartPath = *chart
	}

	if *noFiles {
		app.Pipeline.SkipFiles = true
	}

	if *addr != "" {
		app.HTTP.Addr = *addr
	}

	if err := app.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	res, runErr := pipeline.Run(app.Pipeline, pipeline.WithLogger(log.Default()))
	if res == nil {
		log.Fatalf("[FATAL] run: %v", runErr)
	}

	if err := pipeline.WriteReport(os.Stdout, res, *verbose); err != nil {
		log.Fatalf("[FATAL] report: %v", err)
	}

	printCheckpoints(res)

	if runErr != nil {
		log.Fatalf("[FATAL] run: %v", runErr)
	}

	if !*serve {
		return
	}

	srv, err := server.New(res, log.Default())
	if err != nil {
		log.Fatalf("[FATAL] server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, app.HTTP.Addr); err != nil {
		log.Fatalf("[FATAL] serve: %v", err)
	}
}

func printPresets() {
	for _, name := range anchor.PresetNames() {
		s, _ := anchor.Preset(name)
		lo, hi := s.Bounds()
		fmt.Printf("%s\t%d anchors, x in [%g, %g]\n", name, len(s), lo, hi)
	}
}

func printCheckpoints(r *pipeline.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nLock\tMultiplier\n----\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write table header: %v\n", err)
		return
	}

	for i := range r.Checkpoints.Len() {
		x, y := r.Checkpoints.At(i)
		if _, err := fmt.Fprintf(tw, "%g\t%.*f\n", x, r.Decimals, y); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write table row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush table: %v\n", err)
	}
}
