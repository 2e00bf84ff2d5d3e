// Command blockfall-stress plays random-input games on parallel workers for a
// fixed duration and prints a timing and memory report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/config"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	inputRate := flag.Float64("input-rate", 0.2, "Probability that a bot presses a key on a frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	runID := uuid.NewString()
	logger, closeLog, err := cfg.Logger("blockfall-stress", runID, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	logger.Println("Starting soak test...")

	report := &Report{
		RunID:          runID,
		Duration:       cfg.Duration,
		Workers:        cfg.Workers,
		Seed:           cfg.Seed,
		InputRate:      *inputRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Printf("Running %d workers for %s...", cfg.Workers, cfg.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	startTime := time.Now()
	results := make([]Result, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Workers {
		worker := &Worker{
			ID:           i,
			Seed:         cfg.Seed,
			FallInterval: cfg.FallInterval,
			InputRate:    *inputRate,
			Logger:       logger,
		}
		g.Go(func() error {
			results[i] = worker.Run(ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatalf("Soak test failed: %v", err)
	}

	report.TotalTime = time.Since(startTime)
	for _, r := range results {
		report.Result.Merge(r)
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Println("Soak test finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
