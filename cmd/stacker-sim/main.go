// Command stacker-sim plays the game headless with an autoplayer and reports timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/stacker/config"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The wall-clock limit for the run.")
	frameTime := flag.Duration("dt", time.Second/60, "The simulated time of one frame.")
	placements := flag.Int64("placements", 1000, "Stop after this many placements, 0 for no limit.")
	patience := flag.Duration("patience", 3*time.Second, "Simulated time the autoplayer waits for alignment.")

	settings, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("stacker-sim: %v", err)
	}
	cfg, err := settings.GameConfig()
	if err != nil {
		config.Exitf("stacker-sim: %v", err)
	}

	game, err := stacker.New(cfg)
	if err != nil {
		config.Exitf("stacker-sim: %v", err)
	}
	scheduler := engine.NewGameScheduler(game)
	player := NewAutoplayer(scheduler, patience.Seconds())

	log.Printf("Running simulation for up to %s (seed %d)...\n", *duration, cfg.Seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report := simulate(ctx, scheduler, player, frameTime.Seconds(), *placements)
	report.Duration = *duration
	report.FrameTime = *frameTime
	report.Config = cfg
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stacker Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// simulate steps the scheduler with a fixed delta time until ctx is done or the placement
// limit is reached.
func simulate(ctx context.Context, scheduler *engine.Scheduler, player *Autoplayer, dt float64, limit int64) *Report {
	report := &Report{
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	game := scheduler.Game()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if limit > 0 && game.Stats().Placements >= limit {
				break Loop
			}

			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Game = game.Stats()
	report.Level = game.Level()
	report.Speed = game.Speed()
	report.Aligned = player.Aligned
	report.Forced = player.Forced
	report.Scheduler = scheduler.GetStats()
	report.Frames = report.Scheduler.Frames
	return report
}
