package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-gol/model"
	"github.com/sheikhrachel/toroid-gol/utils"
)

func main() {
	config, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renderer := model.NewTerminalRenderer()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err = runGame(config, rng, renderer, os.Stdout, sigChan, time.Sleep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// runGame renders config.FrameCount() generations, advancing the grid after each frame
func runGame(
	config utils.Config,
	rng *rand.Rand,
	renderer *model.TerminalRenderer,
	out io.Writer,
	sigChan <-chan os.Signal,
	sleep func(time.Duration),
) error {
	grid, name, stats, err := initializeGame(config, rng)
	if err != nil {
		return err
	}
	displayGameInfo(out, config, name, grid)

	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
		frames        = config.FrameCount()
	)

	for generation := 0; generation < frames; generation++ {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nShutting down gracefully...")
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		if config.ClearScreen {
			renderer.Clear()
		}

		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(out, name, generation, livingCells, density, status, stats)
		if err = renderer.Display(grid.Snapshot()); err != nil {
			return errors.Wrap(err, "[runGame] failed to render frame")
		}

		if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
			fmt.Fprintf(out, "\nBoard stagnant for %d generations, stopping early\n", stagnantCount)
			return nil
		}

		if err = grid.Advance(config); err != nil {
			return errors.Wrapf(err, "[runGame] failed to advance generation %d", generation)
		}

		sleep(config.FrameInterval())
	}

	fmt.Fprintf(out, "\nFinished %d generations | Avg Pop: %.1f | Peak: %d\n",
		frames, stats.AveragePopulation, stats.PeakPopulation)
	return nil
}
