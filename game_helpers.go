package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-gol/model"
	"github.com/sheikhrachel/toroid-gol/patterns"
	"github.com/sheikhrachel/toroid-gol/utils"
)

const defaultConfigFile = "config.json"

// parseConfig loads the JSON config named by -config and applies any flags set on top of it
func parseConfig(args []string, stderr io.Writer) (utils.Config, error) {
	var (
		fs         = flag.NewFlagSet("go-gol", flag.ContinueOnError)
		configFile = fs.String("config", defaultConfigFile, "path to a JSON config file")
		defaults   = utils.DefaultConfig()
		boardSize  = fs.Int("board_size", defaults.BoardSize, "size of the game board")
		fps        = fs.Float64("fps", defaults.FPS, "frames per second of animation")
		duration   = fs.Float64("duration", defaults.Duration, "seconds the animation will run")
		initName   = fs.String("init_conditions", defaults.InitPattern,
			fmt.Sprintf("initial pattern, one of %v or %q (default: random named pattern)", patterns.Names(), patterns.Random))
		parallel = fs.Bool("parallel", defaults.UseParallel, "compute each generation on all CPUs")
	)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		// A missing default file is fine, an explicit one is not
		if isFlagSet(fs, "config") {
			return config, err
		}
		fmt.Fprintln(stderr, "Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "board_size":
			config.BoardSize = *boardSize
		case "fps":
			config.FPS = *fps
		case "duration":
			config.Duration = *duration
		case "init_conditions":
			config.InitPattern = *initName
		case "parallel":
			config.UseParallel = *parallel
		}
	})

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func isFlagSet(fs *flag.FlagSet, name string) (set bool) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (*model.Grid, string, *utils.Stats, error) {
	name, seed, err := patterns.Resolve(config.InitPattern, config.BoardSize, config.RandomDensity, rng)
	if err != nil {
		return nil, "", nil, errors.Wrap(err, "[initializeGame] failed to resolve pattern")
	}

	grid, err := model.NewGrid(config.BoardSize, seed)
	if err != nil {
		return nil, "", nil, errors.Wrapf(err, "[initializeGame] pattern %s does not fit the board", name)
	}

	return grid, name, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, name string, grid *model.Grid) {
	fmt.Fprintf(out, "Pattern: %s | Parallel: %v\n", name, config.UseParallel)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Frames: %d at %.1f fps\n",
		grid.Size(), grid.Size(), grid.CountLivingCells(), config.FrameCount(), config.FPS)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := utils.Density(livingCells, grid.Size())

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Compare against earlier generations before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	name string,
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Fprintf(out, "%s | Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		name, generation, livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation,
		time.Since(stats.StartTime).Seconds())
}
