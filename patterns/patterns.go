// Package patterns holds the named seed lists for classic Game of Life
// structures and a generator for random seeds.
package patterns

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-gol/model"
)

// Random is the pseudo-pattern name that selects a random seed
const Random = "random"

var library = map[string]model.Seed{
	// still life
	"init_beehive": {{X: 4, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 3}},
	// period 2
	"init_blinker": {{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 5, Y: 4}},
	"init_glider":  {{X: 7, Y: 8}, {X: 8, Y: 9}, {X: 9, Y: 9}, {X: 9, Y: 8}, {X: 9, Y: 7}},
	"init_heavyweight_spaceship": {
		{X: 3, Y: 10}, {X: 2, Y: 9}, {X: 4, Y: 10}, {X: 5, Y: 10}, {X: 5, Y: 9}, {X: 5, Y: 8}, {X: 5, Y: 7},
		{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 4},
	},
	// period 15
	"init_penta_decathlon": {
		{X: 5, Y: 12}, {X: 5, Y: 11}, {X: 5, Y: 10}, {X: 5, Y: 9}, {X: 5, Y: 8}, {X: 5, Y: 7},
		{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 13},
	},
	"init_figure_eight": {
		{X: 3, Y: 4}, {X: 3, Y: 5}, {X: 3, Y: 6},
		{X: 4, Y: 4}, {X: 4, Y: 5}, {X: 4, Y: 6},
		{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6},
		{X: 6, Y: 7}, {X: 6, Y: 8}, {X: 6, Y: 9},
		{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 7, Y: 9},
		{X: 8, Y: 7}, {X: 8, Y: 8}, {X: 8, Y: 9},
	},
	"init_tee": {{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}},
}

// Names returns the sorted names of every pattern in the library
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named pattern
func Lookup(name string) (model.Seed, error) {
	seed, ok := library[name]
	if !ok {
		return nil, errors.Wrapf(model.ErrInvalidArgument, "[Lookup] unknown pattern: %q", name)
	}
	return append(model.Seed(nil), seed...), nil
}

// RandomName picks a pattern name uniformly at random
func RandomName(r *rand.Rand) string {
	names := Names()
	return names[r.Intn(len(names))]
}

// RandomSeed returns floor(density*boardSize²) coordinates drawn uniformly from the board
func RandomSeed(boardSize int, density float64) (model.Seed, error) {
	return RandomSeedFrom(rand.New(rand.NewSource(rand.Int63())), boardSize, density)
}

// RandomSeedFrom is RandomSeed with a caller-supplied source
func RandomSeedFrom(r *rand.Rand, boardSize int, density float64) (model.Seed, error) {
	if boardSize <= 0 {
		return nil, errors.Wrapf(model.ErrInvalidArgument, "[RandomSeed] board size must be positive, got %d", boardSize)
	}
	if density < 0 || density > 1 {
		return nil, errors.Wrapf(model.ErrInvalidArgument, "[RandomSeed] density must be in [0, 1], got %v", density)
	}

	numAgents := int(density * float64(boardSize*boardSize))
	seed := make(model.Seed, 0, numAgents)
	for n := 0; n < numAgents; n++ {
		seed = append(seed, model.Coord{X: r.Intn(boardSize), Y: r.Intn(boardSize)})
	}
	return seed, nil
}

// Resolve turns a pattern name into a seed for a board of the given size.
// An empty name picks a random named pattern and Random builds a random seed.
func Resolve(name string, boardSize int, density float64, r *rand.Rand) (string, model.Seed, error) {
	switch name {
	case "":
		name = RandomName(r)
	case Random:
		seed, err := RandomSeedFrom(r, boardSize, density)
		return name, seed, err
	}

	seed, err := Lookup(name)
	return name, seed, err
}
