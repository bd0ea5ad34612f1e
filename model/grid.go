package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/toroid-gol/rules"
	"github.com/sheikhrachel/toroid-gol/utils"
)

const historySize = 5

var (
	// ErrInvalidArgument is returned for a non-positive board size or an unknown pattern name
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a coordinate lies outside [0, size)
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Coord is an (x, y) cell position
type Coord struct {
	X, Y int
}

// Seed is an ordered list of coordinates forced alive at construction
type Seed []Coord

// Grid is a size x size toroidal board.
//
// cur holds the live generation and next is scratch space written during
// NextGeneration; both are row-major with index x*size+y.
type Grid struct {
	size    int
	cur     []bool
	next    []bool
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a dead board of the given size and forces every seed coordinate alive
func NewGrid(size int, seed Seed) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewGrid] board size must be positive, got %d", size)
	}

	g := &Grid{
		size: size,
		cur:  make([]bool, size*size),
		next: make([]bool, size*size),
	}
	for _, c := range seed {
		if err := g.ForceAlive(c.X, c.Y); err != nil {
			return nil, errors.Wrap(err, "[NewGrid] invalid seed")
		}
	}
	return g, nil
}

// Size returns the width (and height) of the board
func (g *Grid) Size() int {
	return g.size
}

// Status returns 1 if the cell is alive and 0 otherwise.
//
// Each axis is wrapped at most once, so x and y must lie within one board
// width of [0, size).
func (g *Grid) Status(x, y int) int {
	if x < 0 {
		x += g.size
	}
	if y < 0 {
		y += g.size
	}
	if x >= g.size {
		x -= g.size
	}
	if y >= g.size {
		y -= g.size
	}

	if g.cur[x*g.size+y] {
		return 1
	}
	return 0
}

// ForceAlive marks a cell alive without wrapping the coordinates
func (g *Grid) ForceAlive(x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[ForceAlive] (%d, %d) outside board of size %d", x, y, g.size)
	}
	g.cur[x*g.size+y] = true
	return nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// CountNeighbors counts living cells among the eight toroidal neighbors of (x, y)
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for i := x - 1; i <= x+1; i++ {
		for j := y - 1; j <= y+1; j++ {
			count += g.Status(i, j)
		}
	}
	// The 3x3 block includes the cell itself
	return count - g.Status(x, y)
}

// computeRows writes next for rows [startRow, endRow) using only cur
func (g *Grid) computeRows(startRow, endRow int) {
	for x := startRow; x < endRow; x++ {
		for y := 0; y < g.size; y++ {
			idx := x*g.size + y
			g.next[idx] = rules.Next(g.cur[idx], g.CountNeighbors(x, y))
		}
	}
}

// swap makes next the live generation; the old generation becomes scratch space
func (g *Grid) swap() {
	g.cur, g.next = g.next, g.cur
}

// NextGeneration advances the board by one generation
func (g *Grid) NextGeneration() {
	g.computeRows(0, g.size)
	g.swap()
}

// NextGenerationParallel advances the board by one generation, splitting rows across workers
func (g *Grid) NextGenerationParallel(numWorkers int) error {
	if numWorkers <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "[NextGenerationParallel] worker count must be positive, got %d", numWorkers)
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			g.computeRows(startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[NextGenerationParallel] worker failed")
	}

	g.swap()
	return nil
}

// Advance calculates the next generation based on configuration
func (g *Grid) Advance(config utils.Config) error {
	if config.UseParallel {
		return g.NextGenerationParallel(runtime.NumCPU())
	}
	g.NextGeneration()
	return nil
}

// Snapshot returns a fresh size x size copy of the board, row x holding Status(x, y)
func (g *Grid) Snapshot() [][]int {
	rows := make([][]int, g.size)
	for x := 0; x < g.size; x++ {
		rows[x] = make([]int, g.size)
		for y := 0; y < g.size; y++ {
			rows[x][y] = g.Status(x, y)
		}
	}
	return rows
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cur {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for _, alive := range g.cur {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the board repeats one of the last three recorded states.
//
// Call it before UpdateHistory for the current generation.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}
