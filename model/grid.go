package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned for grids with a non-positive side
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidDensity is returned for a density divisor below 1
	ErrInvalidDensity = errors.New("density divisor must be at least 1")
)

// Grid is a fixed-size toroidal board of cells, true meaning alive
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// wrap maps any coordinate onto the torus
func (g *Grid) wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive returns the state of a cell, wrapping out-of-range coordinates
func (g *Grid) Alive(row, col int) bool {
	row, col = g.wrap(row, col)
	return g.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false), wrapping out-of-range coordinates
func (g *Grid) Set(row, col int, alive bool) {
	row, col = g.wrap(row, col)
	g.cells[row][col] = alive
}

// CountLiveNeighbors counts the live cells among the eight wrapped neighbors of (row, col)
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[r][(col+dc+g.cols)%g.cols] {
				count++
			}
		}
	}
	return count
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Randomize sets each cell alive with probability 1/divisor and returns the population
func (g *Grid) Randomize(rng *rand.Rand, divisor int) int {
	count := 0
	for r := range g.rows {
		for c := range g.cols {
			alive := rng.IntN(divisor) == 0
			g.cells[r][c] = alive
			if alive {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := newGrid(g.rows, g.cols)
	for r := range g.rows {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Equal reports whether both grids have the same shape and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the cell states
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			row[c] = 0
			if g.cells[r][c] {
				row[c] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// sameShape reports whether two grids can be used as each other's buffer
func (g *Grid) sameShape(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}
