package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// DefaultDensityDivisor makes roughly one cell in three alive at start
const DefaultDensityDivisor = 3

// Delta is the outcome of a single generation
type Delta struct {
	Births int
	Deaths int
}

// Net returns births minus deaths
func (d Delta) Net() int {
	return d.Births - d.Deaths
}

// NewRand returns a deterministic PCG source for the seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Initialize creates a rows x cols grid where each cell is alive with probability 1/divisor.
// Field.Reset is the same seeding applied to a field's current buffer.
func Initialize(rows, cols, divisor int, seed int64) (*Grid, int, error) {
	if divisor < 1 {
		return nil, 0, errors.Wrapf(ErrInvalidDensity, "[Initialize] divisor %d", divisor)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, 0, errors.Wrap(err, "[Initialize]")
	}
	return g, seedGrid(g, divisor, seed), nil
}

// seedGrid fills g from a PCG source for the seed value and returns the population
func seedGrid(g *Grid, divisor int, value int64) int {
	return g.Randomize(NewRand(value), divisor)
}

// Step writes the generation after cur into next and returns its births and deaths.
// Neighbor counts are only ever read from cur.
func Step(cur, next *Grid, r rules.Rules) (Delta, error) {
	if !cur.sameShape(next) {
		return Delta{}, errors.Wrap(ErrInvalidDimensions, "[Step] buffer shape differs from grid")
	}
	return step(cur, next, r), nil
}

func step(cur, next *Grid, r rules.Rules) Delta {
	var d Delta
	for row := range cur.rows {
		for col := range cur.cols {
			alive := cur.cells[row][col]
			nextAlive := r.Apply(cur.CountLiveNeighbors(row, col), alive)
			switch {
			case alive && !nextAlive:
				d.Deaths++
			case !alive && nextAlive:
				d.Births++
			}
			next.cells[row][col] = nextAlive
		}
	}
	return d
}

// Advance returns the next generation of g as a new grid, leaving g untouched
func Advance(g *Grid, r rules.Rules) (*Grid, Delta) {
	next := newGrid(g.rows, g.cols)
	d := step(g, next, r)
	return next, d
}

// FieldConfig is the immutable configuration of a Field
type FieldConfig struct {
	Rows           int
	Cols           int
	DensityDivisor int
	Rules          rules.Rules
}

// Validate checks dimensions, density and thresholds
func (c FieldConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[FieldConfig.Validate] %dx%d", c.Rows, c.Cols)
	}
	if c.DensityDivisor < 1 {
		return errors.Wrapf(ErrInvalidDensity, "[FieldConfig.Validate] divisor %d", c.DensityDivisor)
	}
	return c.Rules.Validate()
}

// Field owns the current generation and the buffer the next one is computed into
type Field struct {
	config FieldConfig
	cur    *Grid
	next   *Grid
}

// NewField creates an all-dead field
func NewField(config FieldConfig) (*Field, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewField]")
	}
	return &Field{
		config: config,
		cur:    newGrid(config.Rows, config.Cols),
		next:   newGrid(config.Rows, config.Cols),
	}, nil
}

// Reset randomizes the current generation from value and returns the population
func (f *Field) Reset(value int64) int {
	return seedGrid(f.cur, f.config.DensityDivisor, value)
}

// Load replaces the current generation with a copy of g
func (f *Field) Load(g *Grid) error {
	if g == nil {
		return errors.Wrap(ErrInvalidDimensions, "[Load] nil grid")
	}
	if !f.cur.sameShape(g) {
		return errors.Wrapf(ErrInvalidDimensions, "[Load] got %dx%d, field is %dx%d",
			g.Rows(), g.Cols(), f.config.Rows, f.config.Cols)
	}
	for r := range g.rows {
		copy(f.cur.cells[r], g.cells[r])
	}
	return nil
}

// Grid returns the current generation. Callers must not modify it.
func (f *Field) Grid() *Grid {
	return f.cur
}

// Population returns the number of live cells in the current generation
func (f *Field) Population() int {
	return f.cur.Population()
}

// Advance computes the next generation and swaps it in
func (f *Field) Advance() Delta {
	d := step(f.cur, f.next, f.config.Rules)
	f.cur, f.next = f.next, f.cur
	return d
}
