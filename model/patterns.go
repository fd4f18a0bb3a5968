package model

import "github.com/pkg/errors"

// ErrUnknownPattern is returned for a pattern name that is not in Patterns
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small set of cells, true meaning alive, indexed [row][col]
type Pattern [][]bool

var (
	// Block is the 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}

	// Blinker is the period-2 horizontal oscillator
	Blinker = Pattern{
		{true, true, true},
	}

	// Glider moves one cell diagonally down and right every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Stamp writes the pattern with its top-left corner at (row, col), wrapping around the edges
func (g *Grid) Stamp(p Pattern, row, col int) {
	for r, line := range p {
		for c, alive := range line {
			g.Set(row+r, col+c, alive)
		}
	}
}

// Patterns maps the names accepted in the config to their shapes
var Patterns = map[string]Pattern{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// PatternGrid returns an otherwise dead rows x cols grid with the named pattern in the middle
func PatternGrid(rows, cols int, name string) (*Grid, error) {
	p, ok := Patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternGrid] %q", name)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[PatternGrid]")
	}
	g.Stamp(p, (rows-len(p))/2, (cols-len(p[0]))/2)
	return g, nil
}
