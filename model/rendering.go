package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	liveCell   = '*'
	deadCell   = ' '
	ruleChar   = '='
	borderChar = '|'

	// moves the cursor home and erases the screen
	clearScreen = "\033[H\033[J"

	statsFormat = "     Current Round = %9d    Current Alive = %9d\n" +
		"      Total Deaths = %9d     Total Births = %9d\n"
)

// Frame is everything a display needs to draw one round
type Frame struct {
	Grid   *Grid
	Stats  utils.Stats
	Round  int
	Status Status
}

// Renderer is the display collaborator the driver emits frames to
type Renderer interface {
	Render(f Frame) error
	Close() error
}

// TextRenderer draws bordered frames as plain text with ANSI screen clearing
type TextRenderer struct {
	out   io.Writer
	clear bool
}

// NewTextRenderer returns a renderer that clears the terminal before every frame
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out, clear: true}
}

// NewPlainRenderer returns a renderer that appends frames without clearing, for logs and pipes
func NewPlainRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// Render writes the frame in a single write so it replaces the previous one in place
func (r *TextRenderer) Render(f Frame) error {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	writeBoard(&b, f.Grid)
	fmt.Fprintf(&b, statsFormat, f.Round, f.Stats.Population, f.Stats.TotalDeaths, f.Stats.TotalBirths)

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Wrapf(err, "[TextRenderer.Render] round %d", f.Round)
	}
	return nil
}

// Close is a no-op, the writer is owned by the caller
func (r *TextRenderer) Close() error {
	return nil
}

// writeBoard draws the horizontal rules and the bordered rows of g
func writeBoard(b *strings.Builder, g *Grid) {
	rule := " " + strings.Repeat(string(ruleChar), g.Cols()+2) + "\n"
	b.WriteString(rule)
	for r := range g.Rows() {
		b.WriteByte(' ')
		b.WriteRune(borderChar)
		for c := range g.Cols() {
			if g.cells[r][c] {
				b.WriteRune(liveCell)
			} else {
				b.WriteRune(deadCell)
			}
		}
		b.WriteRune(borderChar)
		b.WriteByte('\n')
	}
	b.WriteString(rule)
}
