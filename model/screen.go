package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrQuit is returned by WaitForQuit when the user asks to stop
var ErrQuit = errors.New("quit requested")

var (
	boardStyle = tcell.StyleDefault
	liveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	statStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// ScreenRenderer draws frames on a full-screen tcell terminal
type ScreenRenderer struct {
	screen tcell.Screen
	once   sync.Once
}

// NewScreenRenderer takes over the controlling terminal
func NewScreenRenderer() (*ScreenRenderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return NewScreenRendererWith(s)
}

// NewScreenRendererWith initialises and uses the given screen
func NewScreenRendererWith(s tcell.Screen) (*ScreenRenderer, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRendererWith] failed to init screen")
	}
	s.HideCursor()
	s.SetStyle(boardStyle)
	s.Clear()
	return &ScreenRenderer{screen: s}, nil
}

// Render draws the board, the statistics and the status line
func (r *ScreenRenderer) Render(f Frame) error {
	s := r.screen
	s.Clear()

	g := f.Grid
	rule := strings.Repeat(string(ruleChar), g.Cols()+2)
	r.drawString(1, 0, rule, boardStyle)
	for row := range g.Rows() {
		y := row + 1
		s.SetContent(1, y, borderChar, nil, boardStyle)
		for col := range g.Cols() {
			if g.cells[row][col] {
				s.SetContent(col+2, y, liveCell, nil, liveStyle)
			} else {
				s.SetContent(col+2, y, deadCell, nil, boardStyle)
			}
		}
		s.SetContent(g.Cols()+2, y, borderChar, nil, boardStyle)
	}
	r.drawString(1, g.Rows()+1, rule, boardStyle)

	lines := strings.Split(strings.TrimRight(
		fmt.Sprintf(statsFormat, f.Round, f.Stats.Population, f.Stats.TotalDeaths, f.Stats.TotalBirths),
		"\n"), "\n")
	for i, line := range lines {
		r.drawString(0, g.Rows()+2+i, line, statStyle)
	}
	if f.Status != "" {
		r.drawString(0, g.Rows()+2+len(lines), fmt.Sprintf("%19s   (q to quit)", f.Status), statStyle)
	}

	s.Show()
	return nil
}

func (r *ScreenRenderer) drawString(x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// WaitForQuit blocks until q, Esc or Ctrl+C is pressed or the screen is closed
func (r *ScreenRenderer) WaitForQuit() error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal, it is safe to call more than once
func (r *ScreenRenderer) Close() error {
	r.once.Do(r.screen.Fini)
	return nil
}
