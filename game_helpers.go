package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// gameSetup is everything the driver needs besides the round count
type gameSetup struct {
	field    *model.Field
	renderer model.Renderer
	// initial is nil unless the config names a starting pattern
	initial *model.Grid
}

// initializeGame builds the field, the optional starting pattern and the renderer selected by the config
func initializeGame(config utils.Config, out io.Writer) (gameSetup, error) {
	var (
		setup gameSetup
		err   error
	)

	setup.field, err = model.NewField(model.FieldConfig{
		Rows:           config.Rows,
		Cols:           config.Cols,
		DensityDivisor: config.DensityDivisor,
		Rules:          config.Rules,
	})
	if err != nil {
		return setup, errors.Wrap(err, "[initializeGame]")
	}

	if config.Pattern != "" {
		if setup.initial, err = model.PatternGrid(config.Rows, config.Cols, config.Pattern); err != nil {
			return setup, errors.Wrap(err, "[initializeGame]")
		}
	}

	switch config.Renderer {
	case utils.RendererScreen:
		if setup.renderer, err = model.NewScreenRenderer(); err != nil {
			return setup, errors.Wrap(err, "[initializeGame]")
		}
	case utils.RendererPlain:
		setup.renderer = model.NewPlainRenderer(out)
	default:
		setup.renderer = model.NewTextRenderer(out)
	}

	return setup, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, rounds int) {
	fmt.Fprintf(out, "Running Game of Life for %d rounds on a %dx%d field...\n", rounds, config.Rows, config.Cols)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayFinalStats reports how the run ended
func displayFinalStats(out io.Writer, summary game.Summary, interrupted bool) {
	if interrupted {
		fmt.Fprintln(out, "\nShutting down gracefully...")
	} else {
		fmt.Fprintln(out, "\nGAME FINISHED")
	}
	fmt.Fprintf(out, "Final stats: %d rounds in %.1f seconds | Status: %s\n",
		summary.Rounds, summary.Stats.Elapsed().Round(100*time.Millisecond).Seconds(), summary.Status)
	fmt.Fprintf(out, "Alive: %d | Deaths: %d | Births: %d | Avg Pop: %.1f\n",
		summary.Stats.Population, summary.Stats.TotalDeaths, summary.Stats.TotalBirths,
		summary.Stats.AveragePopulation)
}
