package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), config, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads path, using defaults when the file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Using default configuration (%s not found)\n", path)
			return utils.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}

// run plays the game to completion or until interrupted. Interruption is not an error.
func run(ctx context.Context, config utils.Config, args []string, out io.Writer) error {
	rounds := utils.ParseRounds(args, config.Rounds)
	if rounds <= 0 {
		rounds = utils.DefaultRounds
	}

	displayGameInfo(out, config, rounds)

	setup, err := initializeGame(config, out)
	if err != nil {
		return err
	}
	renderer := setup.renderer

	driver := game.NewDriver(setup.field, renderer, game.Options{
		Rounds:    rounds,
		Seed:      config.ResolveSeed(),
		FrameRate: time.Duration(config.FrameRate),
		Initial:   setup.initial,
	})

	var (
		summary game.Summary
		done    = make(chan struct{})
	)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(done)
		defer renderer.Close()

		var runErr error
		summary, runErr = driver.Run(ctx)
		return runErr
	})

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			return game.ErrInterrupted
		case <-done:
			return nil
		}
	})

	// The screen renderer owns the keyboard, so quitting is a key press there
	if screen, ok := renderer.(*model.ScreenRenderer); ok {
		eg.Go(screen.WaitForQuit)
	}

	err = eg.Wait()
	interrupted := errors.Is(err, game.ErrInterrupted) || errors.Is(err, model.ErrQuit)
	if err != nil && !interrupted {
		return err
	}

	displayFinalStats(out, summary, interrupted)
	return nil
}
