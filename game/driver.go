package game

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrInterrupted is returned when the context is cancelled before the last round
var ErrInterrupted = errors.New("simulation interrupted")

// State is the lifecycle stage of a Driver
type State int

const (
	StateInit State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateRunning:
		return "RUNNING"
	case StateFinished:
		return "FINISHED"
	}
	return "UNKNOWN"
}

// Sleeper pauses between rounds, returning early with an error if ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Options configures a Driver
type Options struct {
	Rounds    int
	Seed      int64
	FrameRate time.Duration
	Sleep     Sleeper

	// Initial, when set, is loaded instead of a random field
	Initial *model.Grid
}

// Summary is what a finished or interrupted run reports
type Summary struct {
	Rounds int
	Stats  utils.Stats
	Status model.Status
}

// Driver advances a field once per round and emits every round to a renderer
type Driver struct {
	field    *model.Field
	renderer model.Renderer
	opts     Options

	state   State
	round   int
	stats   *utils.Stats
	history *model.History
	status  model.Status
}

// NewDriver returns a driver in the INIT state. Non-positive rounds fall back to utils.DefaultRounds.
func NewDriver(field *model.Field, renderer model.Renderer, opts Options) *Driver {
	if opts.Rounds <= 0 {
		opts.Rounds = utils.DefaultRounds
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	return &Driver{
		field:    field,
		renderer: renderer,
		opts:     opts,
		state:    StateInit,
		history:  model.NewHistory(),
	}
}

// State returns the current lifecycle stage
func (d *Driver) State() State {
	return d.state
}

// Rounds returns the number of rounds the driver will run
func (d *Driver) Rounds() int {
	return d.opts.Rounds
}

// Run initialises the field, runs every round and renders the final state
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	if d.state != StateInit {
		return d.summary(), errors.Errorf("[Run] driver already in state %s", d.state)
	}
	if err := d.setup(); err != nil {
		return d.summary(), err
	}

	d.state = StateRunning
	for d.round = 0; d.round < d.opts.Rounds; d.round++ {
		if err := ctx.Err(); err != nil {
			return d.summary(), errors.Wrapf(ErrInterrupted, "[Run] round %d", d.round)
		}
		if err := d.render(); err != nil {
			return d.summary(), err
		}
		if err := d.opts.Sleep(ctx, d.opts.FrameRate); err != nil {
			return d.summary(), errors.Wrapf(ErrInterrupted, "[Run] round %d", d.round)
		}

		delta := d.field.Advance()
		d.stats.Apply(delta.Births, delta.Deaths)
		d.status = d.history.Observe(d.field.Grid())
	}

	d.state = StateFinished
	if err := d.render(); err != nil {
		return d.summary(), err
	}
	return d.summary(), nil
}

func (d *Driver) setup() error {
	var population int
	if d.opts.Initial != nil {
		if err := d.field.Load(d.opts.Initial); err != nil {
			return errors.Wrap(err, "[setup]")
		}
		population = d.field.Population()
	} else {
		population = d.field.Reset(d.opts.Seed)
	}

	d.stats = utils.NewStats(population)
	d.history.Reset()
	d.status = d.history.Observe(d.field.Grid())
	return nil
}

func (d *Driver) render() error {
	err := d.renderer.Render(model.Frame{
		Grid:   d.field.Grid(),
		Stats:  *d.stats,
		Round:  d.round,
		Status: d.status,
	})
	return errors.Wrapf(err, "[render] round %d", d.round)
}

func (d *Driver) summary() Summary {
	s := Summary{Rounds: d.round, Status: d.status}
	if d.stats != nil {
		s.Stats = *d.stats
	}
	return s
}
