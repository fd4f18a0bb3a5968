package game

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

type recordingRenderer struct {
	frames []model.Frame
	grids  []*model.Grid
	err    error
	closed bool
}

func (r *recordingRenderer) Render(f model.Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, f)
	r.grids = append(r.grids, f.Grid.Clone())
	return nil
}

func (r *recordingRenderer) Close() error {
	r.closed = true
	return nil
}

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func newField(t *testing.T, rows, cols int) *model.Field {
	t.Helper()
	f, err := model.NewField(model.FieldConfig{
		Rows:           rows,
		Cols:           cols,
		DensityDivisor: model.DefaultDensityDivisor,
		Rules:          rules.Conway(),
	})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return f
}

func TestRunRendersEveryRoundAndTheEnd(t *testing.T) {
	const rounds = 25
	r := &recordingRenderer{}
	d := NewDriver(newField(t, 30, 60), r, Options{Rounds: rounds, Seed: 3, Sleep: noSleep})
	if d.State() != StateInit {
		t.Fatalf("state = %s, want INIT", d.State())
	}

	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.State() != StateFinished {
		t.Fatalf("state = %s, want FINISHED", d.State())
	}
	if len(r.frames) != rounds+1 {
		t.Fatalf("rendered %d frames, want %d", len(r.frames), rounds+1)
	}
	for i, f := range r.frames {
		if f.Round != i {
			t.Fatalf("frame %d reports round %d", i, f.Round)
		}
	}
	if summary.Rounds != rounds {
		t.Fatalf("summary rounds = %d, want %d", summary.Rounds, rounds)
	}
	if r.closed {
		t.Fatal("driver must not close a renderer it does not own")
	}
}

func TestRunKeepsStatisticsConsistent(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(newField(t, 20, 20), r, Options{Rounds: 40, Seed: 8, Sleep: noSleep})
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	first := r.frames[0].Stats
	if first.TotalBirths != 0 || first.TotalDeaths != 0 {
		t.Fatalf("initial frame stats %+v, want zero births and deaths", first)
	}
	for i, f := range r.frames {
		if f.Stats.Population != r.grids[i].Population() {
			t.Fatalf("frame %d: population %d, grid holds %d", i, f.Stats.Population, r.grids[i].Population())
		}
		if f.Stats.Population != first.Population+f.Stats.TotalBirths-f.Stats.TotalDeaths {
			t.Fatalf("frame %d: population does not match births and deaths", i)
		}
		if i > 0 {
			prev := r.frames[i-1].Stats
			if f.Stats.TotalBirths < prev.TotalBirths || f.Stats.TotalDeaths < prev.TotalDeaths {
				t.Fatalf("frame %d: cumulative totals decreased", i)
			}
			next, _ := model.Advance(r.grids[i-1], rules.Conway())
			if !next.Equal(r.grids[i]) {
				t.Fatalf("frame %d is not the generation after frame %d", i, i-1)
			}
		}
	}
	if summary.Stats != r.frames[len(r.frames)-1].Stats {
		t.Fatal("summary stats differ from the final frame")
	}
}

func TestRunDefaultsRounds(t *testing.T) {
	for _, rounds := range []int{0, -5} {
		d := NewDriver(newField(t, 3, 3), &recordingRenderer{}, Options{Rounds: rounds})
		if d.Rounds() != utils.DefaultRounds {
			t.Fatalf("rounds %d became %d, want %d", rounds, d.Rounds(), utils.DefaultRounds)
		}
	}
}

func TestRunStillLifeIsStagnant(t *testing.T) {
	g, err := model.NewGrid(6, 6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Stamp(model.Block, 2, 2)

	r := &recordingRenderer{}
	d := NewDriver(newField(t, 6, 6), r, Options{Rounds: 3, Initial: g, Sleep: noSleep})
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Status != model.StatusStagnant {
		t.Fatalf("status = %s, want %s", summary.Status, model.StatusStagnant)
	}
	if summary.Stats.Population != 4 || summary.Stats.TotalBirths != 0 || summary.Stats.TotalDeaths != 0 {
		t.Fatalf("unexpected stats for a block: %+v", summary.Stats)
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &recordingRenderer{}
	calls := 0
	sleep := func(ctx context.Context, _ time.Duration) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return ctx.Err()
	}

	d := NewDriver(newField(t, 10, 10), r, Options{Rounds: 100, Seed: 1, Sleep: sleep})
	summary, err := d.Run(ctx)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
	if summary.Rounds != 2 {
		t.Fatalf("interrupted after %d rounds, want 2", summary.Rounds)
	}
	if d.State() != StateRunning {
		t.Fatalf("state = %s, want RUNNING", d.State())
	}
}

func TestRunRenderError(t *testing.T) {
	boom := errors.New("terminal gone")
	d := NewDriver(newField(t, 4, 4), &recordingRenderer{err: boom}, Options{Rounds: 5, Sleep: noSleep})
	if _, err := d.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestRunOnlyOnce(t *testing.T) {
	d := NewDriver(newField(t, 4, 4), &recordingRenderer{}, Options{Rounds: 1, Sleep: noSleep})
	if _, err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := d.Run(context.Background()); err == nil {
		t.Fatal("second Run should fail")
	}
}

func TestRunLoadRejectsMismatchedInitial(t *testing.T) {
	g, _ := model.NewGrid(2, 2)
	d := NewDriver(newField(t, 4, 4), &recordingRenderer{}, Options{Rounds: 1, Initial: g, Sleep: noSleep})
	if _, err := d.Run(context.Background()); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if err := Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
}
