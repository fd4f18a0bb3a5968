package model

import (
	"testing"

	"github.com/sheikhrachel/go-life/rules"
)

func TestHistoryStatus(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		rounds  int
		want    Status
	}{
		{"block is a still life", Block, 1, StatusStagnant},
		{"blinker cycles", Blinker, 2, StatusStagnant},
		{"glider keeps moving", Glider, 3, StatusActive},
		{"empty field", nil, 0, StatusExtinct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 10, 10)
			g.Stamp(tt.pattern, 4, 4)

			h := NewHistory()
			status := h.Observe(g)
			for range tt.rounds {
				g, _ = Advance(g, rules.Conway())
				status = h.Observe(g)
			}
			if status != tt.want {
				t.Fatalf("status = %s, want %s", status, tt.want)
			}
		})
	}
}

func TestHistoryFirstObservationIsActive(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Stamp(Block, 0, 0)
	h := NewHistory()
	if got := h.Observe(g); got != StatusActive {
		t.Fatalf("first observation = %s, want %s", got, StatusActive)
	}
	h.Reset()
	if got := h.Observe(g); got != StatusActive {
		t.Fatalf("after Reset = %s, want %s", got, StatusActive)
	}
}

func TestHistoryForgetsOlderGenerations(t *testing.T) {
	grids := make([]*Grid, historySize+1)
	for i := range grids {
		grids[i] = mustGrid(t, 4, 4)
		grids[i].Set(0, i, true)
	}

	h := NewHistory()
	for _, g := range grids {
		if got := h.Observe(g); got != StatusActive {
			t.Fatalf("distinct generation reported %s", got)
		}
	}
	if len(h.hashes) != historySize {
		t.Fatalf("kept %d hashes, want %d", len(h.hashes), historySize)
	}

	// the first grid has dropped out of the window
	if got := h.Observe(grids[0]); got != StatusActive {
		t.Fatalf("repeat older than the window reported %s", got)
	}
	if got := h.Observe(grids[0]); got != StatusStagnant {
		t.Fatalf("immediate repeat reported %s", got)
	}
}
