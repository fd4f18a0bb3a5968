package rules

import "github.com/pkg/errors"

// MaxNeighbors is the number of neighbors every cell has on a torus
const MaxNeighbors = 8

// ErrInvalidRules is returned when a threshold is out of range or inverted
var ErrInvalidRules = errors.New("invalid rule thresholds")

// Rules holds the inclusive birth and survival neighbor ranges
type Rules struct {
	MinSurvival int `json:"min_survival"`
	MaxSurvival int `json:"max_survival"`
	MinBirth    int `json:"min_birth"`
	MaxBirth    int `json:"max_birth"`
}

/*
Conway returns the classic thresholds.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
*/
func Conway() Rules {
	return Rules{
		MinSurvival: 2,
		MaxSurvival: 3,
		MinBirth:    3,
		MaxBirth:    3,
	}
}

// Validate checks that both ranges lie within [0,8] and are not inverted
func (r Rules) Validate() error {
	if err := checkRange(r.MinSurvival, r.MaxSurvival); err != nil {
		return errors.Wrapf(err, "[Validate] survival range [%d,%d]", r.MinSurvival, r.MaxSurvival)
	}
	if err := checkRange(r.MinBirth, r.MaxBirth); err != nil {
		return errors.Wrapf(err, "[Validate] birth range [%d,%d]", r.MinBirth, r.MaxBirth)
	}
	return nil
}

func checkRange(lo, hi int) error {
	if lo < 0 || hi > MaxNeighbors || lo > hi {
		return ErrInvalidRules
	}
	return nil
}

// Survives reports whether a live cell with the given neighbor count stays alive
func (r Rules) Survives(neighbors int) bool {
	return neighbors >= r.MinSurvival && neighbors <= r.MaxSurvival
}

// Born reports whether a dead cell with the given neighbor count comes alive
func (r Rules) Born(neighbors int) bool {
	return neighbors >= r.MinBirth && neighbors <= r.MaxBirth
}

// Apply returns the next state of a cell
func (r Rules) Apply(neighbors int, alive bool) bool {
	if alive {
		return r.Survives(neighbors)
	}
	return r.Born(neighbors)
}
