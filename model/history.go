package model

// historySize is how many past generations are kept for cycle detection
const historySize = 3

// Status describes how the field has been evolving
type Status string

const (
	StatusActive   Status = "Active"
	StatusStagnant Status = "Stagnant"
	StatusExtinct  Status = "Extinct"
)

// History keeps the hashes of recent generations to spot still lifes and short cycles
type History struct {
	hashes []string
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{}
}

// Observe records g and returns its status relative to the generations seen before it
func (h *History) Observe(g *Grid) Status {
	hash := g.Hash()
	status := StatusActive
	switch {
	case g.Population() == 0:
		status = StatusExtinct
	case h.repeats(hash):
		status = StatusStagnant
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return status
}

// repeats checks for a still life or a cycle of period two or three
func (h *History) repeats(hash string) bool {
	n := len(h.hashes)
	for back := 1; back <= historySize && back <= n; back++ {
		if h.hashes[n-back] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
