package swarm

import (
	"log/slog"
	"sync"

	"github.com/gammazero/deque"
)

// Metric is one tick's population-level summary (spec.md §4.8/§5: after
// every agent has stepped, the orchestrator records connections = the
// population-wide sum of each agent's neighbor count, and
// total_load = 100 * mean(load) across the population).
type Metric struct {
	Tick               int     `csv:"tick"`
	AvgBattery         float64 `csv:"avg_battery"`
	Connections        int     `csv:"connections"`
	TotalLoad          float64 `csv:"total_load"`
	CumulativeLoad     float64 `csv:"cumulative_load"`
	AvgEnergyHarvested float64 `csv:"avg_energy_harvested"`
}

// LogValue implements slog.LogValuer for structured logging.
func (m Metric) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", m.Tick),
		slog.Float64("avg_battery", m.AvgBattery),
		slog.Int("connections", m.Connections),
		slog.Float64("total_load", m.TotalLoad),
		slog.Float64("cumulative_load", m.CumulativeLoad),
		slog.Float64("avg_energy_harvested", m.AvgEnergyHarvested),
	)
}

// history is an append-only log of every tick's Metric, guarded for
// concurrent observation while Tick appends (spec.md §5 allows read-only
// observers between ticks). Unlike the teacher's bounded 100-sample
// convergence window, a full run's history is kept so it can be
// exported wholesale as a CSV.
type history struct {
	mu    sync.RWMutex
	deque *deque.Deque[Metric]
}

func newHistory() *history {
	return &history{deque: deque.New[Metric](64)}
}

func (h *history) record(m Metric) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deque.PushBack(m)
}

// All returns a copy of every recorded Metric, oldest first.
func (h *history) All() []Metric {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Metric, h.deque.Len())
	for i := range out {
		out[i] = h.deque.At(i)
	}
	return out
}

// Latest returns the most recently recorded Metric and whether one
// exists yet.
func (h *history) Latest() (Metric, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.deque.Len() == 0 {
		return Metric{}, false
	}
	return h.deque.Back(), true
}
