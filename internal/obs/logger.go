package obs

import (
	"log/slog"
	"os"
)

// New builds a text logger writing to stderr, the destination every
// other command-line tool in the pack uses for its own progress output.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Tick logs one tick's record as a "tick" message with the record under
// the "metric" key, tagged with the run
// label so concurrent CLI invocations' logs stay distinguishable. record
// is typically a swarm.Metric, which implements slog.LogValuer.
func Tick(logger *slog.Logger, runLabel string, every int, tick int, record slog.LogValuer) {
	if every <= 0 || tick%every != 0 {
		return
	}
	logger.Info("tick", "run", runLabel, "metric", record)
}
