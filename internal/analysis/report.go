// Package analysis turns raw swarm metrics into short, human-readable
// health summaries for CLI output. It never feeds back into simulation
// behavior — strictly an observability convenience.
package analysis

import "fmt"

// DescribeBatteryHealth bands the swarm's average battery level into a
// short description, the same banding idiom the teacher's
// describeSyncMode/describeBatchMode used for coherence levels.
func DescribeBatteryHealth(avgBattery float64) string {
	switch {
	case avgBattery < 20:
		return "Critical - swarm is starved for power"
	case avgBattery < 40:
		return "Low - harvesting is not keeping pace with load"
	case avgBattery < 60:
		return "Stable - holding near the speed/load law's balance point"
	case avgBattery < 80:
		return "Healthy - comfortable reserve"
	default:
		return "Full - swarm is over-provisioned for the field it's on"
	}
}

// RunSummary holds the start/end state of one simulation run, used to
// describe whether the swarm trended toward or away from healthy battery
// levels over the run.
type RunSummary struct {
	InitialAvgBattery float64
	FinalAvgBattery   float64
	Ticks             int
}

// Diagnose reports a one-line summary and, when the trend is negative,
// suggestions for parameters worth revisiting.
func Diagnose(s RunSummary) (summary string, suggestions []string) {
	delta := s.FinalAvgBattery - s.InitialAvgBattery

	switch {
	case delta >= 0:
		summary = fmt.Sprintf("[OK] avg battery %.1f -> %.1f over %d ticks", s.InitialAvgBattery, s.FinalAvgBattery, s.Ticks)
		return summary, nil
	case delta > -10:
		summary = fmt.Sprintf("[~] avg battery drifting down: %.1f -> %.1f over %d ticks", s.InitialAvgBattery, s.FinalAvgBattery, s.Ticks)
		suggestions = []string{
			"increase efficiency or reduce consume coefficient",
			"check the field's max_power for this run",
		}
	default:
		summary = fmt.Sprintf("[!!] avg battery collapsing: %.1f -> %.1f over %d ticks", s.InitialAvgBattery, s.FinalAvgBattery, s.Ticks)
		suggestions = []string{
			"reduce population_size so per-agent field coverage improves",
			"reduce max_speed (cubic in the consumption law)",
			"increase efficiency",
		}
	}

	return summary, suggestions
}
