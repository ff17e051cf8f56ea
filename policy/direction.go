package policy

import "gonum.org/v1/gonum/spatial/r2"

// epsilon is the norm threshold below which a vector is treated as zero
// (spec.md §9: "before returning any direction, verify ||.|| > epsilon").
const epsilon = 1e-9

// emergencyBatteryThreshold is the battery level below which the greedy
// override always takes the charge-seeking step, ignoring crowding
// (spec.md §4.5 step 5).
const emergencyBatteryThreshold = 10.0

// NeighborInfo is one visible neighbor as seen by a direction policy: its
// position, its distance from the querying agent, and the field power at
// its position.
type NeighborInfo struct {
	ID       int
	Position r2.Vec
	Distance float64
	Power    float64
}

// Context is the querying agent's own state, the only self-information a
// direction policy needs.
type Context struct {
	Position   r2.Vec
	Direction  r2.Vec // current direction, returned as-is when there's nothing to react to
	Separation float64
	Battery    float64
	Vision     float64
}

// DirectionPolicy chooses a unit heading (or the zero vector) from
// neighbors, field samples and policy state (spec.md §4.5). Implemented
// by Greedy and GP.
type DirectionPolicy interface {
	Direction(ctx Context, neighbors []NeighborInfo) r2.Vec
}

// Greedy is the Dynamic agent's direction policy: move away from a crowd
// of close neighbors, or toward whichever visible neighbor sits on the
// most power, whichever applies first.
type Greedy struct{}

// Direction implements DirectionPolicy.
func (Greedy) Direction(ctx Context, neighbors []NeighborInfo) r2.Vec {
	if len(neighbors) == 0 {
		return ctx.Direction
	}

	if ctx.Battery >= emergencyBatteryThreshold {
		if dir, crowded := crowdAvoidance(ctx, neighbors); crowded {
			return dir
		}
	}

	return towardBestNeighbor(ctx, neighbors)
}

// crowdAvoidance returns the direction away from the centroid of
// neighbors closer than ctx.Separation, and whether any such neighbor
// exists at all.
func crowdAvoidance(ctx Context, neighbors []NeighborInfo) (r2.Vec, bool) {
	var sum r2.Vec
	found := false
	for _, n := range neighbors {
		if n.Distance < ctx.Separation {
			sum = r2.Add(sum, r2.Sub(n.Position, ctx.Position))
			found = true
		}
	}
	if !found {
		return r2.Vec{}, false
	}

	norm := r2.Norm(sum)
	if norm <= epsilon {
		return r2.Vec{}, true
	}
	return r2.Scale(-1/norm, sum), true
}

// towardBestNeighbor returns the unit direction toward the neighbor
// sitting on the highest field power, or the zero vector if that
// neighbor's position coincides with the agent's own (spec.md §4.5
// step 4: "target == self").
func towardBestNeighbor(ctx Context, neighbors []NeighborInfo) r2.Vec {
	best := neighbors[0]
	for _, n := range neighbors[1:] {
		if n.Power > best.Power {
			best = n
		}
	}

	delta := r2.Sub(best.Position, ctx.Position)
	norm := r2.Norm(delta)
	if norm <= epsilon {
		return r2.Vec{}
	}
	return r2.Scale(1/norm, delta)
}
