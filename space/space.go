package space

import "gonum.org/v1/gonum/spatial/r2"

// Space is the bounded, non-toroidal rectangle [0,Width] x [0,Height]
// agents move within, plus the spatial index over their positions
// (spec.md §4.2). Space holds no reference to agents themselves, only
// the position/ID relation needed for neighbor queries.
type Space struct {
	width, height float64
	index         *Index
}

// New creates a Space of the given dimensions. bucketSize should be the
// swarm's vision radius (see NewIndex).
func New(width, height, bucketSize float64) *Space {
	return &Space{
		width:  width,
		height: height,
		index:  NewIndex(bucketSize),
	}
}

// Width returns the rectangle's x extent.
func (s *Space) Width() float64 { return s.width }

// Height returns the rectangle's y extent.
func (s *Space) Height() float64 { return s.height }

// Set records or updates agent id's position.
func (s *Space) Set(id int, pos r2.Vec) { s.index.Set(id, pos) }

// Remove drops agent id from the index.
func (s *Space) Remove(id int) { s.index.Remove(id) }

// Position returns agent id's last known position.
func (s *Space) Position(id int) (r2.Vec, bool) { return s.index.Position(id) }

// NeighborsWithin returns every agent (including the caller, if indexed
// at point) within radius of point.
func (s *Space) NeighborsWithin(point r2.Vec, radius float64) []Neighbor {
	return s.index.Within(point, radius)
}

// DifferenceVectors returns, for each neighbor, (neighbor.Position - point).
func DifferenceVectors(point r2.Vec, neighbors []Neighbor) []r2.Vec {
	out := make([]r2.Vec, len(neighbors))
	for i, n := range neighbors {
		out[i] = r2.Sub(n.Position, point)
	}
	return out
}

// Distances returns each neighbor's precomputed distance from the query
// point, in the same order as neighbors.
func Distances(neighbors []Neighbor) []float64 {
	out := make([]float64, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Distance
	}
	return out
}

// Reflect applies one tick of motion from pos with direction dir at the
// given speed, reflecting off whichever of the rectangle's edges the
// raw step would cross. Each axis is handled independently (a corner
// step may flip both), using a mirror reflection: overshooting an edge
// by delta lands delta back inside it, with that axis of the direction
// negated. The result is clamped into the rectangle as a final
// safeguard against a single reflection not being enough to land inside
// (an oversized speed step overshooting an edge by more than the
// rectangle's own extent on that axis) — making
// Reflect idempotent on an already-valid position (spec.md §7, §8).
func (s *Space) Reflect(pos, dir r2.Vec, speed float64) (r2.Vec, r2.Vec) {
	x, dx := reflectAxis(pos.X, dir.X, speed, s.width)
	y, dy := reflectAxis(pos.Y, dir.Y, speed, s.height)
	return r2.Vec{X: x, Y: y}, r2.Vec{X: dx, Y: dy}
}

// reflectAxis computes the reflected coordinate and direction component
// for one axis. A boundary crossing negates dirComponent exactly
// (preserving its magnitude) and mirrors the overshoot back inside.
func reflectAxis(pos, dirComponent, speed, bound float64) (newPos, newDir float64) {
	raw := pos + dirComponent*speed
	newDir = dirComponent

	switch {
	case raw < 0:
		raw = -raw
		newDir = -dirComponent
	case raw > bound:
		raw = 2*bound - raw
		newDir = -dirComponent
	}

	if raw < 0 {
		raw = 0
	}
	if raw > bound {
		raw = bound
	}
	return raw, newDir
}
