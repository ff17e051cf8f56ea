package space

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Neighbor is one hit from a neighbor query: an agent ID, its position at
// the moment of the query, and its distance from the query point.
type Neighbor struct {
	ID       int
	Position r2.Vec
	Distance float64
}

type bucketKey struct {
	I, J int
}

// Index is a uniform-grid bucket spatial index over agent positions
// (spec.md §9's design note): cell (i, j) = (floor(y/bucketSize),
// floor(x/bucketSize)). Index has no notion of which agent is "self" —
// Within returns everyone in range, including the query point's own
// agent if one sits there; callers filter themselves out.
type Index struct {
	mu         sync.RWMutex
	bucketSize float64
	buckets    map[bucketKey][]int
	positions  map[int]r2.Vec
}

// NewIndex creates an empty index. bucketSize should typically be the
// swarm's vision radius, so that a radius-vision query touches only the
// surrounding 3×3 block; larger query radii still work, just touching
// more buckets.
func NewIndex(bucketSize float64) *Index {
	if bucketSize <= 0 {
		bucketSize = 1
	}
	return &Index{
		bucketSize: bucketSize,
		buckets:    make(map[bucketKey][]int),
		positions:  make(map[int]r2.Vec),
	}
}

func (idx *Index) keyFor(pos r2.Vec) bucketKey {
	return bucketKey{
		I: int(math.Floor(pos.Y / idx.bucketSize)),
		J: int(math.Floor(pos.X / idx.bucketSize)),
	}
}

// Set inserts or moves agent id to pos, updating its bucket if it moved
// out of its current one.
func (idx *Index) Set(id int, pos r2.Vec) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if old, ok := idx.positions[id]; ok {
		oldKey := idx.keyFor(old)
		newKey := idx.keyFor(pos)
		if oldKey != newKey {
			idx.removeFromBucket(oldKey, id)
			idx.buckets[newKey] = append(idx.buckets[newKey], id)
		}
	} else {
		idx.buckets[idx.keyFor(pos)] = append(idx.buckets[idx.keyFor(pos)], id)
	}
	idx.positions[id] = pos
}

// Remove drops id from the index entirely.
func (idx *Index) Remove(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	pos, ok := idx.positions[id]
	if !ok {
		return
	}
	idx.removeFromBucket(idx.keyFor(pos), id)
	delete(idx.positions, id)
}

func (idx *Index) removeFromBucket(key bucketKey, id int) {
	ids := idx.buckets[key]
	for i, existing := range ids {
		if existing == id {
			ids[i] = ids[len(ids)-1]
			idx.buckets[key] = ids[:len(ids)-1]
			break
		}
	}
}

// Position returns the last known position of id.
func (idx *Index) Position(id int) (r2.Vec, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	pos, ok := idx.positions[id]
	return pos, ok
}

// Within returns every indexed agent whose Euclidean distance to point is
// <= radius, scanning the block of buckets that could possibly contain
// such an agent.
func (idx *Index) Within(point r2.Vec, radius float64) []Neighbor {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	center := idx.keyFor(point)
	span := int(math.Ceil(radius / idx.bucketSize))

	var out []Neighbor
	for di := -span; di <= span; di++ {
		for dj := -span; dj <= span; dj++ {
			key := bucketKey{I: center.I + di, J: center.J + dj}
			for _, id := range idx.buckets[key] {
				pos := idx.positions[id]
				d := r2.Norm(r2.Sub(pos, point))
				if d <= radius {
					out = append(out, Neighbor{ID: id, Position: pos, Distance: d})
				}
			}
		}
	}
	return out
}
