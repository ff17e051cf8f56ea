package randsrc

import (
	"hash/fnv"
	"math/rand"
)

// Stream is one independent pseudo-random source. It is not safe for
// concurrent use — each tick's sequential agent activation and the
// orchestrator's own draws are the only callers, matching the
// single-threaded cooperative model of spec.md §5.
type Stream struct {
	r *rand.Rand
}

// New creates a Stream seeded deterministically from seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// NormFloat64 returns a sample from the standard normal distribution.
func (s *Stream) NormFloat64() float64 {
	return s.r.NormFloat64()
}

// Intn returns a pseudo-random int in [0, n).
func (s *Stream) Intn(n int) int {
	return s.r.Intn(n)
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Stream) Perm(n int) []int {
	return s.r.Perm(n)
}

// Master derives independently-seeded sub-streams from one orchestrator
// seed. Each named sub-stream is reproducible on its own: two Masters
// built from the same seed hand out byte-identical streams for the same
// names, in any order.
type Master struct {
	seed int64
}

// NewMaster creates a Master from the orchestrator's configured seed.
func NewMaster(seed int64) *Master {
	return &Master{seed: seed}
}

// Stream derives the named sub-stream. Distinct names never collide in
// practice (FNV-1a over the name, mixed with the master seed).
func (m *Master) Stream(name string) *Stream {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	derived := m.seed ^ int64(h.Sum64())
	return New(derived)
}

// Well-known sub-stream names used by swarm.New and swarm.Swarm.Tick.
const (
	StreamField      = "field-noise"
	StreamPlacement  = "agent-placement"
	StreamActivation = "tick-activation"
)
