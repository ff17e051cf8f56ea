package agent

import (
	"sync"

	"go.uber.org/atomic"
	"gonum.org/v1/gonum/spatial/r2"

	"wecswarm/internal/config"
	"wecswarm/space"
)

// Kind selects an agent's step rule (spec.md §4.6-4.7).
type Kind int

const (
	// Dynamic agents sense, recompute separation, choose a direction via
	// the Greedy policy, and move every tick.
	Dynamic Kind = iota
	// Static agents only sample the field and accumulate harvested
	// energy; they never move and never query neighbors.
	Static
	// GP agents are Dynamic agents whose direction policy is the
	// gaussian-process regressor instead of Greedy.
	GP
)

// Environment is the slice of the orchestrator an agent's Step needs:
// field sampling, neighbor queries and boundary reflection, plus looking
// up another agent's own bookkeeping (for mean-energy-harvested and
// neighbor-power computations). Implemented by *swarm.Swarm.
type Environment interface {
	FieldSample(pos r2.Vec) float64
	Neighbors(selfID int, point r2.Vec, radius float64) []space.Neighbor
	Reflect(pos, dir r2.Vec, speed float64) (r2.Vec, r2.Vec)
	SetPosition(id int, pos r2.Vec)
	AgentByID(id int) (*Agent, bool)
	Zone() config.Zone
}

// Agent holds one WEC's position, motion state and energy bookkeeping.
// Scalar fields that change every tick are atomic, following the
// teacher's convention of lock-free state on a per-agent basis; position
// and direction are a (r2.Vec, r2.Vec) pair guarded by a mutex since
// gonum's r2.Vec isn't atomic-sized.
type Agent struct {
	ID   int
	kind Kind

	maxSpeed      float64
	vision        float64
	minSeparation float64
	efficiency    float64
	consumeCoeff  float64

	posMu     sync.RWMutex
	position  r2.Vec
	direction r2.Vec

	battery                  atomic.Float64
	speed                    atomic.Float64
	separation               atomic.Float64
	load                     atomic.Float64
	wecPower                 atomic.Float64
	energyHarvested          atomic.Float64
	totalEnergyHarvested     atomic.Float64
	meanEnergyHarvestedNbors atomic.Float64

	stepNumber     atomic.Int64
	countInZone    atomic.Int64
	neighborsCount atomic.Int64
}

// Option configures an Agent at construction, following the teacher's
// functional-options constructor pattern.
type Option func(*Agent)

// WithPosition sets the agent's initial position.
func WithPosition(p r2.Vec) Option {
	return func(a *Agent) { a.position = p }
}

// WithDirection sets the agent's initial direction.
func WithDirection(d r2.Vec) Option {
	return func(a *Agent) { a.direction = d }
}

// New creates an agent of the given kind from cfg, applying opts. Callers
// (the swarm package) are responsible for drawing the initial position
// and direction from a seeded stream and passing them via WithPosition /
// WithDirection — agent itself holds no RNG state.
func New(id int, kind Kind, cfg config.Agent, opts ...Option) *Agent {
	a := &Agent{
		ID:            id,
		kind:          kind,
		maxSpeed:      cfg.MaxSpeed,
		vision:        cfg.Vision,
		minSeparation: cfg.MinSeparation,
		efficiency:    cfg.Efficiency,
		consumeCoeff:  cfg.ConsumeCoeff,
	}
	a.battery.Store(cfg.InitialBattery)
	a.load.Store(cfg.InitialLoad)
	a.separation.Store(cfg.MinSeparation)

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Kind returns the agent's variant.
func (a *Agent) Kind() Kind { return a.kind }

// Position returns the agent's current position.
func (a *Agent) Position() r2.Vec {
	a.posMu.RLock()
	defer a.posMu.RUnlock()
	return a.position
}

// Direction returns the agent's current heading (zero vector or unit
// norm, spec.md §3).
func (a *Agent) Direction() r2.Vec {
	a.posMu.RLock()
	defer a.posMu.RUnlock()
	return a.direction
}

func (a *Agent) setPositionDirection(pos, dir r2.Vec) {
	a.posMu.Lock()
	defer a.posMu.Unlock()
	a.position = pos
	a.direction = dir
}

// Battery returns the current battery level, 0-100.
func (a *Agent) Battery() float64 { return a.battery.Load() }

// Speed returns the speed computed on the agent's most recent step.
func (a *Agent) Speed() float64 { return a.speed.Load() }

// Separation returns the agent's current desired separation distance.
func (a *Agent) Separation() float64 { return a.separation.Load() }

// Load returns the agent's current power draw.
func (a *Agent) Load() float64 { return a.load.Load() }

// WECPower returns the net battery delta computed on the most recent
// step (recharge minus consumption).
func (a *Agent) WECPower() float64 { return a.wecPower.Load() }

// EnergyHarvested returns the field power sampled on the most recent
// step.
func (a *Agent) EnergyHarvested() float64 { return a.energyHarvested.Load() }

// TotalEnergyHarvested returns the running sum of every step's sampled
// field power.
func (a *Agent) TotalEnergyHarvested() float64 { return a.totalEnergyHarvested.Load() }

// MeanEnergyHarvested returns the mean EnergyHarvested() across the
// agent's visible neighbors on the most recent step (0 if it had none).
func (a *Agent) MeanEnergyHarvested() float64 { return a.meanEnergyHarvestedNbors.Load() }

// StepNumber returns how many times Step has run.
func (a *Agent) StepNumber() int64 { return a.stepNumber.Load() }

// CountInZone returns how many of those steps started with the agent
// inside the orchestrator's configured zone (checked before it moves).
func (a *Agent) CountInZone() int64 { return a.countInZone.Load() }

// NeighborsCount returns how many other agents this agent sensed on its
// most recent step (spec.md §6's agents_snapshot neighbors_count). Static
// agents never query neighbors and always report 0.
func (a *Agent) NeighborsCount() int64 { return a.neighborsCount.Load() }

// Vision returns the agent's neighbor-query radius.
func (a *Agent) Vision() float64 { return a.vision }

// Snapshot is an immutable copy of one agent's externally-observable
// state (spec.md §6's agents_snapshot: "list of {position, direction,
// battery, speed, neighbors_count, wec_power}"), safe to read after the
// orchestrator has moved on to later ticks.
type Snapshot struct {
	ID             int
	Position       r2.Vec
	Direction      r2.Vec
	Battery        float64
	Speed          float64
	NeighborsCount int64
	WECPower       float64
}

// ToSnapshot copies the agent's current state into a Snapshot.
func (a *Agent) ToSnapshot() Snapshot {
	return Snapshot{
		ID:             a.ID,
		Position:       a.Position(),
		Direction:      a.Direction(),
		Battery:        a.Battery(),
		Speed:          a.Speed(),
		NeighborsCount: a.NeighborsCount(),
		WECPower:       a.WECPower(),
	}
}

// Step advances the agent by one tick against env, dispatching to the
// step rule for its Kind (spec.md §4.6-4.7).
func (a *Agent) Step(env Environment) {
	a.stepNumber.Inc()

	pos := a.Position()
	if env.Zone().Contains(pos.X, pos.Y) {
		a.countInZone.Inc()
	}

	switch a.kind {
	case Static:
		a.stepStatic(env, pos)
	case GP:
		a.stepDynamic(env, pos, gpPolicy)
	default:
		a.stepDynamic(env, pos, greedyPolicy)
	}
}
