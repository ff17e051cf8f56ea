package swarm

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"wecswarm/agent"
	"wecswarm/field"
	"wecswarm/internal/config"
	"wecswarm/internal/randsrc"
	"wecswarm/space"
)

// Swarm owns one simulation run's field, spatial index and agent
// population, and drives them tick by tick (spec.md §5). It implements
// agent.Environment so agents can sense and move through it.
type Swarm struct {
	cfg config.Swarm

	mu      sync.RWMutex
	fld     *field.Field
	sp      *space.Space
	agents  []*agent.Agent
	byID    map[int]*agent.Agent
	tick    int
	cumLoad float64

	activation *randsrc.Stream
	history    *history
}

// Option configures a Swarm at construction, mirroring the teacher's
// functional-options pattern.
type Option func(*Swarm)

// New creates a swarm of cfg.PopulationSize agents of cfg.Kind,
// deterministically placed and seeded from cfg.Seed (spec.md §9).
func New(cfg config.Swarm, opts ...Option) (*Swarm, error) {
	if err := cfg.NormalizeAndValidate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	kind, err := agentKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	master := randsrc.NewMaster(cfg.Seed)
	fieldRNG := master.Stream(randsrc.StreamField)
	placementRNG := master.Stream(randsrc.StreamPlacement)
	activationRNG := master.Stream(randsrc.StreamActivation)

	s := &Swarm{
		cfg:        cfg,
		fld:        field.New(cfg.Width, cfg.Height, cfg.MaxPower, fieldRNG),
		sp:         space.New(float64(cfg.Width), float64(cfg.Height), cfg.Vision),
		byID:       make(map[int]*agent.Agent, cfg.PopulationSize),
		activation: activationRNG,
		history:    newHistory(),
	}

	agentCfg := config.AgentFromSwarm(cfg)
	for i := 0; i < cfg.PopulationSize; i++ {
		pos := r2.Vec{
			X: placementRNG.Float64() * float64(cfg.Width),
			Y: placementRNG.Float64() * float64(cfg.Height),
		}
		dir := randomUnitVector(placementRNG)

		a := agent.New(i, kind, agentCfg, agent.WithPosition(pos), agent.WithDirection(dir))
		s.agents = append(s.agents, a)
		s.byID[i] = a
		s.sp.Set(i, pos)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func agentKind(k config.AgentKind) (agent.Kind, error) {
	switch k {
	case config.KindDynamic:
		return agent.Dynamic, nil
	case config.KindStatic:
		return agent.Static, nil
	case config.KindGP:
		return agent.GP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAgentKind, k)
	}
}

func randomUnitVector(rng *randsrc.Stream) r2.Vec {
	theta := rng.Float64() * 2 * math.Pi
	return r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Tick advances the simulation by one step: every agent senses and
// moves, in an order shuffled from the activation sub-stream, the field
// perturbs, and one Metric is recorded (spec.md §5).
func (s *Swarm) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.activation.Perm(len(s.agents))
	for _, idx := range order {
		s.agents[idx].Step(s)
	}

	s.fld.Perturb()
	s.tick++

	m := s.summarize()
	s.cumLoad += m.TotalLoad
	m.Tick = s.tick
	m.CumulativeLoad = s.cumLoad
	s.history.record(m)
}

func (s *Swarm) summarize() Metric {
	if len(s.agents) == 0 {
		return Metric{}
	}

	var sumBattery, sumLoad, sumHarvested float64
	var connections int
	for _, a := range s.agents {
		sumBattery += a.Battery()
		sumLoad += a.Load()
		sumHarvested += a.EnergyHarvested()
		connections += int(a.NeighborsCount())
	}
	n := float64(len(s.agents))
	return Metric{
		AvgBattery:         sumBattery / n,
		Connections:        connections,
		TotalLoad:          100 * (sumLoad / n),
		AvgEnergyHarvested: sumHarvested / n,
	}
}

// Run advances the simulation by n ticks.
func (s *Swarm) Run(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// TickCount returns how many ticks have run.
func (s *Swarm) TickCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Agents returns the live population, for callers (tests, internal
// bookkeeping) that need the agents themselves rather than a point-in-time
// copy of their state. The *agent.Agent values are shared, not copied —
// their fields keep changing on later ticks. External observers wanting
// spec.md §6's fixed-in-time view should call AgentsSnapshot instead.
func (s *Swarm) Agents() []*agent.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*agent.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// AgentsSnapshot implements spec.md §6's Observation API:
// agents_snapshot() -> list of {position, direction, battery, speed,
// neighbors_count, wec_power}. Each agent.Snapshot is an immutable copy
// taken at the moment of the call, safe to hold onto across later ticks.
func (s *Swarm) AgentsSnapshot() []agent.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]agent.Snapshot, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.ToSnapshot()
	}
	return out
}

// FieldSnapshot returns a copy of the current field grid.
func (s *Swarm) FieldSnapshot() [][]float64 {
	return s.fld.Snapshot()
}

// Metrics returns every Metric recorded so far, oldest first.
func (s *Swarm) Metrics() []Metric {
	return s.history.All()
}

// LatestMetric returns the most recently recorded Metric, if any.
func (s *Swarm) LatestMetric() (Metric, bool) {
	return s.history.Latest()
}

// The agent.Environment implementation below lets *Swarm stand in for
// env in every Agent.Step call.

// FieldSample implements agent.Environment.
func (s *Swarm) FieldSample(pos r2.Vec) float64 {
	return s.fld.Sample(pos.X, pos.Y)
}

// Neighbors implements agent.Environment.
func (s *Swarm) Neighbors(selfID int, point r2.Vec, radius float64) []space.Neighbor {
	return s.sp.NeighborsWithin(point, radius)
}

// Reflect implements agent.Environment.
func (s *Swarm) Reflect(pos, dir r2.Vec, speed float64) (r2.Vec, r2.Vec) {
	return s.sp.Reflect(pos, dir, speed)
}

// SetPosition implements agent.Environment.
func (s *Swarm) SetPosition(id int, pos r2.Vec) {
	s.sp.Set(id, pos)
}

// AgentByID implements agent.Environment.
func (s *Swarm) AgentByID(id int) (*agent.Agent, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Zone implements agent.Environment.
func (s *Swarm) Zone() config.Zone {
	return s.cfg.Zone
}
