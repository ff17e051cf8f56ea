package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"wecswarm/internal/config"
	"wecswarm/space"
)

// fakeEnv is a minimal Environment double: a flat field power, no
// neighbors by default, and reflection delegated to a real space.Space
// so boundary behavior stays faithful to production code.
type fakeEnv struct {
	power     float64
	neighbors []space.Neighbor
	sp        *space.Space
	registry  map[int]*Agent
	zone      config.Zone
}

func newFakeEnv(power float64) *fakeEnv {
	return &fakeEnv{
		power:    power,
		sp:       space.New(100, 100, 10),
		registry: map[int]*Agent{},
		zone:     config.Zone{MinX: 0, MinY: 0, MaxX: 25, MaxY: 25},
	}
}

func (e *fakeEnv) FieldSample(pos r2.Vec) float64 { return e.power }

func (e *fakeEnv) Neighbors(selfID int, point r2.Vec, radius float64) []space.Neighbor {
	return e.neighbors
}

func (e *fakeEnv) Reflect(pos, dir r2.Vec, speed float64) (r2.Vec, r2.Vec) {
	return e.sp.Reflect(pos, dir, speed)
}

func (e *fakeEnv) SetPosition(id int, pos r2.Vec) { e.sp.Set(id, pos) }

func (e *fakeEnv) AgentByID(id int) (*Agent, bool) {
	a, ok := e.registry[id]
	return a, ok
}

func (e *fakeEnv) Zone() config.Zone { return e.zone }

func testCfg() config.Agent {
	return config.Agent{
		MaxSpeed:       2.0,
		Vision:         10,
		MinSeparation:  5,
		Efficiency:     0.5,
		ConsumeCoeff:   0.1,
		InitialBattery: 50,
		InitialLoad:    0.2,
	}
}

func TestStaticAgentNeverMoves(t *testing.T) {
	env := newFakeEnv(0.8)
	a := New(1, Static, testCfg(), WithPosition(r2.Vec{X: 5, Y: 5}), WithDirection(r2.Vec{X: 1, Y: 0}))

	for i := 0; i < 100; i++ {
		a.Step(env)
	}

	assert.Equal(t, r2.Vec{X: 5, Y: 5}, a.Position())
	assert.InDelta(t, 80.0, a.TotalEnergyHarvested(), 1e-9)
}

func TestStaticAgentAccumulatesEnergy(t *testing.T) {
	env := newFakeEnv(0.3)
	a := New(1, Static, testCfg(), WithPosition(r2.Vec{X: 1, Y: 1}))

	a.Step(env)
	assert.InDelta(t, 0.3, a.EnergyHarvested(), 1e-9)
	assert.InDelta(t, 0.15, a.Load(), 1e-9) // efficiency 0.5 * power 0.3
}

func TestDynamicAgentBatteryStaysInBounds(t *testing.T) {
	env := newFakeEnv(1.0)
	a := New(1, Dynamic, testCfg(), WithPosition(r2.Vec{X: 50, Y: 50}), WithDirection(r2.Vec{X: 1, Y: 0}))
	env.SetPosition(a.ID, a.Position())

	for i := 0; i < 200; i++ {
		a.Step(env)
		require.GreaterOrEqual(t, a.Battery(), 0.0)
		require.LessOrEqual(t, a.Battery(), 100.0)
	}
}

func TestDynamicAgentNoNeighborsKeepsDirection(t *testing.T) {
	env := newFakeEnv(0.5)
	a := New(1, Dynamic, testCfg(), WithPosition(r2.Vec{X: 50, Y: 50}), WithDirection(r2.Vec{X: 0, Y: 1}))
	env.SetPosition(a.ID, a.Position())

	a.Step(env)
	assert.Equal(t, r2.Vec{X: 0, Y: 1}, a.Direction())
}

func TestDynamicAgentLowBatteryStopsMoving(t *testing.T) {
	cfg := testCfg()
	cfg.InitialBattery = 2
	env := newFakeEnv(0.0)
	a := New(1, Dynamic, cfg, WithPosition(r2.Vec{X: 50, Y: 50}), WithDirection(r2.Vec{X: 1, Y: 0}))
	env.SetPosition(a.ID, a.Position())

	a.Step(env)
	assert.Equal(t, 0.0, a.Speed())
	assert.Equal(t, r2.Vec{X: 50, Y: 50}, a.Position())
}

func TestZoneCountingMatchesDefaultZone(t *testing.T) {
	env := newFakeEnv(0.0)
	a := New(1, Static, testCfg(), WithPosition(r2.Vec{X: 10, Y: 10}))

	for i := 0; i < 100; i++ {
		a.Step(env)
	}

	assert.Equal(t, int64(100), a.CountInZone())
	assert.Equal(t, int64(100), a.StepNumber())
}

func TestMeanEnergyHarvestedAveragesNeighbors(t *testing.T) {
	env := newFakeEnv(0.6)
	other := New(2, Static, testCfg())
	other.energyHarvested.Store(0.4)
	env.registry[2] = other
	env.neighbors = []space.Neighbor{{ID: 2, Position: r2.Vec{X: 1, Y: 0}, Distance: 1}}

	a := New(1, Dynamic, testCfg(), WithPosition(r2.Vec{X: 50, Y: 50}), WithDirection(r2.Vec{X: 1, Y: 0}))
	env.SetPosition(a.ID, a.Position())

	a.Step(env)
	assert.InDelta(t, 0.4, a.MeanEnergyHarvested(), 1e-9)
}

func TestDirectionIsUnitOrZero(t *testing.T) {
	env := newFakeEnv(0.7)
	env.neighbors = []space.Neighbor{
		{ID: 2, Position: r2.Vec{X: 55, Y: 50}, Distance: 5},
	}
	other := New(2, Static, testCfg())
	env.registry[2] = other

	a := New(1, GP, testCfg(), WithPosition(r2.Vec{X: 50, Y: 50}), WithDirection(r2.Vec{X: 1, Y: 0}))
	env.SetPosition(a.ID, a.Position())

	a.Step(env)
	norm := r2.Norm(a.Direction())
	if norm > 1e-9 {
		assert.InDelta(t, 1.0, norm, 1e-6)
	}
}
