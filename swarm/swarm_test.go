package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wecswarm/internal/config"
)

func testConfig() config.Swarm {
	cfg := config.DefaultSwarm()
	cfg.PopulationSize = 20
	cfg.Width = 50
	cfg.Height = 50
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PopulationSize = -1
	_, err := New(cfg)
	require.Error(t, err)
}

func TestNewRejectsUnknownKind(t *testing.T) {
	cfg := testConfig()
	cfg.Kind = "not-a-kind"
	_, err := New(cfg)
	require.Error(t, err)
}

func TestTickProducesOneMetricPerCall(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	assert.Equal(t, 5, s.TickCount())
	assert.Len(t, s.Metrics(), 5)
}

func TestCumulativeLoadIsMonotonic(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	s.Run(10)
	metrics := s.Metrics()
	require.Len(t, metrics, 10)

	prev := -1.0
	for _, m := range metrics {
		assert.GreaterOrEqual(t, m.CumulativeLoad, prev)
		prev = m.CumulativeLoad
	}
}

func TestSameSeedProducesIdenticalMetricSeries(t *testing.T) {
	cfg := testConfig()

	s1, err := New(cfg)
	require.NoError(t, err)
	s2, err := New(cfg)
	require.NoError(t, err)

	s1.Run(15)
	s2.Run(15)

	assert.Equal(t, s1.Metrics(), s2.Metrics())
}

func TestSameSeedProducesIdenticalInitialLayout(t *testing.T) {
	cfg := testConfig()

	s1, err := New(cfg)
	require.NoError(t, err)
	s2, err := New(cfg)
	require.NoError(t, err)

	a1 := s1.Agents()
	a2 := s2.Agents()
	require.Len(t, a1, len(a2))
	for i := range a1 {
		assert.Equal(t, a1[i].Position(), a2[i].Position())
		assert.Equal(t, a1[i].Direction(), a2[i].Direction())
	}
}

func TestDifferentSeedsDivergeMetrics(t *testing.T) {
	cfg1 := testConfig()
	cfg2 := testConfig()
	cfg2.Seed = cfg1.Seed + 1

	s1, err := New(cfg1)
	require.NoError(t, err)
	s2, err := New(cfg2)
	require.NoError(t, err)

	s1.Run(5)
	s2.Run(5)

	assert.NotEqual(t, s1.Metrics(), s2.Metrics())
}

func TestStaticSwarmAgentsNeverMove(t *testing.T) {
	cfg := testConfig()
	cfg.Kind = config.KindStatic

	s, err := New(cfg)
	require.NoError(t, err)

	before := make(map[int]struct{ x, y float64 })
	for _, a := range s.Agents() {
		p := a.Position()
		before[a.ID] = struct{ x, y float64 }{p.X, p.Y}
	}

	s.Run(20)

	for _, a := range s.Agents() {
		p := a.Position()
		b := before[a.ID]
		assert.Equal(t, b.x, p.X)
		assert.Equal(t, b.y, p.Y)
	}
}

func TestAvgBatteryStaysWithinBounds(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	s.Run(30)
	for _, m := range s.Metrics() {
		assert.GreaterOrEqual(t, m.AvgBattery, 0.0)
		assert.LessOrEqual(t, m.AvgBattery, 100.0)
	}
}
