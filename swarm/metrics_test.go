package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordsInOrder(t *testing.T) {
	h := newHistory()
	h.record(Metric{Tick: 1, AvgBattery: 50})
	h.record(Metric{Tick: 2, AvgBattery: 55})

	all := h.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].Tick)
	assert.Equal(t, 2, all[1].Tick)
}

func TestHistoryLatest(t *testing.T) {
	h := newHistory()
	_, ok := h.Latest()
	assert.False(t, ok)

	h.record(Metric{Tick: 1})
	h.record(Metric{Tick: 2})

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, latest.Tick)
}
