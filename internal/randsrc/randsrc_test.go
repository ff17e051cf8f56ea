package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestMasterSubStreamsAreIndependent(t *testing.T) {
	m1 := NewMaster(7)
	m2 := NewMaster(7)

	field1 := m1.Stream(StreamField).Float64()
	field2 := m2.Stream(StreamField).Float64()
	assert.Equal(t, field1, field2, "same master seed must reproduce the same named stream")

	placement := m1.Stream(StreamPlacement)
	activation := m1.Stream(StreamActivation)
	assert.NotEqual(t, placement.Float64(), activation.Float64())
}

func TestMasterDifferentSeedsDiverge(t *testing.T) {
	m1 := NewMaster(1)
	m2 := NewMaster(2)
	assert.NotEqual(t, m1.Stream(StreamField).Float64(), m2.Stream(StreamField).Float64())
}
