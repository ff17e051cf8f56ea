package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSwarmIsValid(t *testing.T) {
	s := DefaultSwarm()
	require.NoError(t, s.Validate())
}

func TestNormalizeAndValidateFillsZeroFields(t *testing.T) {
	var s Swarm
	require.NoError(t, s.NormalizeAndValidate())

	def := DefaultSwarm()
	assert.Equal(t, def.PopulationSize, s.PopulationSize)
	assert.Equal(t, def.Width, s.Width)
	assert.Equal(t, def.Height, s.Height)
	assert.Equal(t, def.MaxPower, s.MaxPower)
	assert.Equal(t, def.Zone, s.Zone)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	s := DefaultSwarm()
	s.PopulationSize = -1
	s.MaxSpeed = 0
	s.Efficiency = 2.0

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PopulationSize")
}

func TestZoneContains(t *testing.T) {
	z := Zone{MinX: 0, MinY: 0, MaxX: 25, MaxY: 25}
	assert.True(t, z.Contains(10, 10))
	assert.False(t, z.Contains(50, 50))
	assert.True(t, z.Contains(25, 25))
}
