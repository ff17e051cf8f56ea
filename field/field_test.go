package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wecswarm/internal/randsrc"
)

func TestNewFieldStaysWithinRange(t *testing.T) {
	f := New(20, 20, 2.0, randsrc.New(1))
	for i := 0; i < f.Height(); i++ {
		for j := 0; j < f.Width(); j++ {
			v := f.at(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 2.0)
		}
	}
}

func TestSampleCornerIsExact(t *testing.T) {
	f := New(10, 10, 1.0, randsrc.New(2))
	got := f.Sample(float64(f.Width()-1), float64(f.Height()-1))
	want := f.at(f.Height()-1, f.Width()-1)
	assert.InDelta(t, want, got, 1e-9)
}

func TestSampleClampsOutOfBounds(t *testing.T) {
	f := New(10, 10, 1.0, randsrc.New(3))
	atEdge := f.Sample(9, 9)
	beyond := f.Sample(50, 50)
	assert.InDelta(t, atEdge, beyond, 1e-9)
}

func TestPerturbStaysInRange(t *testing.T) {
	f := New(15, 15, 3.0, randsrc.New(4))
	for tick := 0; tick < 5; tick++ {
		f.Perturb()
		for _, v := range f.data {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 3.0)
		}
	}
}

func TestDeterministicForSameSeed(t *testing.T) {
	a := New(12, 12, 1.0, randsrc.New(99))
	b := New(12, 12, 1.0, randsrc.New(99))
	require.Equal(t, a.data, b.data)

	a.Perturb()
	b.Perturb()
	require.Equal(t, a.data, b.data)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := New(5, 5, 1.0, randsrc.New(5))
	snap := f.Snapshot()
	snap[0][0] = -99
	assert.NotEqual(t, -99.0, f.at(0, 0))
}
