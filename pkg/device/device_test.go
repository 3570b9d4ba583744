package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjpark-dev/hetero1d/pkg/material"
	"github.com/kjpark-dev/hetero1d/pkg/semiconductor"
)

func TestNoLayersErrors(t *testing.T) {
	d := Create(300)
	err := d.CalcSteadyState(1, 1e-6, 10)
	require.ErrorIs(t, err, ErrNoLayers)
}

// An undoped, single-material bulk slab is already charge-neutral at its
// own intrinsic Fermi level: the solver should converge with a
// near-flat, near-zero potential profile and n == p everywhere.
func TestUndopedBulkIsFlat(t *testing.T) {
	hole := material.CarrierInfo{EffectiveMass: 0.5}
	electron := material.CarrierInfo{EffectiveMass: 0.26}
	layer := semiconductor.Create(material.Silicon300K(hole, electron))

	d := Create(300)
	d.PushBulkLayer(layer, 1e-6, 20)

	err := d.CalcSteadyState(1e6, 1e-6, 100)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.State.Potential[0])
	for i, v := range d.State.Potential {
		assert.InDelta(t, 0.0, v, 1e-6, "potential[%d]", i)
	}
	for i := range d.State.N {
		assert.InDelta(t, d.State.N[i], d.State.P[i], d.State.N[i]*1e-3+1)
	}
}

// Re-running CalcSteadyState on an already-converged device reproduces
// the same state (idempotence of the equilibrium solve).
func TestCalcSteadyStateIdempotent(t *testing.T) {
	hole := material.CarrierInfo{EffectiveMass: 0.5}
	electron := material.CarrierInfo{EffectiveMass: 0.26}
	layer := semiconductor.Create(material.Silicon300K(hole, electron))

	d := Create(300)
	d.PushBulkLayer(layer, 1e-6, 20)

	require.NoError(t, d.CalcSteadyState(1e6, 1e-6, 100))
	firstPotential := append([]float64(nil), d.State.Potential...)
	firstFermi := d.State.FermiLevel

	require.NoError(t, d.CalcSteadyState(1e6, 1e-6, 100))
	assert.Equal(t, firstFermi, d.State.FermiLevel)
	for i := range firstPotential {
		assert.InDelta(t, firstPotential[i], d.State.Potential[i], 1e-9)
	}
}

func TestBoundaryPotentialExact(t *testing.T) {
	hole := material.CarrierInfo{EffectiveMass: 0.5}
	electron := material.CarrierInfo{EffectiveMass: 0.26}
	layer := semiconductor.Create(material.Silicon300K(hole, electron))

	d := Create(300)
	d.PushBulkLayer(layer, 1e-6, 20)
	require.NoError(t, d.CalcSteadyState(1e6, 1e-6, 100))

	assert.Equal(t, 0.0, d.State.Potential[0])
	assert.Equal(t, d.State.BuiltInPotential, d.State.Potential[d.Mesh.LastIdx()])
}
