package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjpark-dev/hetero1d/pkg/device"
)

// depletionWidth estimates the 10%-90% built-in-potential transition
// width, a proxy for the depletion region spec.md end-to-end scenario 1
// expects to be on the order of 1 um for the uniform silicon p-n junction.
func depletionWidth(d *device.Device) float64 {
	vbi := d.State.BuiltInPotential
	lo, hi := 0.1*vbi, 0.9*vbi

	var xLo, xHi float64
	foundLo, foundHi := false, false
	for i, phi := range d.State.Potential {
		if !foundLo && phi >= lo {
			xLo = d.Mesh.X(i)
			foundLo = true
		}
		if !foundHi && phi >= hi {
			xHi = d.Mesh.X(i)
			foundHi = true
			break
		}
	}
	return xHi - xLo
}

// TestSiliconPNMatchesEndToEndScenario exercises spec.md end-to-end
// scenario 1 (uniform silicon p-n junction): built-in potential in
// 0.62-0.66V, depletion width on the order of 1um, and n-side electron
// concentration tracking the donor doping level away from the junction.
func TestSiliconPNMatchesEndToEndScenario(t *testing.T) {
	d, tol := SiliconPN()
	require.NoError(t, d.CalcSteadyState(tol.ChargeTol, tol.RelPotTol, tol.MaxIter))

	assert.GreaterOrEqual(t, d.State.BuiltInPotential, 0.62)
	assert.LessOrEqual(t, d.State.BuiltInPotential, 0.66)

	width := depletionWidth(d)
	assert.Greater(t, width, 0.1e-6)
	assert.Less(t, width, 3e-6)

	lastIdx := d.Mesh.LastIdx()
	assert.InEpsilon(t, 1e21, d.State.N[lastIdx], 0.05)
	assert.InEpsilon(t, 1e21, d.State.P[0], 0.05)
}

// TestGaAsAlGaAsMatchesEndToEndScenario exercises spec.md end-to-end
// scenario 2 (GaAs/AlGaAs heterojunction): built-in potential above 1V,
// with a nonzero conduction-band offset at the material interface.
func TestGaAsAlGaAsMatchesEndToEndScenario(t *testing.T) {
	d, tol, err := GaAsAlGaAs()
	require.NoError(t, err)
	require.NoError(t, d.CalcSteadyState(tol.ChargeTol, tol.RelPotTol, tol.MaxIter))

	assert.Greater(t, d.State.BuiltInPotential, 1.0)

	heteroIdx := -1
	for i := 0; i < d.Mesh.Len(); i++ {
		if d.Mesh.X(i) >= d.Layers[0].XEnd {
			heteroIdx = i
			break
		}
	}
	require.Greater(t, heteroIdx, 0)

	offset := d.State.Ec[heteroIdx] - d.State.Ec[heteroIdx-1]
	assert.NotEqual(t, 0.0, offset)
}
