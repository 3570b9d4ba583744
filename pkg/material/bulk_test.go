package material

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjpark-dev/hetero1d/internal/consts"
)

func TestAlGaAsContinuousAtSplit(t *testing.T) {
	below, err := AlGaAs300K(0.4499)
	require.NoError(t, err)
	above, err := AlGaAs300K(0.4501)
	require.NoError(t, err)

	assert.InDelta(t, below.BandGap/consts.Charge, above.BandGap/consts.Charge, 1e-2)
}

func TestAlGaAsMatchesGaAsAtXZero(t *testing.T) {
	hole, electron := CarrierInfo{EffectiveMass: 0.5}, CarrierInfo{EffectiveMass: 0.06}
	gaas := GaAs300K(hole, electron)
	algaas, err := AlGaAs300K(0)
	require.NoError(t, err)

	assert.InDelta(t, gaas.BandGap, algaas.BandGap, 1e-25)
	assert.InDelta(t, gaas.ElectronAffinity, algaas.ElectronAffinity, 1e-25)
}

func TestAlGaAsRejectsOutOfRange(t *testing.T) {
	_, err := AlGaAs300K(-0.1)
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = AlGaAs300K(1.1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFreeChargeDerivativeIsNegative(t *testing.T) {
	hole := CarrierInfo{EffectiveMass: 0.5}
	electron := CarrierInfo{EffectiveMass: 0.26}
	si := Silicon300K(hole, electron)

	fermiLevel := (si.Ec + si.Ev) / 2
	for _, phi := range []float64{-0.5, 0, 0.5} {
		d := si.FreeChargeDerivativePot(fermiLevel, phi, 300)
		assert.Less(t, d, 0.0)
	}
}

func TestElectronHoleConcPositive(t *testing.T) {
	hole := CarrierInfo{EffectiveMass: 0.5}
	electron := CarrierInfo{EffectiveMass: 0.26}
	si := Silicon300K(hole, electron)

	fermiLevel := (si.Ec + si.Ev) / 2
	assert.Greater(t, si.ElectronConc(fermiLevel, 0, 300), 0.0)
	assert.Greater(t, si.HoleConc(fermiLevel, 0, 300), 0.0)
}
