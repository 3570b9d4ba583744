// Package scenario builds the named device configurations used by
// cmd/fdsolve: a silicon p-n junction and a GaAs/AlGaAs heterojunction,
// mirroring the scenarios the reference driver exercised. The
// linear-Poisson sanity check needs no device and lives in cmd/fdsolve.
package scenario

import (
	"github.com/kjpark-dev/hetero1d/internal/consts"
	"github.com/kjpark-dev/hetero1d/pkg/device"
	"github.com/kjpark-dev/hetero1d/pkg/dopant"
	"github.com/kjpark-dev/hetero1d/pkg/material"
	"github.com/kjpark-dev/hetero1d/pkg/semiconductor"
)

// Tolerances bundles the convergence parameters CalcSteadyState needs.
type Tolerances struct {
	ChargeTol float64
	RelPotTol float64
	MaxIter   int
}

// SiliconPN builds a uniform-doping silicon p-n junction: L=10um,
// N_A = N_D = 1e21 m^-3, 4096 samples in total (2048 per side).
func SiliconPN() (*device.Device, Tolerances) {
	const (
		length      = 10e-6
		doping      = 1e21
		samples     = 4096
		temperature = 300.0
	)

	hole := material.CarrierInfo{EffectiveMass: 0.81, Mobility: 0.045}
	electron := material.CarrierInfo{EffectiveMass: 1.08, Mobility: 0.135}
	si := material.Silicon300K(hole, electron)

	pLayer := semiconductor.Create(si)
	pLayer.PushDopant(dopant.CreateAcceptor(
		[]float64{doping, doping}, []float64{0, length / 2},
		dopant.Nearest, si.Ev+0.045*consts.Charge, 4.0,
	))

	nLayer := semiconductor.Create(si)
	nLayer.PushDopant(dopant.CreateDonor(
		[]float64{doping, doping}, []float64{length / 2, length},
		dopant.Nearest, si.Ec-0.045*consts.Charge, 2.0,
	))

	d := device.Create(temperature)
	d.PushBulkLayer(pLayer, length/2, samples/2)
	d.PushBulkLayer(nLayer, length/2, samples/2)

	return d, Tolerances{ChargeTol: 100, RelPotTol: 1e-5, MaxIter: 500}
}

// GaAsAlGaAs builds a p-GaAs / n-AlGaAs(x=1) heterojunction: 100um per
// side, 262144 samples per side, following the reference's acceptor
// (zinc) / donor (silicon) dopant levels offset 45meV from the band edge.
func GaAsAlGaAs() (*device.Device, Tolerances, error) {
	const (
		length      = 100e-6
		dopingP     = 1e17
		dopingN     = 8e23
		samples     = 262144
		temperature = 300.0
	)

	gaasHole := material.CarrierInfo{EffectiveMass: 0.5, Mobility: 0.04}
	gaasElectron := material.CarrierInfo{EffectiveMass: 0.063, Mobility: 0.85}
	gaas := material.GaAs300K(gaasHole, gaasElectron)

	algaas, err := material.AlGaAs300K(1.0)
	if err != nil {
		return nil, Tolerances{}, err
	}
	algaas.Hole.Mobility = 0.01
	algaas.Electron.Mobility = 0.02

	pLayer := semiconductor.Create(gaas)
	pLayer.PushDopant(dopant.CreateAcceptor(
		[]float64{dopingP, dopingP}, []float64{0, length},
		dopant.Nearest, gaas.Ev+0.045*consts.Charge, 4.0,
	))

	nLayer := semiconductor.Create(algaas)
	nLayer.PushDopant(dopant.CreateDonor(
		[]float64{dopingN, dopingN}, []float64{0, length},
		dopant.Nearest, algaas.Ec-0.045*consts.Charge, 2.0,
	))

	d := device.Create(temperature)
	d.PushBulkLayer(pLayer, length, samples)
	d.PushBulkLayer(nLayer, length, samples)

	return d, Tolerances{ChargeTol: 10, RelPotTol: 1e-8, MaxIter: 500}, nil
}
