// Package material implements BulkMaterial: band edges, permittivity,
// effective masses, and Fermi-Dirac carrier densities for a homogeneous
// semiconductor.
package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/kjpark-dev/hetero1d/internal/consts"
	"github.com/kjpark-dev/hetero1d/pkg/fermidirac"
)

// ErrInvalidParameter is returned by constructors given out-of-range
// physical parameters (e.g. an AlGaAs mole fraction outside [0, 1]).
var ErrInvalidParameter = errors.New("material: invalid parameter")

// CarrierInfo holds a carrier species' effective mass and mobility.
type CarrierInfo struct {
	EffectiveMass float64 // relative to the free electron mass
	Mobility      float64 // m^2/(V*s)
}

// densityOfStates returns the effective density of states Nc or Nv at
// temperature T (Kelvin): 2*(2*pi*m*k*T)^(3/2) / h^3.
func (c CarrierInfo) densityOfStates(tempK float64) float64 {
	m := c.EffectiveMass * consts.ElectronMass
	return 2.0 * math.Pow(2.0*math.Pi*m*consts.Boltzmann*tempK, 1.5) / math.Pow(consts.Planck, 3)
}

// BulkMaterial is a homogeneous semiconductor: band gap, electron
// affinity, relative permittivity, and per-species carrier properties.
type BulkMaterial struct {
	ElectronAffinity     float64 // chi, Joules
	BandGap              float64 // Eg, Joules
	RelativePermittivity float64
	Hole                 CarrierInfo
	Electron             CarrierInfo

	Ec      float64 // absolute conduction band edge (vacuum reference)
	Ev      float64 // absolute valence band edge
	Epsilon float64 // absolute permittivity, eps0*epsR
}

// Create builds a BulkMaterial from first principles.
func Create(electronAffinity, bandGap, relativePermittivity float64, hole, electron CarrierInfo) BulkMaterial {
	return BulkMaterial{
		ElectronAffinity:     electronAffinity,
		BandGap:              bandGap,
		RelativePermittivity: relativePermittivity,
		Hole:                 hole,
		Electron:             electron,
		Ec:                   -electronAffinity,
		Ev:                   -electronAffinity - bandGap,
		Epsilon:              consts.EpsilonVacuum * relativePermittivity,
	}
}

// Silicon300K returns bulk silicon parameters at T=300K.
func Silicon300K(hole, electron CarrierInfo) BulkMaterial {
	return Create(1.3895213*consts.Charge, 1.14*consts.Charge, 11.68, hole, electron)
}

// GaAs300K returns bulk GaAs parameters at T=300K.
func GaAs300K(hole, electron CarrierInfo) BulkMaterial {
	return Create(4.07*consts.Charge, 1.422*consts.Charge, 12.9, hole, electron)
}

// AlGaAs300K returns Al_x Ga_{1-x} As parameters at T=300K for mole
// fraction x in [0, 1], per the piecewise formulas split at x=0.45.
func AlGaAs300K(x float64) (BulkMaterial, error) {
	if x < 0 || x > 1 {
		return BulkMaterial{}, fmt.Errorf("AlGaAs300K(x=%g): %w", x, ErrInvalidParameter)
	}

	var egEV, chiEV, mh, me float64
	epsR := 12.9 - 2.84*x

	if x < 0.45 {
		egEV = 1.422 + 1.2475*x
		chiEV = 4.07 - 1.1*x
		mh = 0.64
		me = 0.063 + 0.083*x
	} else {
		egEV = 1.9 + 0.125*x + 0.143*x*x
		chiEV = 3.64 - 0.14*x
		mh = 0.51 + 0.25*x
		me = 0.85 - 0.14*x
	}

	hole := CarrierInfo{EffectiveMass: mh}
	electron := CarrierInfo{EffectiveMass: me}

	return Create(consts.FromEV(chiEV), consts.FromEV(egEV), epsR, hole, electron), nil
}

// reducedElectronEnergy returns eta_n = -(Ec(phi) - mu) / (k*T).
func (b BulkMaterial) reducedElectronEnergy(fermiLevel, potential, tempK float64) float64 {
	ecPotential := b.Ec - consts.Charge*potential
	return -(ecPotential - fermiLevel) / (consts.Boltzmann * tempK)
}

// reducedHoleEnergy returns eta_p = -(mu - Ev(phi)) / (k*T).
func (b BulkMaterial) reducedHoleEnergy(fermiLevel, potential, tempK float64) float64 {
	evPotential := b.Ev - consts.Charge*potential
	return -(fermiLevel - evPotential) / (consts.Boltzmann * tempK)
}

// ElectronConc returns n = Nc(T) * F_{1/2}(eta_n).
func (b BulkMaterial) ElectronConc(fermiLevel, potential, tempK float64) float64 {
	eta := b.reducedElectronEnergy(fermiLevel, potential, tempK)
	return b.Electron.densityOfStates(tempK) * fermidirac.Half(eta)
}

// ElectronConcDerivativePot returns dn/dphi = Nc(T)*F_{-1/2}(eta_n)*(q/kT).
func (b BulkMaterial) ElectronConcDerivativePot(fermiLevel, potential, tempK float64) float64 {
	eta := b.reducedElectronEnergy(fermiLevel, potential, tempK)
	kt := consts.Boltzmann * tempK
	return b.Electron.densityOfStates(tempK) * fermidirac.MHalf(eta) * consts.Charge / kt
}

// HoleConc returns p = Nv(T) * F_{1/2}(eta_p).
func (b BulkMaterial) HoleConc(fermiLevel, potential, tempK float64) float64 {
	eta := b.reducedHoleEnergy(fermiLevel, potential, tempK)
	return b.Hole.densityOfStates(tempK) * fermidirac.Half(eta)
}

// HoleConcDerivativePot returns dp/dphi = -Nv(T)*F_{-1/2}(eta_p)*(q/kT).
func (b BulkMaterial) HoleConcDerivativePot(fermiLevel, potential, tempK float64) float64 {
	eta := b.reducedHoleEnergy(fermiLevel, potential, tempK)
	kt := consts.Boltzmann * tempK
	return -b.Hole.densityOfStates(tempK) * fermidirac.MHalf(eta) * consts.Charge / kt
}

// ElectronCharge returns the electron contribution to free charge, -q*n.
func (b BulkMaterial) ElectronCharge(fermiLevel, potential, tempK float64) float64 {
	return -consts.Charge * b.ElectronConc(fermiLevel, potential, tempK)
}

// ElectronChargeDerivativePot returns d(-q*n)/dphi.
func (b BulkMaterial) ElectronChargeDerivativePot(fermiLevel, potential, tempK float64) float64 {
	return -consts.Charge * b.ElectronConcDerivativePot(fermiLevel, potential, tempK)
}

// HoleCharge returns the hole contribution to free charge, q*p.
func (b BulkMaterial) HoleCharge(fermiLevel, potential, tempK float64) float64 {
	return consts.Charge * b.HoleConc(fermiLevel, potential, tempK)
}

// HoleChargeDerivativePot returns d(q*p)/dphi.
func (b BulkMaterial) HoleChargeDerivativePot(fermiLevel, potential, tempK float64) float64 {
	return consts.Charge * b.HoleConcDerivativePot(fermiLevel, potential, tempK)
}

// FreeCharge returns rho_free = q*(p - n) = ElectronCharge + HoleCharge.
func (b BulkMaterial) FreeCharge(fermiLevel, potential, tempK float64) float64 {
	return b.ElectronCharge(fermiLevel, potential, tempK) + b.HoleCharge(fermiLevel, potential, tempK)
}

// FreeChargeDerivativePot returns d(rho_free)/dphi, which is strictly
// negative for any finite (mu, phi, T>0) — the monotonicity property the
// Newton-Poisson loop depends on for stability.
func (b BulkMaterial) FreeChargeDerivativePot(fermiLevel, potential, tempK float64) float64 {
	return b.ElectronChargeDerivativePot(fermiLevel, potential, tempK) + b.HoleChargeDerivativePot(fermiLevel, potential, tempK)
}
