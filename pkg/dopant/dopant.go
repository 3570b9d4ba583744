// Package dopant implements position-dependent dopant concentration
// profiles and Fermi-Dirac ionization occupancy.
package dopant

import (
	"errors"
	"fmt"
	"math"

	"github.com/kjpark-dev/hetero1d/internal/consts"
)

// ErrEmptyInput is returned by the interpolators when given an empty
// sample set.
var ErrEmptyInput = errors.New("dopant: empty sample set")

// InterpMode selects how Dopant.Conc interpolates between samples.
type InterpMode int

const (
	Nearest InterpMode = iota
	Linear
)

// Kind distinguishes donor and acceptor dopants.
type Kind int

const (
	Donor Kind = iota
	Acceptor
)

// Dopant is a position-dependent impurity species: a sampled concentration
// profile, an interpolation mode, a donor/acceptor tag, a trap energy, and
// a degeneracy factor.
type Dopant struct {
	SampledConc  []float64
	SampledX     []float64
	InterpMode   InterpMode
	Kind         Kind
	DopantEnergy float64 // Ed, Joules
	Degeneracy   float64
}

// CreateDonor builds a donor dopant.
func CreateDonor(sampledConc, sampledX []float64, interpMode InterpMode, dopantEnergy, degeneracy float64) Dopant {
	return Dopant{
		SampledConc:  sampledConc,
		SampledX:     sampledX,
		InterpMode:   interpMode,
		Kind:         Donor,
		DopantEnergy: dopantEnergy,
		Degeneracy:   degeneracy,
	}
}

// CreateAcceptor builds an acceptor dopant.
func CreateAcceptor(sampledConc, sampledX []float64, interpMode InterpMode, dopantEnergy, degeneracy float64) Dopant {
	return Dopant{
		SampledConc:  sampledConc,
		SampledX:     sampledX,
		InterpMode:   interpMode,
		Kind:         Acceptor,
		DopantEnergy: dopantEnergy,
		Degeneracy:   degeneracy,
	}
}

// Conc returns the dopant concentration N(x), interpolated from the
// sampled profile per InterpMode.
func (d Dopant) Conc(x float64) (float64, error) {
	switch d.InterpMode {
	case Linear:
		return linear1D(x, d.SampledConc, d.SampledX)
	default:
		return nearest1D(x, d.SampledConc, d.SampledX)
	}
}

// DopantCharge returns the fully-ionized charge density contribution at
// x: +q*N(x) for donors, -q*N(x) for acceptors.
func (d Dopant) DopantCharge(x float64) (float64, error) {
	n, err := d.Conc(x)
	if err != nil {
		return 0, err
	}
	if d.Kind == Acceptor {
		return -consts.Charge * n, nil
	}
	return consts.Charge * n, nil
}

// ionizedFraction returns the Fermi-Dirac occupation f(Ed, mu, T, g) at
// the dopant's trap level. The same occupation is applied regardless of
// donor/acceptor kind: this "occupation weighted" convention, not the
// conventional f/(1-f) split, is kept for regression compatibility with
// the reference (see DESIGN.md).
func (d Dopant) ionizedFraction(fermiLevel, tempK float64) float64 {
	return fermiDiracOccupation(d.DopantEnergy, fermiLevel, tempK, d.Degeneracy)
}

func (d Dopant) ionizedFractionDerivative(fermiLevel, tempK float64) float64 {
	return fermiDiracOccupationDerivativeF(d.DopantEnergy, fermiLevel, tempK, d.Degeneracy)
}

// IonizedConc returns the concentration of ionized dopant sites:
// f(Ed,mu,T,g) * N(x). Present for regression/diagnostic use; the Newton
// loop in package device always uses the fully-ionized DopantCharge path.
func (d Dopant) IonizedConc(x, fermiLevel, tempK float64) (float64, error) {
	n, err := d.Conc(x)
	if err != nil {
		return 0, err
	}
	return d.ionizedFraction(fermiLevel, tempK) * n, nil
}

// IonizedConcDerivative returns d(IonizedConc)/d(fermiLevel).
func (d Dopant) IonizedConcDerivative(x, fermiLevel, tempK float64) (float64, error) {
	n, err := d.Conc(x)
	if err != nil {
		return 0, err
	}
	return d.ionizedFractionDerivative(fermiLevel, tempK) * n, nil
}

// IonizedCharge returns the occupation-weighted ionized charge density:
// f(Ed,mu,T,g) * DopantCharge(x).
func (d Dopant) IonizedCharge(x, fermiLevel, tempK float64) (float64, error) {
	charge, err := d.DopantCharge(x)
	if err != nil {
		return 0, err
	}
	return d.ionizedFraction(fermiLevel, tempK) * charge, nil
}

// IonizedChargeDerivative returns d(IonizedCharge)/d(fermiLevel).
func (d Dopant) IonizedChargeDerivative(x, fermiLevel, tempK float64) (float64, error) {
	charge, err := d.DopantCharge(x)
	if err != nil {
		return 0, err
	}
	return d.ionizedFractionDerivative(fermiLevel, tempK) * charge, nil
}

// fermiDiracOccupation returns f(E, fermiLevel, T, g) = 1 / (1 + g*exp((E-mu)/kT)).
func fermiDiracOccupation(e, fermiLevel, tempK, degeneracy float64) float64 {
	kt := consts.Boltzmann * tempK
	normalized := (e - fermiLevel) / kt
	return 1.0 / (1.0 + degeneracy*math.Exp(normalized))
}

// fermiDiracOccupationDerivativeF returns df/d(fermiLevel).
func fermiDiracOccupationDerivativeF(e, fermiLevel, tempK, degeneracy float64) float64 {
	kt := consts.Boltzmann * tempK
	normalized := (e - fermiLevel) / kt
	expTerm := math.Exp(normalized)
	denom := 1.0 + degeneracy*expTerm
	return degeneracy * expTerm / (kt * denom * denom)
}

// nearest1D returns fi[argmin |xi[i]-x|], breaking ties to the lowest index.
func nearest1D(x float64, fi, xi []float64) (float64, error) {
	if len(xi) == 0 {
		return 0, fmt.Errorf("nearest1D: %w", ErrEmptyInput)
	}

	bestIdx := 0
	bestDist := math.Abs(xi[0] - x)
	for i := 1; i < len(xi); i++ {
		d := math.Abs(xi[i] - x)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return fi[bestIdx], nil
}

// linear1D scans xi (assumed nondecreasing) for the first index i with
// xi[i] > x and returns the linear interpolant between i-1 and i. If no
// such index exists (x is at or beyond the last sample), it returns the
// last value. Per the reference this implementation matches, an x below
// xi[0] hits that branch with i=0 and returns fi[0] directly (no
// extrapolation below the first sample); an x equal to xi[0] interpolates
// to fi[0].
func linear1D(x float64, fi, xi []float64) (float64, error) {
	if len(xi) == 0 {
		return 0, fmt.Errorf("linear1D: %w", ErrEmptyInput)
	}

	for i, xv := range xi {
		if xv > x {
			if i == 0 {
				return fi[0], nil
			}
			slope := (fi[i] - fi[i-1]) / (xi[i] - xi[i-1])
			return fi[i-1] + slope*(x-xi[i-1]), nil
		}
	}

	return fi[len(fi)-1], nil
}
