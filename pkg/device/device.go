// Package device stacks semiconductor layers onto a shared mesh and
// solves for the self-consistent equilibrium electrostatic profile: the
// two boundary-condition bisections (Fermi level, built-in potential)
// followed by the damped Newton-Poisson iteration.
package device

import (
	"errors"
	"fmt"
	"math"

	"github.com/kjpark-dev/hetero1d/internal/consts"
	"github.com/kjpark-dev/hetero1d/pkg/mesh"
	"github.com/kjpark-dev/hetero1d/pkg/poisson"
	"github.com/kjpark-dev/hetero1d/pkg/rootfind"
	"github.com/kjpark-dev/hetero1d/pkg/semiconductor"
	"github.com/kjpark-dev/hetero1d/pkg/tridiag"
)

// ErrNoLayers is returned by CalcSteadyState when no layers have been
// pushed onto the device.
var ErrNoLayers = errors.New("device: no layers pushed")

// ErrDiverged is returned when the Newton-Poisson loop exhausts maxIter
// without meeting both convergence tests.
var ErrDiverged = errors.New("device: newton-poisson iteration diverged")

// boundaryIter is the fixed bisection iteration cap for both the Fermi
// level and built-in potential root-finds.
const boundaryIter = 100

// State holds the populated steady-state solution. It is produced by a
// single CalcSteadyState call and is read-only from the caller's
// perspective afterward.
type State struct {
	Potential []float64
	N         []float64
	P         []float64
	Charge    []float64
	Ec        []float64
	Ev        []float64

	FermiLevel       float64
	BuiltInPotential float64
}

// Device owns one shared mesh built by concatenating per-layer samples,
// the per-node permittivity/band-edge arrays derived from those layers,
// and the populated steady state once CalcSteadyState succeeds.
type Device struct {
	Temperature float64
	Layers      []*semiconductor.Layer

	Mesh      *mesh.Mesh
	Epsilon   []float64
	VacuumEc  []float64
	VacuumEv  []float64
	NetDoping []float64

	FullWidth float64
	lastPos   float64

	// OverRelaxation is the damping factor applied to each Newton update
	// (phi <- phi - OverRelaxation*deltaPhi). The reference default of
	// 1.5 is an aggressive over-relaxation, not classical (0, 1] Newton
	// damping; kept as the default and exposed here as a tuning knob.
	OverRelaxation float64

	poissonOp *poisson.Operator
	State     State
}

// Create builds an empty device at the given temperature (Kelvin), with
// the default over-relaxation factor.
func Create(temperature float64) *Device {
	return &Device{
		Temperature:    temperature,
		Mesh:           mesh.New([]float64{0.0}),
		OverRelaxation: 1.5,
	}
}

// PushBulkLayer appends `samples` new mesh points spanning `width`,
// starting just after the current last position, and assigns the layer's
// [xBegin, xEnd] range. The very first push also seeds the permittivity
// and vacuum band-edge arrays with the first layer's bulk values at the
// x=0 sample the mesh starts from.
func (d *Device) PushBulkLayer(layer *semiconductor.Layer, width float64, samples int) {
	step := width / float64(samples)
	newPoints := make([]float64, samples)
	for i := 0; i < samples; i++ {
		newPoints[i] = d.lastPos + float64(i+1)*step
	}
	d.Mesh.Extend(newPoints)

	if len(d.Epsilon) == 0 {
		d.Epsilon = []float64{layer.Bulk.Epsilon}
		d.VacuumEc = []float64{layer.Bulk.Ec}
		d.VacuumEv = []float64{layer.Bulk.Ev}
	}

	for i := 0; i < samples; i++ {
		d.Epsilon = append(d.Epsilon, layer.Bulk.Epsilon)
		d.VacuumEc = append(d.VacuumEc, layer.Bulk.Ec)
		d.VacuumEv = append(d.VacuumEv, layer.Bulk.Ev)
	}

	layer.SetRange(d.lastPos, d.lastPos+width)
	d.Layers = append(d.Layers, layer)

	d.lastPos += width
	d.FullWidth += width
}

// totalChargeVec sums TotalChargeVec across every layer, in insertion order.
func (d *Device) totalChargeVec(fermiLevel float64, potential []float64) ([]float64, error) {
	acc := d.Mesh.ZeroVec()
	for _, layer := range d.Layers {
		c, err := layer.TotalChargeVec(d.Mesh, fermiLevel, potential, d.Temperature)
		if err != nil {
			return nil, err
		}
		for i := range acc {
			acc[i] += c[i]
		}
	}
	return acc, nil
}

// totalChargeDerivativePotVec sums TotalChargeDerivativePotVec across
// every layer, in insertion order.
func (d *Device) totalChargeDerivativePotVec(fermiLevel float64, potential []float64) []float64 {
	acc := d.Mesh.ZeroVec()
	for _, layer := range d.Layers {
		c := layer.TotalChargeDerivativePotVec(d.Mesh, fermiLevel, potential, d.Temperature)
		for i := range acc {
			acc[i] += c[i]
		}
	}
	return acc
}

// CalcSteadyState bootstraps the two boundary conditions (Fermi level,
// built-in potential) from charge neutrality at the contacts, then runs
// the damped Newton-Poisson loop to convergence. On success it populates
// d.State and returns nil.
func (d *Device) CalcSteadyState(chargeTol, relPotentialTol float64, maxIter int) error {
	if len(d.Layers) == 0 {
		return fmt.Errorf("calc steady state: %w", ErrNoLayers)
	}

	d.poissonOp = poisson.Build(d.Mesh, d.Epsilon)

	left := d.Layers[0]
	right := d.Layers[len(d.Layers)-1]

	fermiLevel, err := rootfind.Bisect(
		left.Bulk.Ev, left.Bulk.Ec,
		func(mu float64) (float64, error) {
			return left.TotalCharge(0.0, mu, 0.0, d.Temperature)
		},
		relPotentialTol, chargeTol, boundaryIter,
	)
	if err != nil {
		return fmt.Errorf("calc steady state: fermi level bisection: %w", err)
	}

	builtInPotential, err := rootfind.Bisect(
		-right.Bulk.BandGap/consts.Charge, right.Bulk.BandGap/consts.Charge,
		func(v float64) (float64, error) {
			return right.TotalCharge(d.FullWidth, fermiLevel, v, d.Temperature)
		},
		relPotentialTol, chargeTol, boundaryIter,
	)
	if err != nil {
		return fmt.Errorf("calc steady state: built-in potential bisection: %w", err)
	}

	lastIdx := d.Mesh.LastIdx()

	potential := d.Mesh.ZeroVec()
	potential[0] = 0.0
	potential[lastIdx] = builtInPotential

	charge, err := d.totalChargeVec(fermiLevel, potential)
	if err != nil {
		return fmt.Errorf("calc steady state: %w", err)
	}

	omega := d.OverRelaxation
	if omega == 0 {
		omega = 1.5
	}

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		chargeDerivative := d.totalChargeDerivativePotVec(fermiLevel, potential)

		residual, err := d.poissonOp.Residue(potential, charge)
		if err != nil {
			return fmt.Errorf("calc steady state: residual: %w", err)
		}
		residual[0] = 0.0
		residual[lastIdx] = 0.0

		jacobian := d.poissonOp.A.Clone()
		for i := range jacobian.Diag {
			jacobian.Diag[i] += chargeDerivative[i]
		}
		jacobian.Diag[0] = 1.0
		jacobian.Super[0] = 0.0
		jacobian.Diag[lastIdx] = 1.0
		jacobian.Sub[lastIdx-1] = 0.0

		scratch := d.Mesh.ZeroVec()
		deltaPhi, err := tridiag.Solve(jacobian, scratch, residual)
		if err != nil {
			return fmt.Errorf("calc steady state: newton solve: %w", err)
		}

		for i := range potential {
			potential[i] -= omega * deltaPhi[i]
		}

		potential[0] = 0.0
		potential[lastIdx] = builtInPotential

		prevCharge := charge
		charge, err = d.totalChargeVec(fermiLevel, potential)
		if err != nil {
			return fmt.Errorf("calc steady state: %w", err)
		}

		if iter > 1 && maxAbsDelta(prevCharge, charge) < chargeTol &&
			maxAbs(deltaPhi)/maxAbs(potential) < relPotentialTol {
			converged = true
			break
		}
	}

	if !converged {
		return fmt.Errorf("calc steady state: after %d iterations: %w", maxIter, ErrDiverged)
	}

	d.State.Potential = potential
	d.State.Charge = charge
	d.State.FermiLevel = fermiLevel
	d.State.BuiltInPotential = builtInPotential

	d.State.Ec = make([]float64, d.Mesh.Len())
	d.State.Ev = make([]float64, d.Mesh.Len())
	for i := range d.State.Ec {
		d.State.Ec[i] = d.VacuumEc[i] - consts.Charge*potential[i]
		d.State.Ev[i] = d.VacuumEv[i] - consts.Charge*potential[i]
	}

	d.State.N = d.Mesh.MakeVecFn(func(x float64, i int) float64 {
		var sum float64
		for _, layer := range d.Layers {
			sum += layer.ElectronConc(x, fermiLevel, potential[i], d.Temperature)
		}
		return sum
	})
	d.State.P = d.Mesh.MakeVecFn(func(x float64, i int) float64 {
		var sum float64
		for _, layer := range d.Layers {
			sum += layer.HoleConc(x, fermiLevel, potential[i], d.Temperature)
		}
		return sum
	})

	netDoping := d.Mesh.ZeroVec()
	for _, layer := range d.Layers {
		c, err := layer.TotalDopantChargeVec(d.Mesh)
		if err != nil {
			return fmt.Errorf("calc steady state: net doping: %w", err)
		}
		for i := range netDoping {
			netDoping[i] += c[i] / consts.Charge
		}
	}
	d.NetDoping = netDoping

	return nil
}

func maxAbs(v []float64) float64 {
	max := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}

func maxAbsDelta(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
