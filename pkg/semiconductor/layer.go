// Package semiconductor aggregates a bulk material and its dopants over a
// bounded spatial range into a single layer, exposing the charge queries
// the device's Newton-Poisson loop needs.
package semiconductor

import (
	"github.com/kjpark-dev/hetero1d/pkg/dopant"
	"github.com/kjpark-dev/hetero1d/pkg/material"
	"github.com/kjpark-dev/hetero1d/pkg/mesh"
)

// Layer is a bulk material plus its dopants, constrained to [XBegin, XEnd].
type Layer struct {
	Bulk    material.BulkMaterial
	Dopants []dopant.Dopant
	XBegin  float64
	XEnd    float64
}

// Create builds a layer with no dopants yet; range is set once by
// Device.PushBulkLayer.
func Create(bulk material.BulkMaterial) *Layer {
	return &Layer{Bulk: bulk}
}

// PushDopant appends a dopant species to the layer.
func (l *Layer) PushDopant(d dopant.Dopant) {
	l.Dopants = append(l.Dopants, d)
}

// SetRange sets the layer's spatial extent.
func (l *Layer) SetRange(xBegin, xEnd float64) {
	l.XBegin = xBegin
	l.XEnd = xEnd
}

// IsInside reports whether x falls within [XBegin, XEnd] (closed interval).
func (l *Layer) IsInside(x float64) bool {
	return x >= l.XBegin && x <= l.XEnd
}

// TotalDopantCharge sums every dopant's fully-ionized charge at x, or 0
// if x is outside the layer.
func (l *Layer) TotalDopantCharge(x float64) (float64, error) {
	if !l.IsInside(x) {
		return 0, nil
	}
	var sum float64
	for _, d := range l.Dopants {
		c, err := d.DopantCharge(x)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum, nil
}

// TotalDopantChargeVec evaluates TotalDopantCharge at every mesh node.
func (l *Layer) TotalDopantChargeVec(m *mesh.Mesh) ([]float64, error) {
	out := make([]float64, m.Len())
	for i := 0; i < m.Len(); i++ {
		v, err := l.TotalDopantCharge(m.X(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// TotalCharge returns the bulk free-carrier charge plus every dopant's
// fully-ionized charge at x, or 0 if x is outside the layer.
func (l *Layer) TotalCharge(x, fermiLevel, potential, tempK float64) (float64, error) {
	if !l.IsInside(x) {
		return 0, nil
	}

	var charge float64
	for _, d := range l.Dopants {
		c, err := d.DopantCharge(x)
		if err != nil {
			return 0, err
		}
		charge += c
	}

	charge += l.Bulk.FreeCharge(fermiLevel, potential, tempK)
	return charge, nil
}

// TotalChargeDerivativePot returns d(rho_free)/dphi from the bulk only
// (dopant charge does not depend on the potential); 0 outside the layer.
func (l *Layer) TotalChargeDerivativePot(x, fermiLevel, potential, tempK float64) float64 {
	if !l.IsInside(x) {
		return 0
	}
	return l.Bulk.FreeChargeDerivativePot(fermiLevel, potential, tempK)
}

// TotalChargeVec evaluates TotalCharge at every mesh node, using potential[i]
// as the local potential.
func (l *Layer) TotalChargeVec(m *mesh.Mesh, fermiLevel float64, potential []float64, tempK float64) ([]float64, error) {
	out := make([]float64, m.Len())
	for i := 0; i < m.Len(); i++ {
		v, err := l.TotalCharge(m.X(i), fermiLevel, potential[i], tempK)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// TotalChargeDerivativePotVec evaluates TotalChargeDerivativePot at every
// mesh node.
func (l *Layer) TotalChargeDerivativePotVec(m *mesh.Mesh, fermiLevel float64, potential []float64, tempK float64) []float64 {
	out := make([]float64, m.Len())
	for i := 0; i < m.Len(); i++ {
		out[i] = l.TotalChargeDerivativePot(m.X(i), fermiLevel, potential[i], tempK)
	}
	return out
}

// ElectronConc returns the bulk electron concentration at x, or 0 if x is
// outside the layer.
func (l *Layer) ElectronConc(x, fermiLevel, potential, tempK float64) float64 {
	if !l.IsInside(x) {
		return 0
	}
	return l.Bulk.ElectronConc(fermiLevel, potential, tempK)
}

// HoleConc returns the bulk hole concentration at x, or 0 if x is outside
// the layer.
func (l *Layer) HoleConc(x, fermiLevel, potential, tempK float64) float64 {
	if !l.IsInside(x) {
		return 0
	}
	return l.Bulk.HoleConc(fermiLevel, potential, tempK)
}
