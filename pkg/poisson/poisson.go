// Package poisson builds the finite-volume discretization of
// d/dx(eps * dphi/dx) on a nonuniform 1D mesh as a tridiagonal operator A,
// so that A*phi + rho = 0 at interior nodes is Poisson's equation
// -d/dx(eps * dphi/dx) = rho.
package poisson

import (
	"github.com/kjpark-dev/hetero1d/pkg/mesh"
	"github.com/kjpark-dev/hetero1d/pkg/tridiag"
)

// Operator is the tridiagonal discrete Laplacian together with the
// permittivity vector it was built from. Row 0 and row N-1 are identity
// rows reserved for Dirichlet boundary conditions.
type Operator struct {
	Epsilon []float64
	A       *tridiag.Matrix
}

// Build constructs the Poisson operator for the given mesh and spatially
// varying permittivity (length N).
func Build(m *mesh.Mesh, epsilon []float64) *Operator {
	n := m.Len()
	h := m.StepVec()
	a := tridiag.New(n)

	for i := 1; i <= m.LastIdx()-1; i++ {
		hAvg := 0.5 * (h[i-1] + h[i])
		cFwd := (epsilon[i] + epsilon[i+1]) / (2.0 * h[i])
		cBwd := (epsilon[i-1] + epsilon[i]) / (2.0 * h[i-1])

		a.Diag[i] = -(cFwd + cBwd) / hAvg
		a.Super[i] = cFwd / hAvg
		a.Sub[i-1] = cBwd / hAvg
	}

	a.Diag[0] = 1.0
	a.Diag[m.LastIdx()] = 1.0

	return &Operator{Epsilon: epsilon, A: a}
}

// Residue computes A*phi + rho at every node. Boundary rows (0, N-1) are
// meaningless here and are expected to be overwritten by the caller.
func (op *Operator) Residue(phi, rho []float64) ([]float64, error) {
	applied, err := tridiag.Apply(op.A, phi)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(applied))
	for i := range out {
		out[i] = applied[i] + rho[i]
	}
	return out, nil
}
