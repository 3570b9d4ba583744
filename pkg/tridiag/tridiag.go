// Package tridiag implements the tridiagonal matrix primitive: the Apply
// (matrix-vector product) and Solve (Thomas algorithm) operations the
// Poisson operator and the Newton-Poisson Jacobian are built from.
package tridiag

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a vector passed to Apply or Solve
// does not have the expected length N.
var ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

// Matrix is the triple (Sub, Diag, Super) describing a tridiagonal system
// of size N. Sub[i] is the coefficient in row i+1, column i (so Sub is
// populated on [0, N-2]); Super[i] is the coefficient in row i, column
// i+1 (populated on [0, N-2]). The trailing entries Sub[N-1] and
// Super[N-1] are unused but kept so all three slices share length N.
type Matrix struct {
	Sub   []float64
	Diag  []float64
	Super []float64
}

// New allocates a zeroed N x N tridiagonal matrix.
func New(n int) *Matrix {
	return &Matrix{
		Sub:   make([]float64, n),
		Diag:  make([]float64, n),
		Super: make([]float64, n),
	}
}

// Clone returns a deep copy of a.
func (a *Matrix) Clone() *Matrix {
	out := &Matrix{
		Sub:   append([]float64(nil), a.Sub...),
		Diag:  append([]float64(nil), a.Diag...),
		Super: append([]float64(nil), a.Super...),
	}
	return out
}

// N returns the matrix dimension.
func (a *Matrix) N() int { return len(a.Diag) }

// Apply computes y = A*x.
func Apply(a *Matrix, x []float64) ([]float64, error) {
	n := len(x)
	if len(a.Sub) != n || len(a.Diag) != n || len(a.Super) != n {
		return nil, fmt.Errorf("apply: %w", ErrDimensionMismatch)
	}

	y := make([]float64, n)
	y[0] = a.Diag[0]*x[0] + a.Super[0]*x[1]
	for i := 1; i <= n-2; i++ {
		y[i] = a.Sub[i-1]*x[i-1] + a.Diag[i]*x[i] + a.Super[i]*x[i+1]
	}
	y[n-1] = a.Sub[n-2]*x[n-2] + a.Diag[n-1]*x[n-1]
	return y, nil
}

// Solve solves A*x = b via the Thomas algorithm. scratch is a caller-owned
// working buffer of length N used for the modified super-diagonal; b is
// mutated in place to become the modified (then final) right-hand side and
// is returned as the solution. Callers must not alias scratch or b with
// any of A's own slices.
func Solve(a *Matrix, scratch []float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a.Sub) != n || len(a.Diag) != n || len(a.Super) != n || len(scratch) != n {
		return nil, fmt.Errorf("solve: %w", ErrDimensionMismatch)
	}

	scratch[0] = a.Super[0] / a.Diag[0]
	b[0] = b[0] / a.Diag[0]

	for i := 1; i <= n-1; i++ {
		denom := a.Diag[i] - a.Sub[i-1]*scratch[i-1]
		if i < n-1 {
			scratch[i] = a.Super[i] / denom
		}
		b[i] = (b[i] - a.Sub[i-1]*b[i-1]) / denom
	}

	for i := n - 2; i >= 0; i-- {
		b[i] -= scratch[i] * b[i+1]
	}

	return b, nil
}
