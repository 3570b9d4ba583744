package fermidirac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// In the strongly non-degenerate (Boltzmann) limit eta -> -infinity, the
// 1/Gamma(j+1)-normalized integrals both tend to e^eta:
// F_{1/2}(eta) -> e^eta and F_{-1/2}(eta) -> e^eta.
func TestBoltzmannLimit(t *testing.T) {
	eta := -20.0

	wantHalf := math.Exp(eta)
	wantMHalf := math.Exp(eta)

	assert.InEpsilon(t, wantHalf, Half(eta), 1e-6)
	assert.InEpsilon(t, wantMHalf, MHalf(eta), 1e-6)
}

// In the strongly degenerate limit eta -> +infinity, F_{1/2}(eta) grows as
// (4/(3*sqrt(pi)))*eta^{3/2} (Sommerfeld leading term).
func TestDegenerateAsymptotic(t *testing.T) {
	eta := 40.0
	want := (4.0 / (3.0 * math.Sqrt(math.Pi))) * math.Pow(eta, 1.5)
	assert.InEpsilon(t, want, Half(eta), 1e-3)
}

// F_{1/2} and F_{-1/2} are both strictly increasing in eta.
func TestMonotonic(t *testing.T) {
	etas := []float64{-10, -5, -1, 0, 1, 5, 10}
	for i := 1; i < len(etas); i++ {
		assert.Greater(t, Half(etas[i]), Half(etas[i-1]))
		assert.Greater(t, MHalf(etas[i]), MHalf(etas[i-1]))
	}
}

func TestAtZero(t *testing.T) {
	// F_{1/2}(0) = eta_{3/2}(1) = (1 - 2^{-1/2})*zeta(3/2), known numerically as ~0.7651.
	assert.InDelta(t, 0.7651, Half(0), 5e-3)
}
