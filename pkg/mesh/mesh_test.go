package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicityAndStep(t *testing.T) {
	m := New([]float64{0.0})
	m.Extend([]float64{1.0, 2.0, 4.0})

	for i := 0; i < m.LastIdx(); i++ {
		assert.Greater(t, m.X(i+1), m.X(i))
	}

	step := m.StepVec()
	assert.Equal(t, []float64{1.0, 1.0, 2.0, 0.0}, step)
}

func TestVecConstructors(t *testing.T) {
	m := New([]float64{0, 1, 2})

	assert.Equal(t, []float64{0, 0, 0}, m.ZeroVec())
	assert.Equal(t, []float64{5, 5, 5}, m.ConstVec(5))
	assert.Equal(t, []float64{0, 1, 2}, m.AsVec())

	fn := m.MakeVecFn(func(x float64, i int) float64 { return x*10 + float64(i) })
	assert.Equal(t, []float64{0, 11, 22}, fn)
}

func TestExtendAppendOnly(t *testing.T) {
	m := New([]float64{0})
	assert.Equal(t, 1, m.Len())
	m.Extend([]float64{1, 2})
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, m.LastIdx())
}
