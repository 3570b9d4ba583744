// Package mesh implements the ordered 1D sample grid the rest of the
// solver operates on.
package mesh

// Mesh is an ordered, strictly nondecreasing sequence of 1D coordinates.
// It is append-only during device construction (see Extend).
type Mesh struct {
	points []float64
}

// New creates a mesh from an initial set of points (e.g. the single seed
// point [0.0] a Device starts from).
func New(points []float64) *Mesh {
	m := &Mesh{points: make([]float64, len(points))}
	copy(m.points, points)
	return m
}

// Len returns N, the number of mesh points.
func (m *Mesh) Len() int { return len(m.points) }

// LastIdx returns N-1.
func (m *Mesh) LastIdx() int { return len(m.points) - 1 }

// X returns the coordinate of mesh point i.
func (m *Mesh) X(i int) float64 { return m.points[i] }

// Points returns the underlying coordinate slice. Callers must not mutate it.
func (m *Mesh) Points() []float64 { return m.points }

// Extend appends new points to the mesh, preserving append-only growth.
func (m *Mesh) Extend(points []float64) {
	m.points = append(m.points, points...)
}

// ZeroVec returns a new length-N vector of zeros.
func (m *Mesh) ZeroVec() []float64 {
	return make([]float64, len(m.points))
}

// ConstVec returns a new length-N vector filled with v.
func (m *Mesh) ConstVec(v float64) []float64 {
	out := make([]float64, len(m.points))
	for i := range out {
		out[i] = v
	}
	return out
}

// MakeVecFn builds a length-N vector by evaluating f at every mesh point,
// passing both the coordinate and its index.
func (m *Mesh) MakeVecFn(f func(x float64, i int) float64) []float64 {
	out := make([]float64, len(m.points))
	for i, x := range m.points {
		out[i] = f(x, i)
	}
	return out
}

// AsVec returns the mesh coordinates as a plain vector (a copy).
func (m *Mesh) AsVec() []float64 {
	return m.MakeVecFn(func(x float64, _ int) float64 { return x })
}

// StepVec returns h[i] = x[i+1] - x[i] for i < N-1; the last entry is 0.
func (m *Mesh) StepVec() []float64 {
	step := m.ZeroVec()
	for i := 0; i < m.LastIdx(); i++ {
		step[i] = m.points[i+1] - m.points[i]
	}
	return step
}
