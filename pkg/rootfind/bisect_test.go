package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectLinearRoot(t *testing.T) {
	root, err := Bisect(-10, 10, func(x float64) (float64, error) { return x - 3, nil }, 1e-10, 1e-10, 200)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, root, 1e-6)
}

func TestBisectCosOnZeroToPi(t *testing.T) {
	root, err := Bisect(0, math.Pi, func(x float64) (float64, error) { return math.Cos(x), nil }, 1e-10, 1e-10, 200)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-6)
}

func TestBisectExhaustsBudget(t *testing.T) {
	_, err := Bisect(-10, 10, func(x float64) (float64, error) { return x - 3, nil }, 1e-15, 0, 2)
	require.ErrorIs(t, err, ErrRootNotFound)
}

func TestBisectPropagatesCallbackError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := Bisect(-10, 10, func(x float64) (float64, error) { return 0, sentinel }, 1e-10, 1e-10, 200)
	require.ErrorIs(t, err, sentinel)
}
