// Package rootfind implements a generic 1D bisection root finder with a
// dual (relative-x, absolute-f) stopping criterion, used by the device
// package to bootstrap the Fermi level and built-in potential from
// charge-neutrality constraints.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// ErrRootNotFound is returned when bisection exhausts its iteration
// budget without satisfying the stopping criterion.
var ErrRootNotFound = errors.New("rootfind: root not found within iteration budget")

// Bisect searches [lo, hi] for a root of f using bisection. f may fail
// (e.g. an underlying interpolation call on an empty sample set); any
// error it returns aborts the search immediately and is surfaced to the
// caller unchanged, rather than being treated as a zero value. Bisect
// does not assert the classical f(lo)*f(hi) < 0 precondition; callers
// that need that guarantee must check it themselves. Stops when
// |hi-lo|/|mid| < xTol AND |f(hi)-f(lo)| < fTol, returning mid. Returns
// ErrRootNotFound if maxIter is exhausted first.
func Bisect(lo, hi float64, f func(float64) (float64, error), xTol, fTol float64, maxIter int) (float64, error) {
	loVal, err := f(lo)
	if err != nil {
		return 0, err
	}
	hiVal, err := f(hi)
	if err != nil {
		return 0, err
	}

	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2.0
		deltaX := hi - lo
		deltaF := hiVal - loVal

		if math.Abs(deltaX/mid) < xTol && math.Abs(deltaF) < fTol {
			return mid, nil
		}

		midVal, err := f(mid)
		if err != nil {
			return 0, err
		}

		switch {
		case midVal*loVal > 0:
			lo, loVal = mid, midVal
		case midVal*hiVal > 0:
			hi, hiVal = mid, midVal
		default:
			// exact straddle (or a root hit dead-on); keep bisecting on
			// the same bracket until the tolerance check above fires.
		}
	}

	return 0, fmt.Errorf("bisect: after %d iterations: %w", maxIter, ErrRootNotFound)
}
