// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadInterval is returned when a search interval is empty
	// or has a NaN bound.
	ErrBadInterval = errors.New("invalid search interval")

	// ErrNoBracket is returned when a function has the same sign
	// at both ends of the search interval.
	ErrNoBracket = errors.New("function does not change sign over interval")

	// ErrNoConvergence is returned when the iteration budget is
	// exhausted before the interval shrinks below the tolerance.
	ErrNoConvergence = errors.New("root finder did not converge")
)

// A ZeroFinder locates a zero of a continuous function f over the
// closed interval [lo, hi].
type ZeroFinder interface {
	Zero(f func(float64) float64, lo, hi float64) (float64, error)
}

// Bisection is a ZeroFinder that repeatedly halves an interval over
// which f changes sign. The zero value is ready to use.
type Bisection struct {
	// Tol is the width of the bracketing interval at which the
	// search stops. If zero, 1e-12 is used.
	Tol float64

	// MaxIter bounds the number of halvings. If zero, 200 is
	// used, which is more than enough to reach float64 resolution
	// on any finite interval.
	MaxIter int
}

// Bisect finds a zero of f in [lo, hi] using a default Bisection.
func Bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	return Bisection{}.Zero(f, lo, hi)
}

// Zero returns x in [lo, hi] such that f changes sign within Tol of x.
// If f is exactly zero at either bound, that bound is returned.
func (b Bisection) Zero(f func(float64) float64, lo, hi float64) (float64, error) {
	tol, maxIter := b.Tol, b.MaxIter
	if tol <= 0 {
		tol = 1e-12
	}
	if maxIter <= 0 {
		maxIter = 200
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nan, fmt.Errorf("%w: [%v, %v]", ErrBadInterval, lo, hi)
	}

	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.IsNaN(flo) || math.IsNaN(fhi) || math.Signbit(flo) == math.Signbit(fhi):
		return nan, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNoBracket, lo, flo, hi, fhi)
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo <= tol || mid == lo || mid == hi {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return nan, fmt.Errorf("%w after %d iterations: [%v, %v]", ErrNoConvergence, maxIter, lo, hi)
}
