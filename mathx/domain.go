// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// A Domain is a set of real numbers that can be tested for
// membership.
type Domain interface {
	Contains(x float64) bool
	fmt.Stringer
}

// Naturals is the set of integers in the closed interval [Min, Max].
// Max may be +Inf.
type Naturals struct {
	Min, Max float64
}

// AllNaturals is the set {0, 1, 2, ...}.
var AllNaturals = Naturals{0, inf}

// NaturalsUpTo returns the set {0, 1, ..., n}.
func NaturalsUpTo(n int) Naturals {
	return Naturals{0, float64(n)}
}

func (d Naturals) Contains(x float64) bool {
	return IsInteger(x) && d.Min <= x && x <= d.Max
}

func (d Naturals) String() string {
	return fmt.Sprintf("N(%v, ..., %v)", d.Min, d.Max)
}

// Reals is the closed interval [Min, Max]. Either bound may be
// infinite.
type Reals struct {
	Min, Max float64
}

// UnitInterval is [0, 1].
var UnitInterval = Reals{0, 1}

func (d Reals) Contains(x float64) bool {
	// NaN fails both comparisons.
	return d.Min <= x && x <= d.Max
}

func (d Reals) String() string {
	return fmt.Sprintf("R[%v, %v]", d.Min, d.Max)
}

// IsInteger reports whether x is a finite integer value.
func IsInteger(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}

// NaturalTol is the distance from an integer within which
// NearestNatural accepts a computed value.
const NaturalTol = 1e-9

// NearestNatural rounds x to the nearest natural number. It reports
// false if x is NaN, infinite, negative, or not within NaturalTol
// (relative for large x) of an integer.
func NearestNatural(x float64) (int, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	r := math.Round(x)
	if r < 0 || r > math.MaxInt32 {
		return 0, false
	}
	if !scalar.EqualWithinAbsOrRel(x, r, NaturalTol, NaturalTol) {
		return 0, false
	}
	return int(r), true
}
