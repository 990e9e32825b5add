// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DistCommon is a statistical distribution. DistCommon is a base
// interface provided by both continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For discrete distributions, the CDF is the sum of the PMF
	// at all defined points from -inf to x, inclusive. It is
	// defined for the whole real line, not just the support.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. If the distribution has finite support, these
	// are exact: CDF(l') = 0 for all l' < l and CDF(h') = 1 for
	// all h' >= h.
	Bounds() (float64, float64)
}

// A DiscreteDist is a discrete statistical distribution.
//
// The random variable is passed as a float64. float64 can exactly
// represent every integer between ±2**53, so this is not a concern
// for integer-valued distributions.
type DiscreteDist interface {
	DistCommon

	// PMF returns the probability mass function Pr[X = x]. It is
	// 0 at every x outside the support, including non-integral x
	// for integer-valued distributions.
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// Moments is implemented by distributions with a closed-form mean and
// variance.
type Moments interface {
	Mean() float64
	Variance() float64

	// StdDev is the square root of Variance.
	StdDev() float64
}
