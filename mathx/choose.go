// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// chooseExactMax is the largest n for which Choose computes the
// coefficient in integer arithmetic. Every C(n, k) with n at or below
// this fits comfortably in an int64, including intermediate products.
const chooseExactMax = 50

// Choose returns the binomial coefficient of n and k, the number of
// ways to choose k elements from a set of n. It returns 0 if k < 0 or
// k > n.
//
// For n <= 50 the result is exact. Beyond that it is computed through
// the log-gamma function and rounded, so it is accurate to float64
// precision but may be +Inf for very large n.
func Choose(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if n <= chooseExactMax {
		return float64(combin.Binomial(n, k))
	}
	return math.Round(combin.GeneralizedBinomial(float64(n), float64(k)))
}
