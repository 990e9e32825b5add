// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/randvar/go-randvar/mathx"
)

// discTol is the amount by which the discriminant of the variance
// equation may fall below zero and still be treated as a double root.
const discTol = 1e-12

// BinomialFit is a partially specified binomial distribution. Its
// methods solve for the missing parameter given a target statistic
// and return the completed distribution.
//
// N < 0 means N is unknown and a NaN P means P is unknown. Use FitN
// or FitP to construct one.
type BinomialFit struct {
	N int
	P float64

	// Finder is used to solve equations with no closed-form
	// solution. If nil, a default mathx.Bisection is used.
	Finder mathx.ZeroFinder
}

// FitN returns a BinomialFit with N known and P unknown.
func FitN(n int) BinomialFit {
	return BinomialFit{N: n, P: nan}
}

// UnknownBinomial returns a BinomialFit with neither parameter
// known. Every fitting method on it fails with *UnderspecifiedError.
func UnknownBinomial() BinomialFit {
	return BinomialFit{N: -1, P: nan}
}

// FitP returns a BinomialFit with P known and N unknown.
func FitP(p float64) BinomialFit {
	return BinomialFit{N: -1, P: p}
}

func (f BinomialFit) knownN() bool { return f.N >= 0 }
func (f BinomialFit) knownP() bool { return !math.IsNaN(f.P) }

func (f BinomialFit) String() string {
	n, p := "?", "?"
	if f.knownN() {
		n = fmt.Sprint(f.N)
	}
	if f.knownP() {
		p = fmt.Sprint(f.P)
	}
	return fmt.Sprintf("X ~ B(n=%s, p=%s)", n, p)
}

// unknown checks that exactly one of N and P is known and that the
// known one is valid. It reports whether N is the unknown parameter.
func (f BinomialFit) unknown(op string) (solveN bool, err error) {
	switch {
	case !f.knownN() && !f.knownP():
		return false, &UnderspecifiedError{Op: op}
	case f.knownN() && f.knownP():
		return false, &DomainError{Param: "P", Value: f.P, Domain: "{NaN} (N is known, P must be unknown)"}
	case f.knownP() && !mathx.UnitInterval.Contains(f.P):
		return false, &DomainError{Param: "P", Value: f.P, Domain: mathx.UnitInterval.String()}
	}
	return !f.knownN(), nil
}

// PMF returns B(N, c) where c is a success probability for which the
// PMF at x equals prob. N must be known; P is ignored.
//
// As a function of c, the PMF at x rises on [0, x/N] and falls on
// [x/N, 1], so there may be two solutions. PMF searches the rising
// side first and returns the smaller solution if there is one. If
// prob exceeds the largest value the PMF at x can take, it returns a
// *RootFindError.
func (f BinomialFit) PMF(x, prob float64) (BinomialDist, error) {
	const op = "PMF"
	if !f.knownN() {
		if !f.knownP() {
			return BinomialDist{}, &UnderspecifiedError{Op: op}
		}
		return BinomialDist{}, &DomainError{Param: "N", Value: float64(f.N), Domain: mathx.AllNaturals.String()}
	}
	if support := mathx.NaturalsUpTo(f.N); !support.Contains(x) {
		return BinomialDist{}, &DomainError{Param: "x", Value: x, Domain: support.String()}
	}
	if !mathx.UnitInterval.Contains(prob) {
		return BinomialDist{}, &DomainError{Param: "prob", Value: prob, Domain: mathx.UnitInterval.String()}
	}

	n, k := f.N, int(x)
	coeff := mathx.Choose(n, k)
	g := func(c float64) float64 {
		return coeff*math.Pow(c, x)*math.Pow(1-c, float64(n-k)) - prob
	}

	mode := 1.0
	if n > 0 {
		mode = x / float64(n)
	}
	finder := f.Finder
	if finder == nil {
		finder = mathx.Bisection{}
	}
	var err error
	for _, bracket := range [][2]float64{{0, mode}, {mode, 1}} {
		var c float64
		c, err = finder.Zero(g, bracket[0], bracket[1])
		if err == nil {
			return NewBinomialDist(n, c)
		}
	}
	return BinomialDist{}, &RootFindError{Op: op, Err: err}
}

// Mean returns the binomial distribution with the given mean, solving
// p = mean/N if P is unknown or N = mean/P if N is unknown.
func (f BinomialFit) Mean(mean float64) (BinomialDist, error) {
	solveN, err := f.unknown("Mean")
	if err != nil {
		return BinomialDist{}, err
	}
	if !(mean >= 0) || math.IsInf(mean, 1) {
		return BinomialDist{}, &DomainError{Param: "mean", Value: mean, Domain: "R[0, +Inf)"}
	}

	if !solveN {
		if f.N == 0 {
			return BinomialDist{}, &DomainError{Param: "N", Value: 0, Domain: "N(1, ..., +Inf)"}
		}
		p := mean / float64(f.N)
		if !mathx.UnitInterval.Contains(p) {
			return BinomialDist{}, &DomainError{Param: "mean", Value: mean, Domain: mathx.Reals{Min: 0, Max: float64(f.N)}.String()}
		}
		return NewBinomialDist(f.N, p)
	}

	if f.P == 0 {
		return BinomialDist{}, &DomainError{Param: "P", Value: 0, Domain: "R(0, 1]"}
	}
	n, ok := mathx.NearestNatural(mean / f.P)
	if !ok {
		return BinomialDist{}, &DomainError{Param: "mean", Value: mean, Domain: fmt.Sprintf("{k·%v : k in N}", f.P)}
	}
	return NewBinomialDist(n, f.P)
}

// Variance returns the binomial distribution with the given variance.
//
// If N is unknown, it is v/(P(1-P)). If P is unknown, it solves
// N·p·(1-p) = v, which has two roots symmetric around 1/2; Variance
// returns the larger one. Use VarianceRoots for both.
func (f BinomialFit) Variance(v float64) (BinomialDist, error) {
	solveN, err := f.unknown("Variance")
	if err != nil {
		return BinomialDist{}, err
	}
	if !(v >= 0) || math.IsInf(v, 1) {
		return BinomialDist{}, &DomainError{Param: "variance", Value: v, Domain: "R[0, +Inf)"}
	}

	if !solveN {
		_, hi, err := f.varianceRoots(v)
		return hi, err
	}

	if f.P == 0 || f.P == 1 {
		return BinomialDist{}, &DomainError{Param: "P", Value: f.P, Domain: "R(0, 1)"}
	}
	n, ok := mathx.NearestNatural(v / (f.P * (1 - f.P)))
	if !ok {
		return BinomialDist{}, &DomainError{Param: "variance", Value: v, Domain: fmt.Sprintf("{k·%v : k in N}", f.P*(1-f.P))}
	}
	return NewBinomialDist(n, f.P)
}

// VarianceRoots returns both distributions B(N, p) with variance v,
// lo.P <= 1/2 <= hi.P. N must be known and P unknown.
func (f BinomialFit) VarianceRoots(v float64) (lo, hi BinomialDist, err error) {
	solveN, err := f.unknown("Variance")
	if err != nil {
		return
	}
	if solveN {
		err = &DomainError{Param: "N", Value: float64(f.N), Domain: mathx.AllNaturals.String()}
		return
	}
	if !(v >= 0) || math.IsInf(v, 1) {
		err = &DomainError{Param: "variance", Value: v, Domain: "R[0, +Inf)"}
		return
	}
	return f.varianceRoots(v)
}

func (f BinomialFit) varianceRoots(v float64) (lo, hi BinomialDist, err error) {
	if f.N == 0 {
		err = &DomainError{Param: "N", Value: 0, Domain: "N(1, ..., +Inf)"}
		return
	}
	disc := 1 - 4*v/float64(f.N)
	if disc < 0 && scalar.EqualWithinAbs(disc, 0, discTol) {
		// v is N/4 up to rounding, as from StdDev(sqrt(N)/2).
		disc = 0
	}
	if disc < 0 {
		err = &DomainError{Param: "variance", Value: v, Domain: mathx.Reals{Min: 0, Max: float64(f.N) / 4}.String()}
		return
	}
	sq := math.Sqrt(disc)
	if lo, err = NewBinomialDist(f.N, (1-sq)/2); err != nil {
		return
	}
	hi, err = NewBinomialDist(f.N, (1+sq)/2)
	return
}

// StdDev returns the binomial distribution with standard deviation
// sd. It is equivalent to f.Variance(sd*sd).
func (f BinomialFit) StdDev(sd float64) (BinomialDist, error) {
	if !(sd >= 0) || math.IsInf(sd, 1) {
		if _, err := f.unknown("StdDev"); err != nil {
			return BinomialDist{}, err
		}
		return BinomialDist{}, &DomainError{Param: "stddev", Value: sd, Domain: "R[0, +Inf)"}
	}
	return f.Variance(sd * sd)
}
