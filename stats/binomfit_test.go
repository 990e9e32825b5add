// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/randvar/go-randvar/mathx"
)

func wantDomainError(t *testing.T, what string, err error, param string) {
	t.Helper()
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf("%s: error = %v; want *DomainError", what, err)
	} else if de.Param != param {
		t.Errorf("%s: DomainError on %q; want %q (%v)", what, de.Param, param, err)
	}
}

func wantUnderspecified(t *testing.T, what string, err error) {
	t.Helper()
	var ue *UnderspecifiedError
	if !errors.As(err, &ue) {
		t.Errorf("%s: error = %v; want *UnderspecifiedError", what, err)
	}
}

func TestFitMean(t *testing.T) {
	for _, n := range []int{1, 3, 10, 57} {
		for _, p := range []float64{0, 0.1, 0.5, 0.77, 1} {
			d, err := FitN(n).Mean(float64(n) * p)
			if err != nil {
				t.Errorf("FitN(%d).Mean(%v): %v", n, float64(n)*p, err)
				continue
			}
			if d.N != n || !aeq(p, d.P) {
				t.Errorf("FitN(%d).Mean(%v) = %v; want B(%d, %v)", n, float64(n)*p, d, n, p)
			}
		}
	}

	d, err := FitP(0.25).Mean(3)
	if err != nil || d != (BinomialDist{12, 0.25}) {
		t.Errorf("FitP(0.25).Mean(3) = %v, %v; want B(12, 0.25)", d, err)
	}
	d, err = FitP(0.1).Mean(0.7)
	if err != nil || d != (BinomialDist{7, 0.1}) {
		t.Errorf("FitP(0.1).Mean(0.7) = %v, %v; want B(7, 0.1)", d, err)
	}

	_, err = FitN(10).Mean(11)
	wantDomainError(t, "FitN(10).Mean(11)", err, "mean")
	_, err = FitN(10).Mean(-1)
	wantDomainError(t, "FitN(10).Mean(-1)", err, "mean")
	_, err = FitN(10).Mean(nan)
	wantDomainError(t, "FitN(10).Mean(NaN)", err, "mean")
	_, err = FitN(0).Mean(0)
	wantDomainError(t, "FitN(0).Mean(0)", err, "N")
	_, err = FitP(0.3).Mean(1)
	wantDomainError(t, "FitP(0.3).Mean(1)", err, "mean")
	_, err = FitP(0).Mean(1)
	wantDomainError(t, "FitP(0).Mean(1)", err, "P")
	_, err = FitP(1.5).Mean(1)
	wantDomainError(t, "FitP(1.5).Mean(1)", err, "P")
	_, err = BinomialFit{N: 4, P: 0.5}.Mean(2)
	wantDomainError(t, "B(4, 0.5).Mean(2)", err, "P")
	_, err = UnknownBinomial().Mean(2)
	wantUnderspecified(t, "B(?, ?).Mean(2)", err)
}

func TestFitVariance(t *testing.T) {
	d, err := FitN(10).Variance(2.5)
	if err != nil || d.N != 10 || !aeq(0.5, d.P) {
		t.Errorf("FitN(10).Variance(2.5) = %v, %v; want B(10, 0.5)", d, err)
	}

	d, err = FitN(10).Variance(1.6)
	if err != nil || d.N != 10 || !aeq(0.8, d.P) {
		t.Errorf("FitN(10).Variance(1.6) = %v, %v; want B(10, 0.8)", d, err)
	}
	lo, hi, err := FitN(10).VarianceRoots(1.6)
	if err != nil || !aeq(0.2, lo.P) || !aeq(0.8, hi.P) {
		t.Errorf("FitN(10).VarianceRoots(1.6) = %v, %v, %v; want p=0.2, 0.8", lo, hi, err)
	}
	for _, r := range []BinomialDist{lo, hi} {
		if !aeq(1.6, r.Variance()) {
			t.Errorf("%v.Variance() = %v; want 1.6", r, r.Variance())
		}
	}

	d, err = FitN(8).Variance(0)
	if err != nil || d != (BinomialDist{8, 1}) {
		t.Errorf("FitN(8).Variance(0) = %v, %v; want B(8, 1)", d, err)
	}

	d, err = FitP(0.5).Variance(5)
	if err != nil || d != (BinomialDist{20, 0.5}) {
		t.Errorf("FitP(0.5).Variance(5) = %v, %v; want B(20, 0.5)", d, err)
	}
	d, err = FitP(0.2).Variance(1.6)
	if err != nil || d != (BinomialDist{10, 0.2}) {
		t.Errorf("FitP(0.2).Variance(1.6) = %v, %v; want B(10, 0.2)", d, err)
	}

	_, err = FitN(10).Variance(2.6)
	wantDomainError(t, "FitN(10).Variance(2.6)", err, "variance")
	_, err = FitN(10).Variance(-1)
	wantDomainError(t, "FitN(10).Variance(-1)", err, "variance")
	_, err = FitP(0.5).Variance(0.3)
	wantDomainError(t, "FitP(0.5).Variance(0.3)", err, "variance")
	_, err = FitP(1).Variance(1)
	wantDomainError(t, "FitP(1).Variance(1)", err, "P")
	_, _, err = FitP(0.5).VarianceRoots(1)
	wantDomainError(t, "FitP(0.5).VarianceRoots(1)", err, "N")
	_, err = UnknownBinomial().Variance(1)
	wantUnderspecified(t, "B(?, ?).Variance(1)", err)
}

func TestFitStdDev(t *testing.T) {
	d, err := FitN(10).StdDev(math.Sqrt(2.5))
	if err != nil || d.N != 10 || !aeq(0.5, d.P) {
		t.Errorf("FitN(10).StdDev(sqrt(2.5)) = %v, %v; want B(10, 0.5)", d, err)
	}
	d, err = FitP(0.5).StdDev(2)
	if err != nil || d != (BinomialDist{16, 0.5}) {
		t.Errorf("FitP(0.5).StdDev(2) = %v, %v; want B(16, 0.5)", d, err)
	}

	_, err = FitN(10).StdDev(-1)
	wantDomainError(t, "FitN(10).StdDev(-1)", err, "stddev")
	_, err = UnknownBinomial().StdDev(-1)
	wantUnderspecified(t, "B(?, ?).StdDev(-1)", err)
	_, err = UnknownBinomial().StdDev(1)
	wantUnderspecified(t, "B(?, ?).StdDev(1)", err)
}

func TestFitPMF(t *testing.T) {
	d, err := FitN(10).PMF(5, 0.24609375)
	if err != nil || d != (BinomialDist{10, 0.5}) {
		t.Errorf("FitN(10).PMF(5, 0.24609375) = %v, %v; want B(10, 0.5)", d, err)
	}

	// Targets on the rising side of the PMF are recovered exactly.
	for _, tt := range []struct {
		n int
		x float64
		p float64
	}{
		{10, 2, 0.1},
		{10, 0, 0.3},
		{6, 6, 0.9},
		{20, 7, 0.2},
	} {
		prob := BinomialDist{tt.n, tt.p}.PMF(tt.x)
		d, err := FitN(tt.n).PMF(tt.x, prob)
		if err != nil || d.N != tt.n || !aeq(tt.p, d.P) {
			t.Errorf("FitN(%d).PMF(%v, %v) = %v, %v; want p=%v", tt.n, tt.x, prob, d, err, tt.p)
		}
	}

	// On the falling side the smaller solution is returned, but it
	// still has the requested PMF.
	prob := BinomialDist{10, 0.4}.PMF(2)
	d, err = FitN(10).PMF(2, prob)
	if err != nil || d.P > 0.2 || !aeq(prob, d.PMF(2)) {
		t.Errorf("FitN(10).PMF(2, %v) = %v, %v; want p <= 0.2 with same PMF", prob, d, err)
	}

	// The PMF at 5 of B(10, p) never exceeds 0.24609375.
	_, err = FitN(10).PMF(5, 0.3)
	var rfe *RootFindError
	if !errors.As(err, &rfe) || !errors.Is(err, mathx.ErrNoBracket) {
		t.Errorf("FitN(10).PMF(5, 0.3) error = %v; want RootFindError wrapping ErrNoBracket", err)
	}

	_, err = FitN(10).PMF(11, 0.1)
	wantDomainError(t, "FitN(10).PMF(11, 0.1)", err, "x")
	_, err = FitN(10).PMF(2.5, 0.1)
	wantDomainError(t, "FitN(10).PMF(2.5, 0.1)", err, "x")
	_, err = FitN(10).PMF(2, 1.5)
	wantDomainError(t, "FitN(10).PMF(2, 1.5)", err, "prob")
	_, err = FitP(0.5).PMF(2, 0.1)
	wantDomainError(t, "FitP(0.5).PMF(2, 0.1)", err, "N")
	_, err = UnknownBinomial().PMF(2, 0.1)
	wantUnderspecified(t, "B(?, ?).PMF(2, 0.1)", err)
}

type countingFinder struct {
	calls int
}

func (f *countingFinder) Zero(g func(float64) float64, lo, hi float64) (float64, error) {
	f.calls++
	return mathx.Bisection{Tol: 1e-6}.Zero(g, lo, hi)
}

func TestFitPMFFinder(t *testing.T) {
	var cf countingFinder
	fit := FitN(4)
	fit.Finder = &cf
	d, err := fit.PMF(4, 0.0625)
	if err != nil || !aeq(0.5, d.P) {
		t.Errorf("PMF(4, 0.0625) = %v, %v; want B(4, 0.5)", d, err)
	}
	// x = N, so the rising side is all of [0, 1].
	if cf.calls != 1 {
		t.Errorf("finder called %d times; want 1", cf.calls)
	}
}

func TestBinomialFitString(t *testing.T) {
	for _, tt := range []struct {
		f    BinomialFit
		want string
	}{
		{FitN(10), "X ~ B(n=10, p=?)"},
		{FitP(0.5), "X ~ B(n=?, p=0.5)"},
		{UnknownBinomial(), "X ~ B(n=?, p=?)"},
	} {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}
