// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/randvar/go-randvar/mathx"
	"github.com/randvar/go-randvar/plot"
)

// BinomialDist is a binomial distribution.
//
// Values are immutable: every operation that derives a new
// distribution returns a new BinomialDist.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

var (
	_ DiscreteDist = BinomialDist{}
	_ Moments      = BinomialDist{}
)

// NewBinomialDist returns the binomial distribution B(n, p), or a
// *DomainError if n < 0 or p is not in [0, 1].
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	d := BinomialDist{N: n, P: p}
	if err := d.Validate(); err != nil {
		return BinomialDist{}, err
	}
	return d, nil
}

// Validate returns a *DomainError if d's parameters are out of range.
func (d BinomialDist) Validate() error {
	if !mathx.AllNaturals.Contains(float64(d.N)) {
		return &DomainError{Param: "N", Value: float64(d.N), Domain: mathx.AllNaturals.String()}
	}
	if !mathx.UnitInterval.Contains(d.P) {
		return &DomainError{Param: "P", Value: d.P, Domain: mathx.UnitInterval.String()}
	}
	return nil
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P. It is 0 unless k
// is an integer in [0, d.N].
func (d BinomialDist) PMF(k float64) float64 {
	if !mathx.NaturalsUpTo(d.N).Contains(k) {
		return 0
	}
	ki := int(k)
	return mathx.Choose(d.N, ki) * math.Pow(d.P, k) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}

	ki := int(k)
	pmf := make([]float64, ki+1)
	for i := range pmf {
		pmf[i] = d.PMF(float64(i))
	}
	return floats.Sum(pmf)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d BinomialDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() distuv.Normal {
	return distuv.Normal{Mu: d.Mean(), Sigma: d.StdDev()}
}

func (d BinomialDist) String() string {
	return fmt.Sprintf("X ~ B(n=%d, p=%v)", d.N, d.P)
}

// Binomial returns d itself, so that BinomialDist is BinomialLike.
func (d BinomialDist) Binomial() BinomialDist {
	return d
}

// Trials decomposes d into its d.N independent Bernoulli trials.
func (d BinomialDist) Trials() []BernoulliDist {
	trials := make([]BernoulliDist, d.N)
	for i := range trials {
		trials[i] = BernoulliDist{P: d.P}
	}
	return trials
}

// Add returns the distribution of X+Y, where X ~ d and Y ~ o are
// independent. Both must share the same success probability;
// otherwise Add returns a *DomainError.
func (d BinomialDist) Add(o BinomialLike) (BinomialDist, error) {
	b := o.Binomial()
	if err := d.sameP(b); err != nil {
		return BinomialDist{}, err
	}
	return NewBinomialDist(d.N+b.N, d.P)
}

// Sub returns B(d.N-o.N, d.P), the distribution of the successes
// left in d after removing the trials of o. The success probabilities
// must match and o may not have more trials than d.
func (d BinomialDist) Sub(o BinomialLike) (BinomialDist, error) {
	b := o.Binomial()
	if err := d.sameP(b); err != nil {
		return BinomialDist{}, err
	}
	return NewBinomialDist(d.N-b.N, d.P)
}

func (d BinomialDist) sameP(o BinomialDist) error {
	if o.P != d.P {
		return &DomainError{Param: "P", Value: o.P, Domain: fmt.Sprintf("{%v}", d.P)}
	}
	return nil
}

// PMFShape renders d's PMF over span as sticks.
func (d BinomialDist) PMFShape(r plot.Renderer, span []float64, opts ...plot.Option) error {
	return plot.PMFShape(r, d, span, opts...)
}

// CDFShape renders d's CDF over span as a curve.
func (d BinomialDist) CDFShape(r plot.Renderer, span []float64, opts ...plot.Option) error {
	return plot.CDFShape(r, d, span, opts...)
}

// MeanShape renders d's expected value over span as a dashed line.
func (d BinomialDist) MeanShape(r plot.Renderer, span []float64, opts ...plot.Option) error {
	return plot.MeanShape(r, d, span, opts...)
}
