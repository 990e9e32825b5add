// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// BinomialLike is implemented by distributions that are a special
// case of the binomial distribution.
type BinomialLike interface {
	Binomial() BinomialDist
}

// BernoulliDist is a Bernoulli distribution: a single trial that
// succeeds (1) with probability P and fails (0) otherwise.
type BernoulliDist struct {
	// P is the probability of success. 0 <= P <= 1.
	P float64
}

var (
	_ DiscreteDist = BernoulliDist{}
	_ Moments      = BernoulliDist{}
	_ BinomialLike = BernoulliDist{}
)

// NewBernoulliDist returns the Bernoulli distribution with success
// probability p, or a *DomainError if p is not in [0, 1].
func NewBernoulliDist(p float64) (BernoulliDist, error) {
	d := BernoulliDist{P: p}
	if err := d.Validate(); err != nil {
		return BernoulliDist{}, err
	}
	return d, nil
}

func (d BernoulliDist) Validate() error {
	return d.Binomial().Validate()
}

// Binomial returns d as B(1, d.P).
func (d BernoulliDist) Binomial() BinomialDist {
	return BinomialDist{N: 1, P: d.P}
}

func (d BernoulliDist) PMF(k float64) float64 { return d.Binomial().PMF(k) }
func (d BernoulliDist) CDF(k float64) float64 { return d.Binomial().CDF(k) }
func (d BernoulliDist) Bounds() (float64, float64) { return 0, 1 }
func (d BernoulliDist) Step() float64 { return 1 }
func (d BernoulliDist) Mean() float64 { return d.P }
func (d BernoulliDist) Variance() float64 { return d.P * (1 - d.P) }
func (d BernoulliDist) StdDev() float64 { return d.Binomial().StdDev() }

func (d BernoulliDist) String() string {
	return fmt.Sprintf("X ~ Be(p=%v)", d.P)
}
