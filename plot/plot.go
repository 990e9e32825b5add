// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws the mass, cumulative and expected-value shapes
// of distributions.
//
// The drawing itself is delegated to a Renderer. PMFShape, CDFShape
// and MeanShape are the scaffolding shared by every distribution:
// they pick the shape and a default label and hand the distribution's
// function to the renderer.
package plot // import "github.com/randvar/go-randvar/plot"

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptySpan is returned when asked to render over no points.
var ErrEmptySpan = errors.New("plot: empty span")

// Shape is the kind of graphic to draw.
type Shape int

const (
	// Stick draws a vertical stick at each point, as for a
	// probability mass function.
	Stick Shape = iota

	// Curve draws a mark at each point, as for a cumulative
	// distribution function.
	Curve

	// Line draws a dashed level line, as for an expected value.
	Line
)

func (s Shape) String() string {
	switch s {
	case Stick:
		return "stick"
	case Curve:
		return "curve"
	case Line:
		return "line"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Options are style settings passed through to a Renderer. Renderers
// interpret zero fields as their own defaults.
type Options struct {
	// Label is a title for the graphic.
	Label string

	// Width is the extent of the value axis, in renderer units.
	Width int

	// Mark is the glyph used to draw points.
	Mark rune
}

// An Option sets a field of Options.
type Option func(*Options)

func WithLabel(label string) Option { return func(o *Options) { o.Label = label } }
func WithWidth(width int) Option { return func(o *Options) { o.Width = width } }
func WithMark(mark rune) Option { return func(o *Options) { o.Mark = mark } }

// A Renderer draws f evaluated at each x in span.
type Renderer interface {
	Render(f func(float64) float64, span []float64, shape Shape, opts Options) error
}

// Span returns n evenly spaced points from lo to hi inclusive.
func Span(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// IntSpan returns the integers lo, lo+1, ..., hi as float64s.
func IntSpan(lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	return Span(float64(lo), float64(hi), hi-lo+1)
}

type pmfer interface {
	PMF(x float64) float64
}

type cdfer interface {
	CDF(x float64) float64
}

type meaner interface {
	Mean() float64
}

// PMFShape draws the probability mass function of d over span as
// sticks.
func PMFShape(r Renderer, d pmfer, span []float64, opts ...Option) error {
	return render(r, d, "pmf", d.PMF, span, Stick, opts)
}

// CDFShape draws the cumulative distribution function of d over span
// as a curve.
func CDFShape(r Renderer, d cdfer, span []float64, opts ...Option) error {
	return render(r, d, "cdf", d.CDF, span, Curve, opts)
}

// MeanShape draws the expected value of d as a constant line over
// span.
func MeanShape(r Renderer, d meaner, span []float64, opts ...Option) error {
	m := d.Mean()
	return render(r, d, "mean", func(float64) float64 { return m }, span, Line, opts)
}

func render(r Renderer, d any, what string, f func(float64) float64, span []float64, shape Shape, opts []Option) error {
	if len(span) == 0 {
		return ErrEmptySpan
	}
	var o Options
	if s, ok := d.(fmt.Stringer); ok {
		o.Label = what + " of " + s.String()
	}
	for _, opt := range opts {
		opt(&o)
	}
	return r.Render(f, span, shape, o)
}
