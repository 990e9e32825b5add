// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Text is a Renderer that draws sideways ASCII charts, one row per
// point of the span.
type Text struct {
	W io.Writer
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{W: w}
}

const defaultWidth = 50

func (t *Text) Render(f func(float64) float64, span []float64, shape Shape, opts Options) error {
	if len(span) == 0 {
		return ErrEmptySpan
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	mark := opts.Mark
	if mark == 0 {
		switch shape {
		case Stick:
			mark = '#'
		case Curve:
			mark = '*'
		default:
			mark = '-'
		}
	}

	ys := make([]float64, len(span))
	for i, x := range span {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || y < 0 {
			y = 0
		}
		ys[i] = y
	}
	ymax := floats.Max(ys)

	w := bufio.NewWriter(t.W)
	if opts.Label != "" {
		fmt.Fprintln(w, opts.Label)
	}
	for i, x := range span {
		cols := 0
		if ymax > 0 {
			cols = int(math.Round(ys[i] / ymax * float64(width)))
		}
		fmt.Fprintf(w, "%8.4g %10.6g |%s\n", x, ys[i], bar(shape, mark, cols))
	}
	return w.Flush()
}

func bar(shape Shape, mark rune, cols int) string {
	switch shape {
	case Stick:
		return strings.Repeat(string(mark), cols)
	case Curve:
		if cols == 0 {
			return string(mark)
		}
		return strings.Repeat(" ", cols-1) + string(mark)
	}
	var b strings.Builder
	for i := 0; i < cols; i++ {
		if i%2 == 0 {
			b.WriteRune(mark)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}
