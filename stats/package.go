// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats models classical probability distributions and fits
// their parameters to target statistics.
package stats // import "github.com/randvar/go-randvar/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
