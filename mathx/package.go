// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions and numeric helpers
// shared by the distributions in package stats.
package mathx // import "github.com/randvar/go-randvar/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
