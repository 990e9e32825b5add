// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// A DomainError reports a parameter or target value that lies outside
// the set of values it must belong to.
type DomainError struct {
	Param  string  // name of the offending parameter or argument
	Value  float64 // the value given
	Domain string  // description of the valid values
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("stats: %s = %v not in %s", e.Param, e.Value, e.Domain)
}

// An UnderspecifiedError reports a fitting operation invoked with
// neither N nor P known.
type UnderspecifiedError struct {
	Op string
}

func (e *UnderspecifiedError) Error() string {
	return fmt.Sprintf("stats: fit %s: neither N nor P is known", e.Op)
}

// A RootFindError reports that fitting a parameter failed because no
// root could be bracketed or converged on. Err is the error from the
// mathx.ZeroFinder.
type RootFindError struct {
	Op  string
	Err error
}

func (e *RootFindError) Error() string {
	return fmt.Sprintf("stats: fit %s: %v", e.Op, e.Err)
}

func (e *RootFindError) Unwrap() error { return e.Err }
