//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops.
//
// Not exactly idiomatic Go, but driver code full of unchecked register
// offsets benefits from cheap precondition checks during bringup.
package debug

// Guard assertions that are themselves expensive (i.e. anything that
// computes or allocates) with `if debug.Enabled {...}`, otherwise they can't
// be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
