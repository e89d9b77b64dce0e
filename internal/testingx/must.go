// Package testingx provides helpers for use with the testing package.
package testingx

import "testing"

// Must provides a concise way to handle a returned error in test setup that
// "should never happen"©.
//
// It is meant for fixture construction that can be presumed correct but
// technically may fail, such as decoding a source map literal the test itself
// spells out. It MUST NOT be used to check the condition a test is actually
// about, since it fails with a generic, nondescript message.
//
//	mustMap := testingx.Must[*sourcemaps.Map](t)
//	m := mustMap(sourcemaps.Decode(data, meta))
func Must[T any](t *testing.T) func(v T, err error) T {
	return func(v T, err error) T {
		if err != nil {
			t.Fatalf("Got: unexpected error: %s. Want: no error.", err)
		}
		return v
	}
}
