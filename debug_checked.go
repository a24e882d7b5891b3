// debug_checked.go - Bound assertions for -tags mlkemdebug builds.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build mlkemdebug

package mlkem

import "fmt"

// debugAssertBound panics if any coeffs[i] falls outside [lo, hi]. Only
// compiled into builds tagged mlkemdebug; normal builds use the no-op
// in debug.go.
func debugAssertBound(coeffs []int16, lo, hi int16) {
	for i, c := range coeffs {
		if c < lo || c > hi {
			panic(fmt.Sprintf("mlkem: bound violation at index %d: %d not in [%d, %d]", i, c, lo, hi))
		}
	}
}

// debugAssertAbsBound panics if any |coeffs[i]| >= bound.
func debugAssertAbsBound(coeffs []int16, bound int16) {
	debugAssertBound(coeffs, -bound+1, bound-1)
}
