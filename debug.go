// debug.go - No-op bound assertions for release builds.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build !mlkemdebug

package mlkem

// debugAssertBound is a no-op in release builds; compiled out entirely
// when the mlkemdebug build tag is absent.
func debugAssertBound(coeffs []int16, lo, hi int16) {}

// debugAssertAbsBound is a no-op in release builds.
func debugAssertAbsBound(coeffs []int16, bound int16) {}
