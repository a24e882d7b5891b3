// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// All scalar arithmetic here operates on signed int16/int32 values using
// Go's well-defined wraparound two's-complement semantics; there is no
// undefined signed-overflow behavior to guard against here.

const (
	// qInvNeg is q^-1 mod 2^16 (62209) as a signed int16, used by
	// montgomeryReduce. R = 2^16.
	qInvNeg int16 = -3327

	// barrettV is round(2^26 / q), used by barrettReduce.
	barrettV int32 = 20159

	// montF is 2^32 mod q times 128^-1 mod q (the 7-layer inverse
	// transform scales by 2^7), i.e. the scaling factor folded into the
	// end of invntt (see ntt.go).
	montF int16 = 1441
)

// montgomeryReduce computes t congruent to a*R^-1 (mod q) with R = 2^16,
// returning a signed value with |t| <= q.
func montgomeryReduce(a int32) int16 {
	u := int16(a) * qInvNeg
	t := a - int32(u)*q
	t >>= 16
	return int16(t)
}

// barrettReduce computes the signed canonical representative of a mod q:
// a result r with |r| <= q/2 (r may be +-q at the boundary).
func barrettReduce(a int16) int16 {
	t := (barrettV*int32(a) + (1 << 25)) >> 26
	t *= q
	return a - int16(t)
}

// fqmul computes montgomeryReduce(a*b).
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// toMont converts a from the standard domain to Montgomery form, i.e.
// computes a*R mod q (signed canonical).
func toMont(a int16) int16 {
	const r2ModQ int32 = 1353 // R^2 mod q
	return montgomeryReduce(int32(a) * r2ModQ)
}
