// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// nttRef computes the 7-layer negacyclic number-theoretic transform of a
// polynomial (256 coefficients) in place. Input is assumed signed-canonical;
// the transform traverses decreasing strides (layers 7..1, i.e. length
// 128..2), leaving the result in bit-reversed order, with a final Barrett
// reduction pass so every output coefficient is signed-canonical again.
func nttRef(r *[n]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
	for j := range r {
		r[j] = barrettReduce(r[j])
	}
}

// invnttRef computes the inverse of nttRef in place via the Gentleman-Sande
// butterfly, traversing the same zetas table in reverse. Input is assumed
// to be in bit-reversed order; output is in normal order, signed-canonical,
// and carries one residual factor of R until a caller
// applies toMont/reduce as needed.
func invnttRef(r *[n]int16) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = r[j+length] - t
				r[j+length] = fqmul(zeta, r[j+length])
			}
		}
	}
	for j := range r {
		r[j] = fqmul(r[j], montF)
	}
}
