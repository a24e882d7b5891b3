// xof.go - SHAKE-based hash-layer wrappers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// shake128Rate is the SHAKE-128 sponge rate in bytes, ie the size of one
// squeeze block.
const shake128Rate = 168

// shake128State wraps a SHAKE-128 instance absorbing a single fixed
// input and then squeezing one rate-sized block at a time, the pattern
// rejUniform needs: absorb ρ‖i‖j once, then squeeze additional blocks
// only as rejection sampling demands them.
type shake128State struct {
	xof sha3.ShakeHash
}

// newShake128Absorb creates a SHAKE-128 instance and absorbs input.
func newShake128Absorb(input []byte) *shake128State {
	xof := sha3.NewShake128()
	xof.Write(input)
	return &shake128State{xof: xof}
}

// squeezeBlock reads len(out) bytes (normally one shake128Rate block)
// from the XOF.
func (s *shake128State) squeezeBlock(out []byte) {
	s.xof.Read(out)
}

// shake256 absorbs in and squeezes exactly len(out) bytes into out, a
// thin wrapper over sha3.ShakeSum256 for call-site consistency with
// shake128State and shake256x4 below.
func shake256(out, in []byte) {
	sha3.ShakeSum256(out, in)
}

// shake256x4 produces four independent SHAKE-256 streams, one per
// (out[i], in[i]) pair, each truncated/extended to len(out[i]) bytes.
// There is no SIMD-batched Keccak lane in the pure-Go ecosystem this
// package draws from, so the "x4" primitive here is four sequential
// sha3.NewShake256 streams; a native backend would replace this with a
// real 4-way permutation without changing the call contract.
func shake256x4(out [4][]byte, in [4][]byte) {
	for i := 0; i < 4; i++ {
		sha3.ShakeSum256(out[i], in[i])
	}
}
