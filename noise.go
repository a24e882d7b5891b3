// noise.go - Noise polynomial generation via SHAKE-256 + CBD.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// extendSeed builds the SymSize+1-byte extended key seed‖nonce used by
// every noise-generation call below. The returned array holds secret seed
// material; each caller zeroes its copy once it has been absorbed.
func extendSeed(seed []byte, nonce byte) [SymSize + 1]byte {
	var extKey [SymSize + 1]byte
	copy(extKey[:SymSize], seed)
	extKey[SymSize] = nonce
	return extKey
}

// GetNoiseEta2 samples a polynomial with coefficients in [-eta2, eta2]
// from seed‖nonce via a single SHAKE-256 call followed by CBD.
func (p *Poly) GetNoiseEta2(seed []byte, nonce byte, eta2 int) {
	extKey := extendSeed(seed, nonce)

	buf := make([]byte, eta2*n/4)
	shake256(buf, extKey[:])
	cbd(&p.Coeffs, buf, eta2)

	for i := range buf {
		buf[i] = 0
	}
	for i := range extKey {
		extKey[i] = 0
	}
}

// GetNoiseEta1x4 samples four independent eta1-noise polynomials for
// four distinct nonces, using one batched shake256x4 call.
func GetNoiseEta1x4(r0, r1, r2, r3 *Poly, seed []byte, nonces [4]byte, eta1 int) {
	getNoiseBatch4(r0, r1, r2, r3, seed, nonces, eta1, eta1, eta1, eta1)
}

// GetNoiseEta2x4 samples four independent eta2-noise polynomials for
// four distinct nonces, using one batched shake256x4 call.
func GetNoiseEta2x4(r0, r1, r2, r3 *Poly, seed []byte, nonces [4]byte, eta2 int) {
	getNoiseBatch4(r0, r1, r2, r3, seed, nonces, eta2, eta2, eta2, eta2)
}

// GetNoiseEta1122x4 samples four noise polynomials: the first two with
// parameter eta1, the last two with eta2. When eta1 == eta2 all four
// share one shake256x4 batch; otherwise two eta1-width lanes and two
// eta2-width lanes are produced via four independent shake256 calls,
// since a single batched XOF call requires all four output lengths to
// match.
func GetNoiseEta1122x4(r0, r1, r2, r3 *Poly, seed []byte, nonces [4]byte, eta1, eta2 int) {
	getNoiseBatch4(r0, r1, r2, r3, seed, nonces, eta1, eta1, eta2, eta2)
}

// getNoiseBatch4 is the shared implementation behind the three 4-way
// noise entry points above: it always produces four polynomials with
// per-lane eta, batching the SHAKE-256 calls when all four etas match
// and falling back to four single-lane calls otherwise.
func getNoiseBatch4(r0, r1, r2, r3 *Poly, seed []byte, nonces [4]byte, eta0, eta1, eta2, eta3 int) {
	etas := [4]int{eta0, eta1, eta2, eta3}
	polys := [4]*Poly{r0, r1, r2, r3}

	extKeys := [4][SymSize + 1]byte{
		extendSeed(seed, nonces[0]),
		extendSeed(seed, nonces[1]),
		extendSeed(seed, nonces[2]),
		extendSeed(seed, nonces[3]),
	}
	defer func() {
		for i := range extKeys {
			for j := range extKeys[i] {
				extKeys[i][j] = 0
			}
		}
	}()

	if eta0 == eta1 && eta1 == eta2 && eta2 == eta3 {
		var bufs [4][]byte
		var in [4][]byte
		for i := range bufs {
			bufs[i] = make([]byte, eta0*n/4)
			in[i] = extKeys[i][:]
		}
		shake256x4(bufs, in)
		for i, p := range polys {
			cbd(&p.Coeffs, bufs[i], etas[i])
			for j := range bufs[i] {
				bufs[i][j] = 0
			}
		}
		return
	}

	for i, p := range polys {
		buf := make([]byte, etas[i]*n/4)
		shake256(buf, extKeys[i][:])
		cbd(&p.Coeffs, buf, etas[i])
		for j := range buf {
			buf[j] = 0
		}
	}
}
