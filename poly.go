// poly.go - Polynomial in R_q = Z_q[X]/(X^n + 1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Poly is an element of R_q, represented as coeffs[0] + X*coeffs[1] + ...
// + X^(n-1)*coeffs[n-1]. Coefficients may be signed- or unsigned-canonical
// depending on the producing operation; each method below documents which
// it expects and which it produces.
type Poly struct {
	Coeffs [n]int16
}

// MulCache holds the 128 precomputed a1*zeta products that let
// BaseMulAccumulate skip one fqmul per degree-2 block, at the cost of
// computing this cache once per operand reused across many
// multiplications (eg: the public matrix row in a hot loop).
type MulCache struct {
	Coeffs [n / 2]int16
}

// Add sets p = a + b, coefficient-wise, without reducing. Grows the
// coefficient bound by one factor of q over the inputs; call Reduce
// before relying on p being canonical.
func (p *Poly) Add(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i] + b.Coeffs[i]
	}
}

// Sub sets p = a - b, coefficient-wise, without reducing.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i] - b.Coeffs[i]
	}
}

// Reduce maps every coefficient of p to its unsigned-canonical
// representative in [0, q), via a Barrett reduction followed by a
// conditional add of q.
func (p *Poly) Reduce() {
	for i := range p.Coeffs {
		p.Coeffs[i] = signedToUnsignedQ16(barrettReduce(p.Coeffs[i]))
	}
	debugAssertBound(p.Coeffs[:], 0, q-1)
}

// ToMont multiplies every coefficient of p by R mod q, converting a
// signed-canonical polynomial into Montgomery form in place.
func (p *Poly) ToMont() {
	for i := range p.Coeffs {
		p.Coeffs[i] = toMont(p.Coeffs[i])
	}
}

// NTT computes the forward number-theoretic transform of p in place.
// Input is assumed to be in normal order; output is in bit-reversed
// order, signed-canonical.
func (p *Poly) NTT() {
	backend.ntt(&p.Coeffs)
}

// InvNTT computes the inverse number-theoretic transform of p in place.
// Input is assumed to be in bit-reversed order; output is in normal
// order, signed-canonical, carrying one residual factor of R that a
// subsequent ToMont/Reduce absorbs as needed.
func (p *Poly) InvNTT() {
	backend.invntt(&p.Coeffs)
}

// ComputeMulCache precomputes the a1*zeta products used by
// BaseMulAccumulate, treating p as the operand that will be reused
// across many base multiplications (eg: a fixed matrix row).
func (c *MulCache) ComputeMulCache(p *Poly) {
	backend.mulcacheCompute(&c.Coeffs, &p.Coeffs)
	debugAssertAbsBound(c.Coeffs[:], q)
}

// basemulCached computes the degree-2 base multiplication
// r = a*b mod (X^2 - zeta), using a precomputed cache value in place of
// fqmul(a[1], b[1]*zeta). Bounds: if |a[i]| < q and |b[i]| < q, every
// |r[i]| < 2*q.
func basemulCached(r, a, b []int16, bCache int16) {
	r[0] = fqmul(a[1], bCache) + fqmul(a[0], b[0])
	r[1] = fqmul(a[0], b[1]) + fqmul(a[1], b[0])
}

// BaseMulAccumulate computes p += a*b in the NTT domain, using bCache
// (previously computed via b.ComputeMulCache) to save one fqmul per
// degree-2 block relative to a from-scratch base multiplication. Each
// call adds a term bounded by (-3q/2, 3q/2) to p; callers summing k such
// terms into the same p (eg: PointwiseAccumulate) are responsible for
// keeping k small enough that the running sum stays within int16 range
// (k <= 4 is safe) and for reducing p before relying on it elsewhere.
func (p *Poly) BaseMulAccumulate(a, b *Poly, bCache *MulCache) {
	var t Poly
	for i := 0; i < n/4; i++ {
		basemulCached(t.Coeffs[4*i:4*i+2], a.Coeffs[4*i:4*i+2], b.Coeffs[4*i:4*i+2], bCache.Coeffs[2*i])
		basemulCached(t.Coeffs[4*i+2:4*i+4], a.Coeffs[4*i+2:4*i+4], b.Coeffs[4*i+2:4*i+4], bCache.Coeffs[2*i+1])
	}
	debugAssertAbsBound(t.Coeffs[:], 3*q/2)
	for i := range p.Coeffs {
		p.Coeffs[i] += t.Coeffs[i]
	}
}

// ToBytes serializes p (assumed unsigned-canonical, every coefficient
// in [0, q)) into a 384-byte buffer, 12 bits per coefficient, packed
// little-endian.
func (p *Poly) ToBytes(r []byte) {
	debugAssertBound(p.Coeffs[:], 0, q-1)
	backend.tobytes(r, &p.Coeffs)
}

// toBytesRef is the portable ToBytes implementation: two coefficients
// packed into 3 bytes (24 bits) per iteration.
func toBytesRef(r []byte, a *[n]int16) {
	for i := 0; i < n/2; i++ {
		t0 := uint16(a[2*i])
		t1 := uint16(a[2*i+1])

		r[3*i+0] = byte(t0 & 0xff)
		r[3*i+1] = byte((t0 >> 8) | ((t1 << 4) & 0xf0))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// FromBytes deserializes a 384-byte buffer produced by ToBytes into p.
// Output coefficients are in [0, 4095] and are not reduced mod q; callers
// that need a canonical polynomial must call Reduce.
func (p *Poly) FromBytes(a []byte) {
	for i := 0; i < n/2; i++ {
		t0 := uint16(a[3*i+0])
		t1 := uint16(a[3*i+1])
		t2 := uint16(a[3*i+2])

		p.Coeffs[2*i+0] = int16(t0 | ((t1 << 8) & 0xfff))
		p.Coeffs[2*i+1] = int16((t1 >> 4) | (t2 << 4))
	}
}

// Compress compresses and serializes p (assumed unsigned-canonical) at
// width d bits per coefficient, into a d*n/8-byte buffer. d must be one
// of 4, 5, 10, 11.
func (p *Poly) Compress(r []byte, d int) {
	compressFn, ok := compressScalarByWidth[d]
	if !ok {
		panic("mlkem: compression width must be 4, 5, 10 or 11")
	}

	var t [8]uint16
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			t[j] = compressFn(p.Coeffs[8*i+j])
		}
		packCoeffs(r[d*i:d*(i+1)], t, d)
	}
}

// Decompress deserializes and decompresses a d*n/8-byte buffer produced
// by Compress into p. Output coefficients are unsigned-canonical. d must
// be one of 4, 5, 10, 11.
func (p *Poly) Decompress(a []byte, d int) {
	decompressFn, ok := decompressScalarByWidth[d]
	if !ok {
		panic("mlkem: compression width must be 4, 5, 10 or 11")
	}

	var t [8]uint16
	for i := 0; i < n/8; i++ {
		unpackCoeffs(&t, a[d*i:d*(i+1)], d)
		for j := 0; j < 8; j++ {
			p.Coeffs[8*i+j] = decompressFn(t[j])
		}
	}
}

var compressScalarByWidth = map[int]func(int16) uint16{
	4:  func(u int16) uint16 { return uint16(compressQ16(u)) },
	5:  func(u int16) uint16 { return uint16(compressQ32(u)) },
	10: compressQ1024,
	11: compressQ2048,
}

var decompressScalarByWidth = map[int]func(uint16) int16{
	4:  func(u uint16) int16 { return decompressQ16(uint8(u)) },
	5:  func(u uint16) int16 { return decompressQ32(uint8(u)) },
	10: decompressQ1024,
	11: decompressQ2048,
}

// packCoeffs packs 8 values, each d bits wide, into dst (d bytes),
// least-significant bit first, the same bit order poly.ToBytes uses.
func packCoeffs(dst []byte, vals [8]uint16, d int) {
	var acc uint32
	accBits, pos := 0, 0
	for _, v := range vals {
		acc |= uint32(v) << uint(accBits)
		accBits += d
		for accBits >= 8 {
			dst[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
}

// unpackCoeffs is the inverse of packCoeffs.
func unpackCoeffs(vals *[8]uint16, src []byte, d int) {
	var acc uint32
	accBits, pos := 0, 0
	mask := uint32(1)<<uint(d) - 1
	for i := range vals {
		for accBits < d {
			acc |= uint32(src[pos]) << uint(accBits)
			accBits += 8
			pos++
		}
		vals[i] = uint16(acc & mask)
		acc >>= uint(d)
		accBits -= d
	}
}

// FromMsg expands a 32-byte message into a polynomial, one coefficient
// per bit: bit 1 maps to q/2 (rounded), bit 0 maps to 0. Constant-time
// in the message bits via cmov16.
func (p *Poly) FromMsg(msg []byte) {
	const halfQ = int16((q + 1) / 2)
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			p.Coeffs[8*i+j] = 0
			bit := uint16((msg[i] >> uint(j)) & 1)
			cmov16(&p.Coeffs[8*i+j], halfQ, bit)
		}
	}
}

// ToMsg compresses p (assumed unsigned-canonical) to a 1-bit-per-
// coefficient, 32-byte message, the approximate inverse of FromMsg.
func (p *Poly) ToMsg(msg []byte) {
	for i := 0; i < n/8; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			msg[i] |= tomsgBit(p.Coeffs[8*i+j]) << uint(j)
		}
	}
}
