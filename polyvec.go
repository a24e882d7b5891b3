// polyvec.go - Vector of ML-KEM polynomials (module rank k).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// PolyVec is a vector of k polynomials, the module-lattice analogue of a
// scalar in R_q.
type PolyVec struct {
	Polys []Poly
}

// newPolyVec allocates a zero-valued vector of k polynomials.
func newPolyVec(k int) PolyVec {
	return PolyVec{Polys: make([]Poly, k)}
}

// MulCacheVec is a vector of mul-caches, one per component of a PolyVec
// that will be reused across many base multiplications.
type MulCacheVec struct {
	Caches []MulCache
}

// newMulCacheVec allocates a zero-valued vector of k mul-caches.
func newMulCacheVec(k int) MulCacheVec {
	return MulCacheVec{Caches: make([]MulCache, k)}
}

// ComputeMulCache fills c with the per-component mul-caches of v.
func (c *MulCacheVec) ComputeMulCache(v *PolyVec) {
	for i := range v.Polys {
		c.Caches[i].ComputeMulCache(&v.Polys[i])
	}
}

// NTT applies the forward NTT to every component of v in place.
func (v *PolyVec) NTT() {
	for i := range v.Polys {
		v.Polys[i].NTT()
	}
}

// InvNTT applies the inverse NTT to every component of v in place.
func (v *PolyVec) InvNTT() {
	for i := range v.Polys {
		v.Polys[i].InvNTT()
	}
}

// Add sets v = a + b, component-wise, without reducing.
func (v *PolyVec) Add(a, b *PolyVec) {
	for i := range v.Polys {
		v.Polys[i].Add(&a.Polys[i], &b.Polys[i])
	}
}

// Reduce maps every coefficient of every component of v to its
// unsigned-canonical representative.
func (v *PolyVec) Reduce() {
	for i := range v.Polys {
		v.Polys[i].Reduce()
	}
}

// ToBytes serializes v, 12 bits per coefficient, component by component.
func (v *PolyVec) ToBytes(r []byte) {
	for i := range v.Polys {
		v.Polys[i].ToBytes(r[i*polyBytes:])
	}
}

// FromBytes deserializes a buffer produced by ToBytes into v.
func (v *PolyVec) FromBytes(a []byte) {
	for i := range v.Polys {
		v.Polys[i].FromBytes(a[i*polyBytes:])
	}
}

// Compress compresses and serializes v at width du bits per coefficient.
func (v *PolyVec) Compress(r []byte, du int) {
	step := du * n / 8
	for i := range v.Polys {
		v.Polys[i].Compress(r[i*step:], du)
	}
}

// Decompress deserializes and decompresses a buffer produced by Compress
// into v.
func (v *PolyVec) Decompress(a []byte, du int) {
	step := du * n / 8
	for i := range v.Polys {
		v.Polys[i].Decompress(a[i*step:], du)
	}
}

// PointwiseAccumulate computes p = sum_i a[i]*b[i] in the NTT domain,
// one Barrett reduction at the end rather than one per term, using the
// precomputed per-component mul-caches of b. Every intermediate
// accumulator value stays within int16 range for k <= 4: each term is
// bounded by 3q/2 in absolute value, and 4*3q/2 < 2^15.
func (p *Poly) PointwiseAccumulate(a, b *PolyVec, bCache *MulCacheVec) {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
	for i := range a.Polys {
		p.BaseMulAccumulate(&a.Polys[i], &b.Polys[i], &bCache.Caches[i])
	}
	p.Reduce()
}
