// matrix.go - Public-matrix generation from a seed via rejection sampling.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// SampleMatrix deterministically expands a public seed rho into a k*k
// matrix of uniformly-sampled polynomials via rej_uniform over SHAKE-128
// output, one XOF absorb per (i, j) entry. When transposed is true, row
// i column j is sampled with the (i, j) byte suffix swapped, producing
// the transpose of the untransposed matrix without materializing both.
//
// rho must be SymSize bytes. Every operation here is on public data
// (per the module's side-channel contract, control flow depending on
// rho is permitted), so the implementation is not constant-time.
func SampleMatrix(a [][]Poly, rho []byte, transposed bool) error {
	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], rho)

	for i := range a {
		for j := range a[i] {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof := newShake128Absorb(extSeed[:])
			if err := rejUniform(&a[i][j].Coeffs, xof); err != nil {
				return err
			}
		}
	}
	return nil
}

// AllocMatrix allocates a k*k grid of zero-valued polynomials, sized for
// the given parameter set's module rank.
func (p *ParameterSet) AllocMatrix() [][]Poly {
	a := make([][]Poly, p.k)
	for i := range a {
		a[i] = make([]Poly, p.k)
	}
	return a
}

// AllocMatrixCache allocates a k*k grid of zero-valued mul-caches, sized
// to pair one-to-one with a matrix from AllocMatrix.
func (p *ParameterSet) AllocMatrixCache() [][]MulCache {
	c := make([][]MulCache, p.k)
	for i := range c {
		c[i] = make([]MulCache, p.k)
	}
	return c
}

// SampleMatrixCached samples the matrix exactly as SampleMatrix does, and
// additionally computes each entry's mul-cache. The sampled entries are
// already in the NTT domain (rej_uniform draws coefficients directly in
// NTT representation, per FIPS-203's SampleNTT), so the cache is ready to
// reuse immediately with PointwiseAccumulate/BaseMulAccumulate — useful
// when the same public matrix is multiplied against many secret/noise
// vectors, eg: across repeated encryptions under one public key, without
// recomputing ComputeMulCache on every call.
func SampleMatrixCached(a [][]Poly, cache [][]MulCache, rho []byte, transposed bool) error {
	if err := SampleMatrix(a, rho, transposed); err != nil {
		return err
	}
	for i := range a {
		for j := range a[i] {
			cache[i][j].ComputeMulCache(&a[i][j])
		}
	}
	return nil
}
