// kat_test.go - Known-answer and round-trip property tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario A: a message whose first byte is all ones and whose other
// bytes are zero expands to a polynomial whose first 8 coefficients are
// all (q+1)/2 and the rest are 0.
func TestKATScenarioAFromMsg(t *testing.T) {
	require := require.New(t)

	msg := make([]byte, SymSize)
	msg[0] = 0xff

	var p Poly
	p.FromMsg(msg)

	for i := 0; i < 8; i++ {
		require.Equal(int16((q+1)/2), p.Coeffs[i])
	}
	for i := 8; i < n; i++ {
		require.Equal(int16(0), p.Coeffs[i])
	}
}

// Scenario C: ToBytes of the polynomial with coefficients 0..255
// produces the documented little-endian 12-bit packing prefix.
func TestKATScenarioCToBytes(t *testing.T) {
	require := require.New(t)

	var p Poly
	for i := range p.Coeffs {
		p.Coeffs[i] = int16(i)
	}

	buf := make([]byte, polyBytes)
	p.ToBytes(buf)

	want := []byte{0x00, 0x10, 0x00, 0x02, 0x30, 0x00, 0x04, 0x50, 0x00}
	require.Equal(want, buf[:len(want)])
}

// Scenario F: ntt -> invntt -> reduce recovers tomont(reduce(p)). invntt's
// built-in tomont scaling leaves a bare round trip scaled by the
// Montgomery radix R relative to the input; that factor only cancels
// against the one BaseMulAccumulate introduces, not on its own (see
// TestBaseMulAccumulateCorrectness in poly_test.go).
func TestKATScenarioFNTTIdentity(t *testing.T) {
	require := require.New(t)

	p := randomUnsignedPoly(t)
	var want Poly
	want.Coeffs = p.Coeffs
	want.Reduce()
	want.ToMont()
	want.Reduce()

	p.NTT()
	p.InvNTT()
	p.Reduce()

	require.Equal(want.Coeffs, p.Coeffs)
}

// Round-trip property: Poly/PolyVec serialization survives a full
// compress/decompress/tobytes/frombytes cycle for every parameter set.
func TestPolyVecRoundTrip(t *testing.T) {
	for _, ps := range allParams {
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)

			v := ps.AllocPolyVec()
			for i := range v.Polys {
				v.Polys[i] = *randomUnsignedPoly(t)
			}

			buf := make([]byte, ps.PolyVecBytes())
			v.ToBytes(buf)

			v2 := ps.AllocPolyVec()
			v2.FromBytes(buf)
			for i := range v.Polys {
				require.Equal(v.Polys[i].Coeffs, v2.Polys[i].Coeffs)
			}

			cbuf := make([]byte, ps.PolyVecCompressedBytes())
			v.Compress(cbuf, ps.Du())

			v3 := ps.AllocPolyVec()
			v3.Decompress(cbuf, ps.Du())

			cbuf2 := make([]byte, ps.PolyVecCompressedBytes())
			v3.Compress(cbuf2, ps.Du())
			require.Equal(cbuf, cbuf2)
		})
	}
}

// PointwiseAccumulate sums k independent base multiplications into one
// polynomial; verified against k independent schoolbook products summed
// mod q (the same correctness oracle TestBaseMulAccumulateCorrectness in
// poly_test.go uses for a single base multiplication). This also
// exercises PointwiseAccumulate itself for every real module rank k.
func TestPointwiseAccumulateCorrectness(t *testing.T) {
	for _, ps := range allParams {
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)

			a := ps.AllocPolyVec()
			b := ps.AllocPolyVec()
			var sum [n]int32
			for i := range a.Polys {
				pa := randomUnsignedPoly(t)
				pb := randomUnsignedPoly(t)
				a.Polys[i] = *pa
				b.Polys[i] = *pb

				term := schoolbookMul(pa, pb)
				for j := range sum {
					sum[j] += int32(term.Coeffs[j])
				}
			}
			var want Poly
			for j := range want.Coeffs {
				want.Coeffs[j] = int16(((sum[j] % q) + q) % q)
			}

			a.NTT()
			b.NTT()

			cache := newMulCacheVec(ps.K())
			cache.ComputeMulCache(&b)

			var p Poly
			p.PointwiseAccumulate(&a, &b, &cache)
			p.InvNTT()
			p.Reduce()

			require.Equal(want.Coeffs, p.Coeffs)
		})
	}
}

// SampleMatrix produces a deterministic, in-bound k*k matrix from a
// public seed, and transposing swaps the (i, j) entries.
func TestSampleMatrixDeterministicAndTransposed(t *testing.T) {
	for _, ps := range allParams {
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)

			rho := make([]byte, SymSize)
			_, err := rand.Read(rho)
			require.NoError(err)

			a := ps.AllocMatrix()
			require.NoError(SampleMatrix(a, rho, false))

			aT := ps.AllocMatrix()
			require.NoError(SampleMatrix(aT, rho, true))

			for i := range a {
				for j := range a[i] {
					require.Equal(a[i][j].Coeffs, aT[j][i].Coeffs)
					for _, c := range a[i][j].Coeffs {
						require.GreaterOrEqual(int(c), 0)
						require.Less(int(c), q)
					}
				}
			}

			a2 := ps.AllocMatrix()
			require.NoError(SampleMatrix(a2, rho, false))
			require.Equal(a[0][0].Coeffs, a2[0][0].Coeffs)
		})
	}
}

// SampleMatrixCached must sample the identical matrix SampleMatrix does,
// plus a mul-cache per entry matching one computed separately via
// ComputeMulCache.
func TestSampleMatrixCachedMatchesSampleMatrix(t *testing.T) {
	for _, ps := range allParams {
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)

			rho := make([]byte, SymSize)
			_, err := rand.Read(rho)
			require.NoError(err)

			a := ps.AllocMatrix()
			require.NoError(SampleMatrix(a, rho, false))

			aCached := ps.AllocMatrix()
			cache := ps.AllocMatrixCache()
			require.NoError(SampleMatrixCached(aCached, cache, rho, false))

			for i := range a {
				for j := range a[i] {
					require.Equal(a[i][j].Coeffs, aCached[i][j].Coeffs)

					var want MulCache
					want.ComputeMulCache(&a[i][j])
					require.Equal(want.Coeffs, cache[i][j].Coeffs)
				}
			}
		})
	}
}
