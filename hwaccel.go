// hwaccel.go - Pluggable backend hooks.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const implReference = "Reference"

// polyBackend is the set of operations that a platform-optimized backend
// (AArch64 Neon, AVX2, ...) may override; the portable scalar
// implementation is always available as the correctness oracle a native
// backend must match bit-exactly on every input within contract bounds.
// Only the portable backend ships in this package; the seam exists so a
// native backend is a drop-in rather than an architectural change.
type polyBackend struct {
	name string

	ntt             func(r *[n]int16)
	invntt          func(r *[n]int16)
	cbd2            func(r *[n]int16, buf []byte)
	cbd3            func(r *[n]int16, buf []byte)
	rejUniform      func(r []int16, buf []byte) int
	tobytes         func(out []byte, r *[n]int16)
	mulcacheCompute func(cache *[n / 2]int16, a *[n]int16)
}

func referenceBackend() polyBackend {
	return polyBackend{
		name:            implReference,
		ntt:             nttRef,
		invntt:          invnttRef,
		cbd2:            cbd2Ref,
		cbd3:            cbd3Ref,
		rejUniform:      rejUniformRef,
		tobytes:         toBytesRef,
		mulcacheCompute: mulcacheComputeRef,
	}
}

var (
	isHardwareAccelerated = false

	backend = referenceBackend()
)

func forceDisableHardwareAcceleration() {
	// For the benefit of testing, so that every backend supported by the
	// host can be exercised individually.
	isHardwareAccelerated = false
	backend = referenceBackend()
}

// IsHardwareAccelerated returns true iff the polynomial core will use a
// hardware-accelerated backend (eg: AVX2) instead of the portable scalar
// reference.
func IsHardwareAccelerated() bool {
	return isHardwareAccelerated
}

func init() {
	initHardwareAcceleration()
}
