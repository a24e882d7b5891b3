// noise_test.go - Noise generation tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetNoiseEta2Bounds(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var p Poly
	p.GetNoiseEta2(seed, 0, 2)

	for _, c := range p.Coeffs {
		require.LessOrEqual(int(c), 2)
		require.GreaterOrEqual(int(c), -2)
	}
}

// Scenario E: GetNoiseEta2 against an all-zero 32-byte seed and nonce 0
// must reproduce the literal coefficient values of a SHAKE-256 + CBD
// computation done independently of this package's pipeline (computed
// directly from the seed||nonce extension and centered-binomial formula,
// the same way Scenario D's rejection-sampling values were derived, since no
// externally-published vector was available to cite verbatim).
func TestKATScenarioEGetNoiseEta2(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var p Poly
	p.GetNoiseEta2(seed, 0, 2)

	want := []int16{0, -2, 0, 2, -2, -2, 1, -1, 1, -1, 0, 2, 0, 0, 1, -1}
	require.Equal(want, p.Coeffs[:len(want)])
}

func TestGetNoiseEta2IsDeterministic(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var p1, p2 Poly
	p1.GetNoiseEta2(seed, 7, 2)
	p2.GetNoiseEta2(seed, 7, 2)
	require.Equal(p1.Coeffs, p2.Coeffs)

	var p3 Poly
	p3.GetNoiseEta2(seed, 8, 2)
	require.NotEqual(p1.Coeffs, p3.Coeffs)
}

func TestGetNoiseEta1x4MatchesSingleLane(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var r0, r1, r2, r3 Poly
	GetNoiseEta1x4(&r0, &r1, &r2, &r3, seed, [4]byte{0, 1, 2, 3}, 3)

	var want Poly
	want.GetNoiseEta2(seed, 0, 3)
	require.Equal(want.Coeffs, r0.Coeffs)

	want.GetNoiseEta2(seed, 2, 3)
	require.Equal(want.Coeffs, r2.Coeffs)
}

func TestGetNoiseEta1122x4SplitsParameters(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var r0, r1, r2, r3 Poly
	GetNoiseEta1122x4(&r0, &r1, &r2, &r3, seed, [4]byte{0, 1, 2, 3}, 3, 2)

	for _, c := range r0.Coeffs {
		require.LessOrEqual(int(c), 3)
		require.GreaterOrEqual(int(c), -3)
	}
	for _, c := range r2.Coeffs {
		require.LessOrEqual(int(c), 2)
		require.GreaterOrEqual(int(c), -2)
	}
}

func TestGetNoiseEta1122x4EqualEtasMatchesBatchedPath(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	var r0, r1, r2, r3 Poly
	GetNoiseEta1122x4(&r0, &r1, &r2, &r3, seed, [4]byte{0, 1, 2, 3}, 2, 2)

	var want0, want2 Poly
	GetNoiseEta2x4(&want0, &r1, &want2, &r3, seed, [4]byte{0, 1, 2, 3}, 2)
	require.Equal(want0.Coeffs, r0.Coeffs)
	require.Equal(want2.Coeffs, r2.Coeffs)
}
