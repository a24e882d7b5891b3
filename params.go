// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size of a shared key, seed, and message, in bytes.
	SymSize = 32

	n = 256
	q = 3329

	// polyBytes is the size of a poly.toBytes() encoding (12 bits/coeff).
	polyBytes = 384
)

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which targets security
	// category 1 (roughly equivalent to AES-128).
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set, which targets security
	// category 3 (roughly equivalent to AES-192).
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which targets security
	// category 5 (roughly equivalent to AES-256).
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an ML-KEM parameter set, fixing the module rank k, the
// noise parameters eta1/eta2, and the ciphertext compression widths du/dv.
//
// ParameterSet only carries the polynomial-layer sizes; the key/ciphertext
// framing of the IND-CCA KEM composition is out of scope for this package.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecBytes           int
	polyVecCompressedBytes int
	polyCompressedBytes    int
}

// Name returns the name of the parameter set.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank k.
func (p *ParameterSet) K() int {
	return p.k
}

// Eta1 returns the CBD parameter used for the secret and "first" noise
// vectors.
func (p *ParameterSet) Eta1() int {
	return p.eta1
}

// Eta2 returns the CBD parameter used for the "second" noise vectors.
func (p *ParameterSet) Eta2() int {
	return p.eta2
}

// Du returns the compression width (in bits) used for the polynomial
// vector half of a ciphertext.
func (p *ParameterSet) Du() int {
	return p.du
}

// Dv returns the compression width (in bits) used for the single
// polynomial half of a ciphertext.
func (p *ParameterSet) Dv() int {
	return p.dv
}

// PolyVecBytes returns the size, in bytes, of an uncompressed (toBytes)
// serialized polynomial vector.
func (p *ParameterSet) PolyVecBytes() int {
	return p.polyVecBytes
}

// PolyVecCompressedBytes returns the size, in bytes, of a Du-compressed
// serialized polynomial vector.
func (p *ParameterSet) PolyVecCompressedBytes() int {
	return p.polyVecCompressedBytes
}

// PolyCompressedBytes returns the size, in bytes, of a Dv-compressed
// serialized polynomial.
func (p *ParameterSet) PolyCompressedBytes() int {
	return p.polyCompressedBytes
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	switch k {
	case 2, 3, 4:
	default:
		panic("mlkem: k must be in {2,3,4}")
	}
	switch du {
	case 10, 11:
	default:
		panic("mlkem: du must be in {10,11}")
	}
	switch dv {
	case 4, 5:
	default:
		panic("mlkem: dv must be in {4,5}")
	}

	var p ParameterSet
	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecBytes = k * polyBytes
	p.polyVecCompressedBytes = k * du * n / 8
	p.polyCompressedBytes = dv * n / 8

	return &p
}

// AllocPolyVec returns a zero-valued polynomial vector sized for this
// parameter set's module rank k.
func (p *ParameterSet) AllocPolyVec() PolyVec {
	return newPolyVec(p.k)
}
