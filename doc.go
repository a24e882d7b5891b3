// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements the polynomial arithmetic core of ML-KEM
// (FIPS 203): serialization and compression, centered binomial and
// rejection sampling, the number-theoretic transform and its inverse,
// mul-cache base multiplication, and the constant-time scalar
// primitives these all build on.
//
// This package is a ring-arithmetic library, not a key encapsulation
// mechanism: it exposes Poly and PolyVec operations over R_q =
// Z_q[X]/(X^256+1) for q = 3329, parameterized by module rank k in
// {2, 3, 4} via MLKEM512, MLKEM768, and MLKEM1024. Composing these
// operations into the IND-CCA2 KEM (key generation, encapsulation,
// decapsulation) is left to a caller.
package mlkem
