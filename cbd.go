// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// loadLittleEndian32 loads 4 bytes into a uint32, little-endian.
func loadLittleEndian32(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// loadLittleEndian24 loads 3 bytes into a uint32, little-endian.
func loadLittleEndian24(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16
}

// cbd2Ref computes a polynomial with coefficients distributed according to
// the centered binomial distribution with parameter eta=2, given
// 2*n/4 = 128 uniformly random bytes. Each output coefficient is in
// [-2, 2].
func cbd2Ref(r *[n]int16, buf []byte) {
	for i := 0; i < n/8; i++ {
		t := loadLittleEndian32(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j+0)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			r[8*i+j] = a - b
		}
	}
}

// cbd3Ref computes a polynomial with coefficients distributed according to
// the centered binomial distribution with parameter eta=3, given
// 3*n/4 = 192 uniformly random bytes. Each output coefficient is in
// [-3, 3]. Only ML-KEM-512 uses eta1=3.
func cbd3Ref(r *[n]int16, buf []byte) {
	for i := 0; i < n/4; i++ {
		t := loadLittleEndian24(buf[3*i:])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := int16((d >> uint(6*j+0)) & 0x7)
			b := int16((d >> uint(6*j+3)) & 0x7)
			r[4*i+j] = a - b
		}
	}
}

// cbd computes the centered binomial distribution of parameter eta (2 or
// 3) over buf, via the currently selected backend.
func cbd(r *[n]int16, buf []byte, eta int) {
	switch eta {
	case 2:
		backend.cbd2(r, buf)
	case 3:
		backend.cbd3(r, buf)
	default:
		panic("mlkem: eta must be in {2,3}")
	}
}
