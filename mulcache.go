// mulcache.go - Mul-cache precomputation for base multiplication.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// mulcacheComputeRef fills cache with the 128 a1*zeta products
// BaseMulAccumulate needs: for each degree-2 NTT block i, cache holds
// fqmul(a[4i+1], zetas[64+i]) and fqmul(a[4i+3], -zetas[64+i]). Every
// cache entry is bounded by q in absolute value when a is
// signed-canonical.
func mulcacheComputeRef(cache *[n / 2]int16, a *[n]int16) {
	for i := 0; i < n/4; i++ {
		cache[2*i+0] = fqmul(a[4*i+1], zetas[64+i])
		cache[2*i+1] = fqmul(a[4*i+3], -zetas[64+i])
	}
}
