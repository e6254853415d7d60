// SPDX-License-Identifier: MIT
//
// File: hash.go
// Role: 64-bit content hashing of the (species, abundance) multiset.
// Scheme:
//   - Each pair packs into (Z<<16 | A, normalized abundance bits) and
//     feeds one of four independent lanes; lanes mix via mum (the high and
//     low halves of a 64x64 multiply, xored together). Four pairs advance
//     per round, the tail reuses lanes round-robin, and the digest folds
//     the lanes with the pair count so length is part of the identity.
//   - Abundance bits are normalized before mixing: -0.0 folds to +0.0 and
//     every NaN payload folds to one quiet pattern, so numerically
//     indistinguishable states hash identically.
//   - Insertion order never matters: pairs are consumed in the sorted
//     storage order, which registration history cannot influence.
//   - The quantized variant buckets finite abundances to round(y/eps)
//     so states equal up to eps share a digest.

package composition

import (
	"math"
	"math/bits"
)

// Lane seeds and mixing constants. Distinct odd 64-bit constants keep the
// four lanes decorrelated; hashFinal drives the output mix and quantTag
// separates the quantized digest family from the exact one.
const (
	hashLane0 = 0x9E3779B97F4A7C15
	hashLane1 = 0xC2B2AE3D27D4EB4F
	hashLane2 = 0x165667B19E3779F9
	hashLane3 = 0x27D4EB2F165667C5
	hashFinal = 0x2545F4914F6CDD1D
	quantTag  = 0x9FB21C651E98DF25

	// canonicalNaN is the quiet-NaN pattern all NaN payloads fold to.
	canonicalNaN = 0x7FF8000000000000
)

var lanePrimes = [4]uint64{hashLane0, hashLane1, hashLane2, hashLane3}

// mum is the core mixing primitive: the 128-bit product of a and b folded
// to 64 bits by xoring its halves.
func mum(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// normalizeBits folds -0.0 to +0.0 and every NaN to canonicalNaN, then
// returns the IEEE-754 bit pattern.
func normalizeBits(y float64) uint64 {
	if y == 0 {
		return 0
	}
	if math.IsNaN(y) {
		return canonicalNaN
	}
	return math.Float64bits(y)
}

// quantizeBits buckets a finite abundance to round(y/eps); non-finite
// values and a non-positive eps fall back to the exact normalized bits.
func quantizeBits(y, eps float64) uint64 {
	if eps <= 0 || math.IsNaN(y) || math.IsInf(y, 0) {
		return normalizeBits(y)
	}
	return uint64(int64(math.Round(y / eps)))
}

// packSpecies encodes a nuclide identity as Z<<16 | A.
func packSpecies(z, a int) uint64 {
	return uint64(uint32(z)<<16 | uint32(a&0xFFFF))
}

// digest runs the 4-lane mix over the composition's sorted pairs, with
// encode mapping each abundance to its mixed bit pattern. The seed enters
// both the lane states and the final fold: an even number of untouched
// seeded lanes would otherwise cancel it out of the xor combine, erasing
// eps from short (and empty) digests.
func (c *Composition) digest(seed uint64, encode func(float64) uint64) uint64 {
	lanes := lanePrimes
	if seed != 0 {
		for l := range lanes {
			lanes[l] ^= seed
		}
	}
	n := len(c.species)
	i := 0
	for ; i+4 <= n; i += 4 {
		for l := 0; l < 4; l++ {
			sp := c.species[i+l]
			w := packSpecies(sp.Z(), sp.A())
			lanes[l] = mum(lanes[l]^w, encode(c.ys[i+l])^lanePrimes[l])
		}
	}
	for ; i < n; i++ {
		l := i & 3
		sp := c.species[i]
		w := packSpecies(sp.Z(), sp.A())
		lanes[l] = mum(lanes[l]^w, encode(c.ys[i])^lanePrimes[l])
	}
	return mum(lanes[0]^lanes[1]^lanes[2]^lanes[3]^uint64(n)^seed, hashFinal)
}

// Hash returns the exact 64-bit content hash of the composition: equal
// species sets with numerically equal abundances hash equal regardless of
// registration order. The value is memoized until the next mutation.
func (c *Composition) Hash() uint64 {
	if c.cache.hash != nil {
		return *c.cache.hash
	}
	h := c.digest(0, normalizeBits)
	c.cache.hash = &h
	return h
}

// HashQuantized returns the content hash with finite abundances bucketed
// at resolution eps, so compositions equal up to eps collide on purpose.
// eps <= 0 degrades each element to its exact encoding, but the digest
// still carries eps and stays distinct from Hash(). Not memoized: eps is
// a free parameter.
func (c *Composition) HashQuantized(eps float64) uint64 {
	seed := mum(math.Float64bits(eps), quantTag)
	return c.digest(seed, func(y float64) uint64 {
		return quantizeBits(y, eps)
	})
}

// viewDigest mixes any view's All() sequence. Pair i feeds lane i mod 4,
// exactly the assignment of the unrolled Composition path, so the two
// agree whenever the sequences match.
func viewDigest(v View, seed uint64, encode func(float64) uint64) uint64 {
	lanes := lanePrimes
	if seed != 0 {
		for l := range lanes {
			lanes[l] ^= seed
		}
	}
	i := 0
	for sp, y := range v.All() {
		l := i & 3
		w := packSpecies(sp.Z(), sp.A())
		lanes[l] = mum(lanes[l]^w, encode(y)^lanePrimes[l])
		i++
	}
	return mum(lanes[0]^lanes[1]^lanes[2]^lanes[3]^uint64(i)^seed, hashFinal)
}

// HashOf returns the exact content hash of any view. A concrete
// *Composition serves its memo; other views pay a full digest over their
// iteration order.
func HashOf(v View) uint64 {
	if c, ok := v.(*Composition); ok {
		return c.Hash()
	}
	return viewDigest(v, 0, normalizeBits)
}

// HashQuantizedOf returns the eps-bucketed content hash of any view.
func HashQuantizedOf(v View, eps float64) uint64 {
	if c, ok := v.(*Composition); ok {
		return c.HashQuantized(eps)
	}
	seed := mum(math.Float64bits(eps), quantTag)
	return viewDigest(v, seed, func(y float64) uint64 {
		return quantizeBits(y, eps)
	})
}
