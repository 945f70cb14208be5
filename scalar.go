package ringsig

import (
	"crypto/rand"
	"crypto/sha512"

	"github.com/agl/ed25519/edwards25519"
)

// Scalar is an element of Z/L, where L = 2^252 +
// 27742317777372353535851937790883648493 is the order of the Ed25519 prime
// order subgroup. It is encoded as 32 little-endian bytes.
type Scalar [32]byte

// scalarOrder is L itself, little-endian. Used for canonical-range checks
// and to form L-1 in negate. (The small-order test in point.go multiplies
// by the cofactor 8, not by L.)
var scalarOrder = Scalar{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// Bytes returns a pointer to the scalar's 32 little-endian bytes, matching
// the *[32]byte argument shape edwards25519's low-level functions expect.
func (s *Scalar) Bytes() *[32]byte {
	return (*[32]byte)(s)
}

// zero overwrites the scalar's bytes, used when wiping secret-derived
// scalars on every exit path.
func (s *Scalar) zero() {
	for i := range s {
		s[i] = 0
	}
}

// IsCanonical reports whether s is the unique representative of its
// residue class, i.e. its little-endian integer value is strictly less
// than L. Parsing a signature with a non-canonical scalar must fail.
func (s *Scalar) IsCanonical() bool {
	for i := 31; i >= 0; i-- {
		if s[i] < scalarOrder[i] {
			return true
		}
		if s[i] > scalarOrder[i] {
			return false
		}
	}
	return false // s == L, not canonical (must be < L)
}

// reduceWide computes s = in mod L, given a 64-byte wide integer. Used both to
// turn a SHA-512 digest into a uniformly distributed scalar and to
// wide-reduce 64 bytes of fresh randomness into a uniform nonce.
func reduceWide(in *[64]byte) (s Scalar) {
	edwards25519.ScReduce(s.Bytes(), in)
	return
}

// hashToScalar implements H(data) = SHA-512(data) mod L from spec.md §4.2.
func hashToScalar(data ...[]byte) Scalar {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var digest [64]byte
	h.Sum(digest[:0])
	return reduceWide(&digest)
}

// randomScalar draws a uniform element of Z/L from a cryptographically
// secure source, via a 64-byte read followed by a wide reduction — the
// standard rejection-free technique for avoiding modulo bias.
func randomScalar() (Scalar, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Scalar{}, ErrRNGFailure
	}
	s := reduceWide(&buf)
	return s, nil
}

// clamp applies the RFC 8032 clamping operation in place: clear the low 3
// bits, clear the top bit, set bit 254.
func clamp(b *[32]byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// clampedScalarFromSeed derives the secret scalar a = clamp(SHA-512(seed)[0:32])
// from a 32-byte Ed25519 seed, per spec.md §3.
func clampedScalarFromSeed(seed *[32]byte) Scalar {
	h := sha512.Sum512(seed[:])
	var a Scalar
	copy(a[:], h[:32])
	clamp(a.Bytes())
	return a
}

// negate returns -s mod L, computed as (L-1)*s + 0, i.e. multiplying by the
// scalar representing -1 mod L.
func (s *Scalar) negate() (res Scalar) {
	var negOne Scalar
	copy(negOne[:], scalarOrder[:])
	negOne[0]-- // L - 1, little-endian decrement of the low byte (never borrows: low byte is 0xed)
	var zero Scalar
	edwards25519.ScMulAdd(res.Bytes(), negOne.Bytes(), s.Bytes(), zero.Bytes())
	return
}

// mulAdd returns a*b + c (mod L).
func mulAdd(a, b, c *Scalar) (res Scalar) {
	edwards25519.ScMulAdd(res.Bytes(), a.Bytes(), b.Bytes(), c.Bytes())
	return
}

// mulBase returns a*B, the point obtained by multiplying the scalar by the
// Ed25519 base point.
func (s *Scalar) mulBase() (p Point) {
	edwards25519.GeScalarMultBase(&p.ge, s.Bytes())
	return
}
