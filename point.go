package ringsig

import (
	"github.com/agl/ed25519/edwards25519"
)

// Point is an element of the Ed25519 group, encoded per RFC 8032 as 32
// bytes: the y-coordinate little-endian with the sign bit of x folded into
// the MSB.
type Point struct {
	ge edwards25519.ExtendedGroupElement
}

// decodePoint parses the 32-byte canonical encoding of a curve point. It
// fails if the encoding is non-canonical or does not correspond to a point
// on the curve; it does not reject small-order points, since spec.md §3
// permits them as ring decoys.
func decodePoint(b [32]byte) (Point, error) {
	var p Point
	if !p.ge.FromBytes(&b) {
		return Point{}, ErrInvalidPoint
	}
	if p.encode() != b {
		// FromBytes accepts a handful of non-canonical encodings that
		// RFC 8032 forbids a verifier from accepting; re-encoding and
		// comparing catches them.
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// encode returns the point's canonical 32-byte encoding.
func (p *Point) encode() (out [32]byte) {
	p.ge.ToBytes(&out)
	return
}

// cofactorEight is the scalar 8, little-endian, used to test for torsion:
// the Ed25519 group's cofactor is 8, so a point has order dividing 8 (i.e.
// lies in the torsion subgroup) iff 8*p is the identity.
var cofactorEight = Scalar{8}

// isSmallOrder reports whether p has order dividing 8, i.e. lies in the
// torsion subgroup rather than the prime-order subgroup generated by B. It
// is computed as 8·p == identity: multiplying by the curve's cofactor
// kills p entirely when it is a torsion point, and leaves a nonzero
// multiple of B otherwise. Multiplying by the subgroup order ℓ instead
// would get this backwards — ℓ mod 8 = 5, so ℓ·T is nonzero for a genuine
// torsion point T, while ℓ·(a·B) is always the identity since B has order
// ℓ.
func (p *Point) isSmallOrder() bool {
	var zero [32]byte
	var result edwards25519.ProjectiveGroupElement
	edwards25519.GeDoubleScalarMultVartime(&result, cofactorEight.Bytes(), &p.ge, &zero)
	var enc [32]byte
	result.ToBytes(&enc)
	return enc == identityEncoding
}

// identityEncoding is the canonical encoding of the group identity (0, 1).
var identityEncoding = [32]byte{1}

// negate returns -p, flipping the sign of the x and t coordinates.
func (p *Point) negate() (out Point) {
	out = *p
	edwards25519.FeNeg(&out.ge.X, &out.ge.X)
	edwards25519.FeNeg(&out.ge.T, &out.ge.T)
	return
}

// mulAddBase computes a*p + b*B, where B is the Ed25519 base point. This is
// the shape both the prover's decoy commitments and the verifier's
// recomputed commitments need: R_i = s_i·B − c_i·P_i = (−c_i)·P_i + s_i·B.
func (p *Point) mulAddBase(a, b *Scalar) (out [32]byte) {
	var r edwards25519.ProjectiveGroupElement
	edwards25519.GeDoubleScalarMultVartime(&r, a.Bytes(), &p.ge, b.Bytes())
	r.ToBytes(&out)
	return
}
