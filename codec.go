package ringsig

import "encoding/hex"

// Signature is an AOS ring signature: a starting challenge and one response
// scalar per ring member (spec.md §3).
type Signature struct {
	C0 Scalar
	S  []Scalar
}

// Bytes encodes the signature as c0 ‖ s0 ‖ s1 ‖ … ‖ s_{n-1}, 32
// little-endian bytes each, per spec.md §4.5.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 32*(len(sig.S)+1))
	copy(out[:32], sig.C0[:])
	for i, s := range sig.S {
		copy(out[32*(i+1):32*(i+2)], s[:])
	}
	return out
}

// EncodeHex returns the signature's wire encoding, lower-case hex with no
// whitespace, per spec.md §4.5.
func (sig *Signature) EncodeHex() string {
	return hex.EncodeToString(sig.Bytes())
}

// ParseSignature decodes a byte blob into a Signature, validating that its
// length is a positive multiple of 32 and that every scalar is canonically
// reduced. The caller-supplied ring size n is checked against the decoded
// size (n = len/32 - 1); no ring-size field is embedded in the wire format.
func ParseSignature(blob []byte, ringSize int) (Signature, error) {
	if len(blob) == 0 || len(blob)%32 != 0 {
		return Signature{}, ErrParseSig
	}
	n := len(blob)/32 - 1
	if n != ringSize {
		return Signature{}, ErrRingSizeMismatch
	}

	var sig Signature
	copy(sig.C0[:], blob[:32])
	if !sig.C0.IsCanonical() {
		return Signature{}, ErrParseSig
	}

	sig.S = make([]Scalar, n)
	for i := 0; i < n; i++ {
		copy(sig.S[i][:], blob[32*(i+1):32*(i+2)])
		if !sig.S[i].IsCanonical() {
			return Signature{}, ErrParseSig
		}
	}
	return sig, nil
}

// DecodeSignatureHex hex-decodes proof and parses it as a Signature against
// the given ring size.
func DecodeSignatureHex(proof string, ringSize int) (Signature, error) {
	blob, err := hex.DecodeString(proof)
	if err != nil {
		return Signature{}, ErrParseSig
	}
	return ParseSignature(blob, ringSize)
}
