package ringsig

import (
	"bytes"
	"testing"
)

func mustKeyPair(t *testing.T, seedByte byte) (*SecretKey, PublicKey) {
	t.Helper()
	var seed [32]byte
	for i := range seed {
		seed[i] = seedByte ^ byte(i)
	}
	scalar := clampedScalarFromSeed(&seed)
	pub := scalar.mulBase()
	sk := &SecretKey{seed: seed, scalar: scalar, pub: PublicKey{point: pub, encoded: pub.encode()}}
	return sk, sk.pub
}

// S1: a one-member ring; Verify accepts; the signature is exactly 64 bytes.
func TestSingleMemberRing(t *testing.T) {
	sk, pub := mustKeyPair(t, 0x01)
	ring := Ring{pub}
	skCopy := *sk

	sig, err := Prove(ring, []byte(""), &skCopy)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(sig.Bytes()) != 64 {
		t.Fatalf("expected 64-byte signature, got %d", len(sig.Bytes()))
	}
	if err := VerifySignature(sig, ring, []byte("")); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

// S2: a three-member ring; verifying against a permuted ring fails.
func TestRingOrderSensitivity(t *testing.T) {
	_, p1 := mustKeyPair(t, 0x02)
	sk, pa := mustKeyPair(t, 0x03)
	_, p3 := mustKeyPair(t, 0x04)

	ring := Ring{p1, pa, p3}
	skCopy := *sk
	sig, err := Prove(ring, []byte("msg"), &skCopy)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := VerifySignature(sig, ring, []byte("msg")); err != nil {
		t.Fatalf("Verify on original ring: %v", err)
	}

	swapped := Ring{p3, pa, p1}
	if err := VerifySignature(sig, swapped, []byte("msg")); err == nil {
		t.Fatal("expected verification to fail against a permuted ring")
	}
}

// S3: flipping the message invalidates the signature.
func TestMessageSensitivity(t *testing.T) {
	sk, pub := mustKeyPair(t, 0x05)
	ring := Ring{pub}
	skCopy := *sk
	sig, err := Prove(ring, []byte("hello"), &skCopy)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := VerifySignature(sig, ring, []byte("hellp")); err == nil {
		t.Fatal("expected verification to fail for a mutated message")
	}
}

// S4: a ring that does not contain the signer's key.
func TestSignerNotInRing(t *testing.T) {
	sk, _ := mustKeyPair(t, 0x06)
	_, other1 := mustKeyPair(t, 0x07)
	_, other2 := mustKeyPair(t, 0x08)

	ring := Ring{other1, other2}
	skCopy := *sk
	_, err := Prove(ring, []byte("msg"), &skCopy)
	if err != ErrSignerNotInRing {
		t.Fatalf("expected ErrSignerNotInRing, got %v", err)
	}
}

// Flipping any bit of the signature invalidates it.
func TestSignatureBitSensitivity(t *testing.T) {
	sk, pa := mustKeyPair(t, 0x09)
	_, p1 := mustKeyPair(t, 0x0a)
	_, p3 := mustKeyPair(t, 0x0b)
	ring := Ring{p1, pa, p3}
	skCopy := *sk
	sig, err := Prove(ring, []byte("confession"), &skCopy)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	raw := sig.Bytes()
	for _, bit := range []int{0, 31, 32, len(raw)*8 - 1} {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[bit/8] ^= 1 << (bit % 8)

		mutSig, err := ParseSignature(mutated, len(ring))
		if err != nil {
			// a flipped scalar can land non-canonical; that's also a failure, which is fine.
			continue
		}
		if err := VerifySignature(mutSig, ring, []byte("confession")); err == nil {
			t.Fatalf("bit %d flip unexpectedly still verifies", bit)
		}
	}
}

// Completeness over many ring sizes and signer positions.
func TestCompletenessAcrossRingSizes(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for pi := 0; pi < n; pi++ {
			ring := make(Ring, n)
			var sk *SecretKey
			for i := 0; i < n; i++ {
				if i == pi {
					sk, ring[i] = mustKeyPair(t, byte(0x40+n*8+i))
				} else {
					_, ring[i] = mustKeyPair(t, byte(0x40+n*8+i))
				}
			}
			skCopy := *sk
			sig, err := Prove(ring, []byte("ring completeness"), &skCopy)
			if err != nil {
				t.Fatalf("n=%d pi=%d: Prove: %v", n, pi, err)
			}
			if err := VerifySignature(sig, ring, []byte("ring completeness")); err != nil {
				t.Fatalf("n=%d pi=%d: Verify: %v", n, pi, err)
			}
		}
	}
}

// Two signatures by the same real signer over the same ring and message must not
// share any obviously derivable structure (anonymity is not something a
// unit test can prove, but repeated signing must at least produce distinct
// nonces/commitments every time).
func TestDistinctSignaturesAreUnlinkableInStructure(t *testing.T) {
	sk, pub := mustKeyPair(t, 0x0c)
	ring := Ring{pub}

	sk1 := *sk
	sig1, err := Prove(ring, []byte("m"), &sk1)
	if err != nil {
		t.Fatalf("Prove 1: %v", err)
	}
	sk2 := *sk
	sig2, err := Prove(ring, []byte("m"), &sk2)
	if err != nil {
		t.Fatalf("Prove 2: %v", err)
	}
	if bytes.Equal(sig1.Bytes(), sig2.Bytes()) {
		t.Fatal("two independent signatures over the same (ring, message) must not be identical")
	}
}

// Idempotent parse: serialize then deserialize reproduces the same bytes.
func TestSignatureRoundTrip(t *testing.T) {
	sk, pa := mustKeyPair(t, 0x0d)
	_, p1 := mustKeyPair(t, 0x0e)
	ring := Ring{p1, pa}
	skCopy := *sk
	sig, err := Prove(ring, []byte("roundtrip"), &skCopy)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	hexProof := sig.EncodeHex()
	parsed, err := DecodeSignatureHex(hexProof, len(ring))
	if err != nil {
		t.Fatalf("DecodeSignatureHex: %v", err)
	}
	if !bytes.Equal(sig.Bytes(), parsed.Bytes()) {
		t.Fatal("round-tripped signature bytes differ")
	}
}

// Secret-key zeroization: after Prove returns, the SecretKey's secret fields
// (seed and scalar) must be entirely zero.
func TestSecretKeyZeroizedAfterProve(t *testing.T) {
	sk, pub := mustKeyPair(t, 0x0f)
	ring := Ring{pub}
	skCopy := *sk
	if _, err := Prove(ring, []byte("zero me"), &skCopy); err != nil {
		t.Fatalf("Prove: %v", err)
	}

	var zeroSeed [32]byte
	var zeroScalar Scalar
	if skCopy.seed != zeroSeed {
		t.Fatal("seed was not zeroed")
	}
	if skCopy.scalar != zeroScalar {
		t.Fatal("scalar was not zeroed")
	}
}

func TestZeroizationOnSignerNotInRingPath(t *testing.T) {
	sk, _ := mustKeyPair(t, 0x10)
	_, other := mustKeyPair(t, 0x11)
	ring := Ring{other}
	skCopy := *sk
	if _, err := Prove(ring, []byte("x"), &skCopy); err != ErrSignerNotInRing {
		t.Fatalf("expected ErrSignerNotInRing, got %v", err)
	}
	var zeroSeed [32]byte
	if skCopy.seed != zeroSeed {
		t.Fatal("seed was not zeroed on the error path")
	}
}
