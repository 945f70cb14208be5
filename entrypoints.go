package ringsig

// ProveLines is the string-level entrypoint matching spec.md §4.6's
// `prove(publicKeys, message, secretKey) → (proof, error)` contract: it
// parses publicKeys as one-line OpenSSH ed25519 keys, secretKeyPEM as an
// unencrypted OpenSSH PEM private key, and on success returns the
// hex-encoded signature with an empty error string. It never panics.
func ProveLines(publicKeys []string, message []byte, secretKeyPEM string) (proof string, errStr string) {
	defer func() {
		if recover() != nil {
			proof, errStr = "", ErrInvalidPoint.Error()
		}
	}()

	ring, err := parseRing(publicKeys)
	if err != nil {
		return "", errorString(err)
	}

	sk, err := ParseSecretKeyPEM(secretKeyPEM)
	if err != nil {
		return "", errorString(err)
	}

	sig, err := Prove(ring, message, &sk)
	if err != nil {
		return "", errorString(err)
	}
	return sig.EncodeHex(), ""
}

// VerifyLines is the string-level entrypoint matching spec.md §4.6's
// `verify(proof, publicKeys, message) → error` contract: empty string on
// acceptance, a human-readable reason otherwise. It never panics.
func VerifyLines(proof string, publicKeys []string, message []byte) (errStr string) {
	defer func() {
		if recover() != nil {
			errStr = ErrInvalidPoint.Error()
		}
	}()

	ring, err := parseRing(publicKeys)
	if err != nil {
		return errorString(err)
	}

	sig, err := DecodeSignatureHex(proof, len(ring))
	if err != nil {
		return errorString(err)
	}

	return errorString(VerifySignature(sig, ring, message))
}

// parseRing parses an ordered list of one-line OpenSSH ed25519 public keys
// into a Ring, preserving the caller's ordering exactly (spec.md §3).
func parseRing(lines []string) (Ring, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyRing
	}
	ring := make(Ring, len(lines))
	for i, line := range lines {
		pk, err := ParsePublicKeyLine(line)
		if err != nil {
			return nil, err
		}
		ring[i] = pk
	}
	return ring, nil
}
