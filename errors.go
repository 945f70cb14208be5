package ringsig

import "errors"

// Sentinel errors, one per row of the error table: malformed input is
// always reported through one of these, wrapped with fmt.Errorf("%w: ...")
// when more detail is available.
var (
	// ErrParsePubkey means a one-line ssh-ed25519 public key string did
	// not parse: wrong algorithm name, wrong key length, or a key blob
	// that isn't valid base64/SSH wire format.
	ErrParsePubkey = errors.New("ringsig: malformed ssh-ed25519 public key line")

	// ErrParseSeckey means the OpenSSH PEM private key container did not
	// parse, or was passphrase-protected.
	ErrParseSeckey = errors.New("ringsig: malformed or encrypted OpenSSH private key")

	// ErrInvalidPoint means a 32-byte string did not decode to a valid,
	// canonically-encoded point on the Ed25519 curve, or (for a signer's
	// own key) decoded to a point of small order.
	ErrInvalidPoint = errors.New("ringsig: invalid or non-canonical curve point")

	// ErrSignerNotInRing means the secret key's public key does not
	// match any entry in the supplied ring.
	ErrSignerNotInRing = errors.New("ringsig: signer's public key not found in ring")

	// ErrParseSig means the signature's hex/byte encoding could not be
	// parsed: odd length, length not a multiple of 32, or a scalar that
	// is not canonically reduced.
	ErrParseSig = errors.New("ringsig: malformed signature encoding")

	// ErrSigMismatch means the signature parsed correctly but the
	// challenge chain did not close.
	ErrSigMismatch = errors.New("ringsig: signature does not verify")

	// ErrRNGFailure means the system's cryptographically secure random
	// source failed to produce randomness.
	ErrRNGFailure = errors.New("ringsig: random source failed")

	// ErrEmptyRing means a ring with zero members was supplied; spec
	// requires at least one entry.
	ErrEmptyRing = errors.New("ringsig: ring must contain at least one public key")

	// ErrRingSizeMismatch means a parsed signature's implied ring size
	// (len/32 - 1) does not match the number of public keys supplied.
	ErrRingSizeMismatch = errors.New("ringsig: signature ring size does not match supplied ring")
)

// errorString returns "" for a nil error and err.Error() otherwise, giving
// the (value, error-string) shape spec.md §4.6 requires of Prove/Verify.
func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
