package ringsig

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// PublicKey is a ring member: a curve point plus its canonical encoding,
// kept side by side since the encoding is what gets hashed and compared
// throughout the protocol.
type PublicKey struct {
	point   Point
	encoded [32]byte
}

// SecretKey holds the material Prove needs to sign: the 32-byte seed, the
// derived clamped scalar, and the corresponding public key. It must never
// outlive a single Prove call; Zero wipes the seed and the scalar.
type SecretKey struct {
	seed   [32]byte
	scalar Scalar
	pub    PublicKey
}

// Public returns the secret key's corresponding public key.
func (sk *SecretKey) Public() PublicKey {
	return sk.pub
}

// Zero overwrites every byte of secret material in sk. Callers must invoke
// this on every exit path out of Prove, successful or not.
func (sk *SecretKey) Zero() {
	for i := range sk.seed {
		sk.seed[i] = 0
	}
	sk.scalar.zero()
}

// ParsePublicKeyLine decodes a one-line OpenSSH ed25519 public key, the
// form found in authorized_keys files and returned by GitHub's keys API:
// "ssh-ed25519 <base64> [comment]". Trailing whitespace-separated comments
// are accepted, per spec.md §4.1 and §9's resolved Open Question; the
// wire-format decode is delegated to golang.org/x/crypto/ssh, which already
// implements OpenSSH's authorized_keys syntax.
func ParsePublicKeyLine(line string) (PublicKey, error) {
	trimmed := strings.TrimSpace(line)
	rest := strings.TrimPrefix(trimmed, ssh.KeyAlgoED25519)
	if len(rest) == len(trimmed) || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return PublicKey{}, fmt.Errorf("%w: line does not start with %q followed by whitespace", ErrParsePubkey, ssh.KeyAlgoED25519)
	}

	out, _, _, _, err := ssh.ParseAuthorizedKey([]byte(trimmed))
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrParsePubkey, err)
	}
	if out.Type() != ssh.KeyAlgoED25519 {
		return PublicKey{}, fmt.Errorf("%w: unexpected key type %q", ErrParsePubkey, out.Type())
	}

	cryptoKey, ok := out.(ssh.CryptoPublicKey)
	if !ok {
		return PublicKey{}, fmt.Errorf("%w: key does not expose its raw bytes", ErrParsePubkey)
	}
	edKey, ok := cryptoKey.CryptoPublicKey().(ed25519.PublicKey)
	if !ok || len(edKey) != ed25519.PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: key string is not 32 bytes", ErrParsePubkey)
	}

	var raw [32]byte
	copy(raw[:], edKey)
	point, err := decodePoint(raw)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{point: point, encoded: raw}, nil
}

// ParseSecretKeyPEM decodes an unencrypted OpenSSH PEM-encapsulated ed25519
// private key, exactly as produced by `ssh-keygen -t ed25519` without a
// passphrase (spec.md §4.1, §6). The OpenSSH openssh-key-v1 container
// (ciphername/kdfname/kdfoptions, the two check integers, padding) is
// decoded by golang.org/x/crypto/ssh; this function adds the Ed25519-curve
// checks the container format itself does not know about: re-deriving the
// clamped scalar from the seed, confirming it reproduces the embedded
// public key, and rejecting a signer key of small order.
func ParseSecretKeyPEM(pemText string) (SecretKey, error) {
	raw, err := ssh.ParseRawPrivateKey([]byte(pemText))
	if err != nil {
		if _, ok := err.(*ssh.PassphraseMissingError); ok {
			return SecretKey{}, fmt.Errorf("%w: key is passphrase-protected", ErrParseSeckey)
		}
		return SecretKey{}, fmt.Errorf("%w: %v", ErrParseSeckey, err)
	}

	edKeyPtr, ok := raw.(*ed25519.PrivateKey)
	if !ok {
		return SecretKey{}, fmt.Errorf("%w: not an ed25519 key", ErrParseSeckey)
	}
	edKey := *edKeyPtr
	if len(edKey) != ed25519.PrivateKeySize {
		return SecretKey{}, fmt.Errorf("%w: not an ed25519 key", ErrParseSeckey)
	}

	var seed [32]byte
	copy(seed[:], edKey.Seed())

	scalar := clampedScalarFromSeed(&seed)
	derived := scalar.mulBase()

	var encodedPub [32]byte
	copy(encodedPub[:], edKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])

	if derived.encode() != encodedPub {
		scalar.zero()
		for i := range seed {
			seed[i] = 0
		}
		return SecretKey{}, fmt.Errorf("%w: seed does not derive the embedded public key", ErrParseSeckey)
	}
	if derived.isSmallOrder() {
		scalar.zero()
		for i := range seed {
			seed[i] = 0
		}
		return SecretKey{}, fmt.Errorf("%w: key has small order", ErrInvalidPoint)
	}

	return SecretKey{
		seed:   seed,
		scalar: scalar,
		pub:    PublicKey{point: derived, encoded: encodedPub},
	}, nil
}

// IsSecretKey reports whether text parses as an unencrypted OpenSSH ed25519
// secret key. It never panics: any parse failure, for any reason, yields
// false.
func IsSecretKey(text string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	sk, err := ParseSecretKeyPEM(text)
	if err != nil {
		return false
	}
	sk.Zero()
	return true
}
