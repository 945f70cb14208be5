// Package ringsig implements the cryptographic core of Credible Confessions:
// a linkable-free AOS ring signature scheme over the Ed25519 curve.
//
// A signer holding the secret key for one member of a declared set of
// public keys (the ring) can produce a signature on a message such that any
// verifier is convinced some ring member signed it, without learning which
// one. No ring member can deny membership, and nobody but the real signer
// can forge a valid signature for the ring.
//
// The package exposes three operations — Prove, VerifySignature, and IsSecretKey —
// plus parsers for OpenSSH-formatted ed25519 keys: the one-line
// authorized_keys form for public keys, and the unencrypted PEM-encapsulated
// OpenSSH private key format for secret keys.
//
// The scheme provides no linkability: two signatures produced by the same
// signer over different rings or messages cannot be tied together. It does
// not encrypt messages, authenticate ring members to each other, or prevent
// reuse of a key across multiple rings.
package ringsig
