package ringsig

// challenge computes c = H(ringBytes ‖ message ‖ R), the transcript layout
// fixed by spec.md §4.2. The ring is included so a signature cannot be
// replayed against a different ring; the message is unprefixed by design,
// since the ring and R already frame it; R chains one ring position to the
// next.
func challenge(ringBytes, message []byte, r [32]byte) Scalar {
	return hashToScalar(ringBytes, message, r[:])
}
