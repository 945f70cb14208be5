package ringsig

// Ring is an ordered sequence of public keys that a signature is
// accountable to. The order is part of the signature's meaning: reordering
// a ring invalidates any signature produced against it (spec.md §3).
type Ring []PublicKey

// bytes concatenates the 32-byte canonical encodings of every ring member,
// in ring order, forming the ring_bytes prefix of the challenge transcript
// (spec.md §4.2).
func (r Ring) bytes() []byte {
	out := make([]byte, 0, 32*len(r))
	for _, pk := range r {
		enc := pk.encoded
		out = append(out, enc[:]...)
	}
	return out
}

// indexOf returns the position of pk within the ring, or -1 if absent.
func (r Ring) indexOf(pk PublicKey) int {
	for i, member := range r {
		if member.encoded == pk.encoded {
			return i
		}
	}
	return -1
}
