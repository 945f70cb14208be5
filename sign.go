package ringsig

// Prove produces an AOS ring signature (spec.md §4.3) over message for the
// given ring, using sk as the signer's secret key. sk.Public() must appear
// somewhere in ring; Prove locates it, walks every other ring position with
// freshly drawn randomness, and closes the ring at the signer's own
// position using sk's secret scalar.
//
// sk is zero-wiped before Prove returns, on every exit path.
func Prove(ring Ring, message []byte, sk *SecretKey) (sig Signature, err error) {
	defer sk.Zero()
	defer func() {
		if recover() != nil {
			sig, err = Signature{}, ErrInvalidPoint
		}
	}()

	n := len(ring)
	if n == 0 {
		return Signature{}, ErrEmptyRing
	}

	piIndex := ring.indexOf(sk.pub)
	if piIndex < 0 {
		return Signature{}, ErrSignerNotInRing
	}

	ringBytes := ring.bytes()

	u, err := randomScalar()
	if err != nil {
		return Signature{}, err
	}
	defer u.zero()

	commitPi := u.mulBase()
	commitPiEnc := commitPi.encode()

	s := make([]Scalar, n)

	idx := (piIndex + 1) % n
	c := challenge(ringBytes, message, commitPiEnc) // represents c_idx

	var c0 Scalar
	if idx == 0 {
		c0 = c
	}

	for idx != piIndex {
		si, err := randomScalar()
		if err != nil {
			return Signature{}, err
		}
		s[idx] = si

		negC := c.negate()
		rEnc := ring[idx].point.mulAddBase(&negC, &si)
		c = challenge(ringBytes, message, rEnc) // now represents c_{idx+1 mod n}

		idx = (idx + 1) % n
		if idx == 0 {
			c0 = c
		}
	}
	if piIndex == 0 {
		c0 = c
	}

	// c now holds c_π; close the ring using the secret scalar.
	s[piIndex] = mulAdd(&c, &sk.scalar, &u)

	return Signature{C0: c0, S: s}, nil
}
