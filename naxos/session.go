package naxos

import (
	"github.com/nax-crypto/naxos-go/curve"
	"github.com/nax-crypto/naxos-go/hash"
)

// DeriveSessionKeyInitiator computes the initiator's session key once the
// responder's ephemeral point Y has arrived on the wire:
//
//	kA = H(x(Y*skA), x(pkB*hA), x(Y*hA), idA, idB)
//
// where hA is self's own ephemeral exponent. peerStaticX/Y is the
// responder's long-term public key, received and validated here exactly as
// the reference's calculateKa validates it before use.
func DeriveSessionKeyInitiator(
	self *StaticKeyPair,
	selfEphemeral *EphemeralState,
	peerStaticX, peerStaticY []byte,
	peerEphemeralX, peerEphemeralY []byte,
	idA, idB []byte,
	hasher hash.Hasher,
) ([]byte, error) {
	c, err := curve.Select(self.BitSize)
	if err != nil {
		return nil, err
	}

	pkB, err := c.AffineFromBytes(peerStaticX, peerStaticY)
	if err != nil {
		return nil, ErrPeerStaticNotReduced
	}
	if !c.OnCurve(&pkB) {
		return nil, ErrPeerStaticOffCurve
	}

	y, err := c.AffineFromBytes(peerEphemeralX, peerEphemeralY)
	if err != nil {
		return nil, ErrPeerEphemeralNotReduced
	}
	if !c.OnCurve(&y) {
		return nil, ErrPeerEphemeralOffCurve
	}

	t1 := c.ScalarMult(&self.secret, &y)             // Y*skA
	t2 := c.ScalarMult(&selfEphemeral.exponent, &pkB) // pkB*hA
	t3 := c.ScalarMult(&selfEphemeral.exponent, &y)   // Y*hA

	if !c.OnCurve(&t1) || !c.OnCurve(&t2) || !c.OnCurve(&t3) {
		return nil, ErrInternalFault
	}

	msg := concatXCoords(c, idA, idB, &t1, &t2, &t3)
	return hasher.SessionKey(c.BitSize, msg)
}

// DeriveSessionKeyResponder computes the responder's session key once the
// initiator's ephemeral point X has arrived on the wire:
//
//	kB = H(x(pkA*hB), x(X*skB), x(X*hB), idA, idB)
//
// where hB is self's own ephemeral exponent. peerStaticX/Y is the
// initiator's long-term public key.
func DeriveSessionKeyResponder(
	self *StaticKeyPair,
	selfEphemeral *EphemeralState,
	peerStaticX, peerStaticY []byte,
	peerEphemeralX, peerEphemeralY []byte,
	idA, idB []byte,
	hasher hash.Hasher,
) ([]byte, error) {
	c, err := curve.Select(self.BitSize)
	if err != nil {
		return nil, err
	}

	pkA, err := c.AffineFromBytes(peerStaticX, peerStaticY)
	if err != nil {
		return nil, ErrPeerStaticNotReduced
	}
	if !c.OnCurve(&pkA) {
		return nil, ErrPeerStaticOffCurve
	}

	x, err := c.AffineFromBytes(peerEphemeralX, peerEphemeralY)
	if err != nil {
		return nil, ErrPeerEphemeralNotReduced
	}
	if !c.OnCurve(&x) {
		return nil, ErrPeerEphemeralOffCurve
	}

	t1 := c.ScalarMult(&selfEphemeral.exponent, &pkA) // pkA*hB
	t2 := c.ScalarMult(&self.secret, &x)               // X*skB
	t3 := c.ScalarMult(&selfEphemeral.exponent, &x)    // X*hB

	if !c.OnCurve(&t1) || !c.OnCurve(&t2) || !c.OnCurve(&t3) {
		return nil, ErrInternalFault
	}

	msg := concatXCoords(c, idA, idB, &t1, &t2, &t3)
	return hasher.SessionKey(c.BitSize, msg)
}

// concatXCoords builds the session-key input message: the x-coordinates of
// the three points, each ByteLen() bytes, in the order the caller computed
// them, followed by idA and idB. The identifiers are appended exactly as
// passed: their length is not checked, and they are not padded or truncated
// to ByteLen() bytes.
func concatXCoords(c *curve.Curve, idA, idB []byte, points ...*curve.Affine) []byte {
	byteLen := c.ByteLen()
	msg := make([]byte, 0, byteLen*len(points)+len(idA)+len(idB))
	for _, p := range points {
		x := curve.WordsToBytes(&p.X, c.Words)[:byteLen]
		msg = append(msg, x...)
	}
	msg = append(msg, idA...)
	msg = append(msg, idB...)
	return msg
}
