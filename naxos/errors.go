package naxos

import "fmt"

// ProtocolError wraps one of the NAXOS session-key derivation failure codes.
// The numeric Code matches the reference protocol's own -1..-5 convention,
// preserved here for anyone cross-checking this implementation against it.
type ProtocolError struct {
	code int
	err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("naxos: %s (code %d)", e.err, e.code)
}

func (e *ProtocolError) Unwrap() error {
	return e.err
}

// Code returns the reference protocol's numeric error code for this failure.
func (e *ProtocolError) Code() int {
	return e.code
}

var (
	errPeerStaticNotReduced    = fmt.Errorf("peer static public key coordinate not reduced mod p")
	errPeerStaticOffCurve      = fmt.Errorf("peer static public key is not on the curve")
	errPeerEphemeralNotReduced = fmt.Errorf("peer ephemeral public key coordinate not reduced mod p")
	errPeerEphemeralOffCurve   = fmt.Errorf("peer ephemeral public key is not on the curve")
	errInternalFault           = fmt.Errorf("an intermediate point computed during key derivation is not on the curve")
)

// ErrPeerStaticNotReduced corresponds to reference error code -1: a peer's
// static public key coordinate was not strictly less than the curve prime.
var ErrPeerStaticNotReduced = &ProtocolError{code: -1, err: errPeerStaticNotReduced}

// ErrPeerStaticOffCurve corresponds to reference error code -2: a peer's
// static public key does not satisfy the curve equation.
var ErrPeerStaticOffCurve = &ProtocolError{code: -2, err: errPeerStaticOffCurve}

// ErrPeerEphemeralNotReduced corresponds to reference error code -3: a
// peer's ephemeral public key coordinate was not strictly less than the
// curve prime.
var ErrPeerEphemeralNotReduced = &ProtocolError{code: -3, err: errPeerEphemeralNotReduced}

// ErrPeerEphemeralOffCurve corresponds to reference error code -4: a peer's
// ephemeral public key does not satisfy the curve equation.
var ErrPeerEphemeralOffCurve = &ProtocolError{code: -4, err: errPeerEphemeralOffCurve}

// ErrInternalFault corresponds to reference error code -5: one of the three
// intermediate points computed during session-key derivation failed its
// on-curve check. This should never happen for correctly validated inputs
// and a correct curve implementation; it exists as a last-resort guard, the
// same way the reference treats it.
var ErrInternalFault = &ProtocolError{code: -5, err: errInternalFault}
