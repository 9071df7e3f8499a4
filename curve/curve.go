// Package curve implements elliptic-curve arithmetic over the NIST prime
// fields NAXOS runs on: affine points, the co-Z Montgomery ladder for
// constant-time scalar multiplication, and the named-curve catalog.
//
// All curves here are short Weierstrass curves written in the source's sign
// convention, y² = x³ - a·x + b (mod p), with the stored "a" always the
// positive value that gets subtracted. Every NIST curve in this catalog has
// a = 3, equivalent to the standard a = -3 representation.
package curve

import "github.com/nax-crypto/naxos-go/field"

// Affine is a point in affine coordinates.
type Affine struct {
	X, Y field.Elem
}

// Curve is an immutable elliptic curve record, populated once by Select and
// read-only thereafter.
type Curve struct {
	Name    string
	BitSize int // 192, 224, 256, 384 or 521
	Words   int // ceil(BitSize/64)
	A, B, P field.Elem
	G       Affine
}

// ByteLen is the coordinate/scalar wire length for this curve, ceil(BitSize/8).
func (c *Curve) ByteLen() int {
	return (c.BitSize + 7) / 8
}

// OnCurve reports whether p satisfies y² ≡ x³ - a·x + b (mod P). This check
// gates only public-value validation (peer coordinates, derived points that
// must never be off-curve by construction), so it is not required to run in
// constant time, though the arithmetic it is built from already is.
func (c *Curve) OnCurve(p *Affine) bool {
	n := c.Words

	var x2, x3, ax, rhs, y2 field.Elem
	field.MulMod(&x2, &p.X, &p.X, &c.P, n)
	field.MulMod(&x3, &x2, &p.X, &c.P, n)
	field.MulMod(&ax, &p.X, &c.A, &c.P, n)
	field.SubMod(&rhs, &x3, &ax, &c.P, n)
	field.AddMod(&rhs, &rhs, &c.B, &c.P, n)
	field.MulMod(&y2, &p.Y, &p.Y, &c.P, n)

	return field.Cmp(&rhs, &y2, n) == 0
}

// jacobian is an internal projective point, X = x*Z², Y = y*Z³. It is never
// exported: the protocol layer only ever sees affine points, and the point
// at infinity is never represented here - ScalarMult's precondition is that
// k is nonzero and P is a valid curve point.
type jacobian struct {
	X, Y, Z field.Elem
}

func (c *Curve) affineFromJacobian(p *jacobian) Affine {
	n := c.Words

	var d, yy, xx field.Elem
	field.InvMod(&d, &p.Z, &c.P, n) // d = 1/Z
	field.MulMod(&yy, &d, &d, &c.P, n)
	field.MulMod(&xx, &yy, &p.X, &c.P, n)
	field.MulMod(&yy, &yy, &d, &c.P, n)
	field.MulMod(&yy, &yy, &p.Y, &c.P, n)

	return Affine{X: xx, Y: yy}
}
