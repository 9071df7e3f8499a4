package curve

import "github.com/nax-crypto/naxos-go/field"

// dblU is the co-Z initial point doubling (DBLU): given P with Z=1, it
// returns Q = 2P and R, a representation of P sharing Q's Z-coordinate, so a
// ladder can start from a matched co-Z pair.
func (c *Curve) dblU(p *jacobian) (q, r jacobian) {
	n := c.Words
	var t1, t2, t3, t4, t5, t6, t7, t8 field.Elem

	t1.Set(&p.X, n)
	t2.Set(&p.Y, n)
	field.MulMod(&t3, &t1, &t1, &c.P, n) // B = X1^2
	field.DoubleMod(&t4, &t3, &c.P, n)
	field.AddMod(&t4, &t4, &t3, &c.P, n) // 3B
	field.SubMod(&t4, &t4, &c.A, &c.P, n) // M = 3B - a
	field.MulMod(&t5, &t2, &t2, &c.P, n)  // E = Y1^2
	field.MulMod(&t6, &t5, &t5, &c.P, n)  // L = E^2
	field.AddMod(&t7, &t1, &t5, &c.P, n)
	field.MulMod(&t7, &t7, &t7, &c.P, n)
	field.SubMod(&t7, &t7, &t3, &c.P, n)
	field.SubMod(&t7, &t7, &t6, &c.P, n)
	field.DoubleMod(&t7, &t7, &c.P, n) // S = 2((X1+E)^2 - B - L)
	field.MulMod(&t3, &t4, &t4, &c.P, n) // M^2
	field.DoubleMod(&t8, &t7, &c.P, n)
	field.SubMod(&t3, &t3, &t8, &c.P, n) // X(2P) = M^2 - 2S
	field.SubMod(&t8, &t7, &t3, &c.P, n)
	field.MulMod(&t8, &t4, &t8, &c.P, n)
	field.DoubleMod(&t4, &t6, &c.P, n)
	field.DoubleMod(&t4, &t4, &c.P, n)
	field.DoubleMod(&t4, &t4, &c.P, n) // 8L
	field.SubMod(&t8, &t8, &t4, &c.P, n) // Y(2P)
	field.DoubleMod(&t6, &t2, &c.P, n)   // Z(2P) = 2Y1
	field.DoubleMod(&t1, &t1, &c.P, n)
	field.DoubleMod(&t1, &t1, &c.P, n)
	field.MulMod(&t1, &t1, &t5, &c.P, n) // X(P) = 4X1*E

	q.X.Set(&t3, n)
	q.Y.Set(&t8, n)
	q.Z.Set(&t6, n)
	r.X.Set(&t1, n)
	r.Y.Set(&t4, n)
	r.Z.Set(&t6, n)
	return q, r
}

// zAddC is the conjugate co-Z point addition: given P and Q sharing a
// Z-coordinate, it returns R = P+Q and S = P-Q sharing a (possibly new)
// Z-coordinate.
func (c *Curve) zAddC(p, q *jacobian) (r, s jacobian) {
	n := c.Words
	var t1, t2, t3, t4, t5, t6, t7 field.Elem

	t1.Set(&p.X, n)
	t2.Set(&p.Y, n)
	t3.Set(&p.Z, n)
	t4.Set(&q.X, n)
	t5.Set(&q.Y, n)

	field.SubMod(&t6, &t1, &t4, &c.P, n)
	field.MulMod(&t3, &t3, &t6, &c.P, n)
	field.MulMod(&t6, &t6, &t6, &c.P, n)
	field.MulMod(&t7, &t1, &t6, &c.P, n)
	field.MulMod(&t6, &t6, &t4, &c.P, n)
	field.AddMod(&t1, &t2, &t5, &c.P, n)
	field.MulMod(&t4, &t1, &t1, &c.P, n)
	field.SubMod(&t4, &t4, &t7, &c.P, n)
	field.SubMod(&t4, &t4, &t6, &c.P, n)
	field.SubMod(&t1, &t2, &t5, &c.P, n)
	field.MulMod(&t1, &t1, &t1, &c.P, n)
	field.SubMod(&t1, &t1, &t7, &c.P, n)
	field.SubMod(&t1, &t1, &t6, &c.P, n)
	field.SubMod(&t6, &t6, &t7, &c.P, n)
	field.MulMod(&t6, &t6, &t2, &c.P, n)
	field.SubMod(&t2, &t2, &t5, &c.P, n)
	field.DoubleMod(&t5, &t5, &c.P, n)
	field.AddMod(&t5, &t2, &t5, &c.P, n)
	field.SubMod(&t7, &t7, &t4, &c.P, n)
	field.MulMod(&t5, &t5, &t7, &c.P, n)
	field.AddMod(&t5, &t5, &t6, &c.P, n)
	field.AddMod(&t7, &t4, &t7, &c.P, n)
	field.SubMod(&t7, &t7, &t1, &c.P, n)
	field.MulMod(&t2, &t2, &t7, &c.P, n)
	field.AddMod(&t2, &t2, &t6, &c.P, n)

	r.X.Set(&t1, n)
	r.Y.Set(&t2, n)
	r.Z.Set(&t3, n)
	s.X.Set(&t4, n)
	s.Y.Set(&t5, n)
	s.Z.Set(&t3, n)
	return r, s
}

// zAddU is co-Z point addition with update: given P and Q sharing a
// Z-coordinate, it returns R = P+Q and an updated representation of P, both
// sharing R's new Z-coordinate.
func (c *Curve) zAddU(p, q *jacobian) (r, pOut jacobian) {
	n := c.Words
	var t1, t2, t3, t4, t5, t6 field.Elem

	t1.Set(&p.X, n)
	t2.Set(&p.Y, n)
	t3.Set(&p.Z, n)
	t4.Set(&q.X, n)
	t5.Set(&q.Y, n)

	field.SubMod(&t6, &t1, &t4, &c.P, n)
	field.MulMod(&t3, &t3, &t6, &c.P, n)
	field.MulMod(&t6, &t6, &t6, &c.P, n)
	field.MulMod(&t1, &t1, &t6, &c.P, n)
	field.MulMod(&t6, &t6, &t4, &c.P, n)
	field.SubMod(&t5, &t2, &t5, &c.P, n)
	field.MulMod(&t4, &t5, &t5, &c.P, n)
	field.SubMod(&t4, &t4, &t1, &c.P, n)
	field.SubMod(&t4, &t4, &t6, &c.P, n)
	field.SubMod(&t6, &t1, &t6, &c.P, n)
	field.MulMod(&t2, &t2, &t6, &c.P, n)
	field.SubMod(&t6, &t1, &t4, &c.P, n)
	field.MulMod(&t5, &t5, &t6, &c.P, n)
	field.SubMod(&t5, &t5, &t2, &c.P, n)

	r.X.Set(&t4, n)
	r.Y.Set(&t5, n)
	r.Z.Set(&t3, n)
	pOut.X.Set(&t1, n)
	pOut.Y.Set(&t2, n)
	pOut.Z.Set(&t3, n)
	return r, pOut
}

// ScalarMult computes k*P by a Montgomery ladder over the co-Z addition
// formulas above. It runs exactly BitLen(c.P) - 1 ladder steps regardless of
// k's own bit length: once the scalar's significant bits are exhausted, the
// loop keeps driving a parallel pair of scratch registers (S0, S1) through
// the identical sequence of zAddC/zAddU calls, so the number of field
// operations performed depends only on the curve, never on k.
//
// The caller must ensure 0 < k < c.P and that p is a valid point on the
// curve; ScalarMult does not itself validate either.
func (c *Curve) ScalarMult(k *field.Elem, p *Affine) Affine {
	n := c.Words

	order := field.BitLen(&c.P, n)
	kLen := field.BitLen(k, n)

	r0 := jacobian{X: p.X, Y: p.Y}
	r0.Z[0] = 1
	r1, r0Updated := c.dblU(&r0)
	r0 = r0Updated

	s0, s1 := r0, r1

	for i := order - 2; i >= 0; i-- {
		b := field.Bit(k, i)
		if i < kLen-1 {
			if b == 0 {
				r1, r0 = c.zAddC(&r0, &r1)
				r0, r1 = c.zAddU(&r1, &r0)
			} else {
				r0, r1 = c.zAddC(&r1, &r0)
				r1, r0 = c.zAddU(&r0, &r1)
			}
		} else {
			if b == 0 {
				s1, s0 = c.zAddC(&s0, &s1)
				s0, s1 = c.zAddU(&s1, &s0)
			} else {
				s0, s1 = c.zAddC(&s1, &s0)
				s1, s0 = c.zAddU(&s0, &s1)
			}
		}
	}

	return c.affineFromJacobian(&r0)
}
