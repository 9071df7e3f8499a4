package curve

import (
	"github.com/cronokirby/safenum"

	"github.com/nax-crypto/naxos-go/field"
)

// Oracle is a deliberately simple, non-constant-time implementation of the
// same curve arithmetic ScalarMult provides, built on safenum.Nat's
// arbitrary-precision modular arithmetic rather than the fixed-width field
// package. Tests use it to cross-check the constant-time co-Z ladder against
// an independently-written double-and-add reference, the same way the Go
// standard library checks its constant-time P-224/256/384/521
// implementations against the generic big.Int-based CurveParams.
//
// Oracle must never be used outside of tests: it leaks timing information
// proportional to the scalar's value.
type Oracle struct {
	p      *safenum.Modulus
	a, b   *safenum.Nat
	gx, gy *safenum.Nat
	words  int
}

// NewOracle builds an Oracle for c.
func NewOracle(c *Curve) *Oracle {
	pNat := elemToNat(&c.P, c.Words)
	return &Oracle{
		p:     safenum.ModulusFromNat(*pNat),
		a:     elemToNat(&c.A, c.Words),
		b:     elemToNat(&c.B, c.Words),
		gx:    elemToNat(&c.G.X, c.Words),
		gy:    elemToNat(&c.G.Y, c.Words),
		words: c.Words,
	}
}

func elemToNat(e *field.Elem, n int) *safenum.Nat {
	be := make([]byte, n*8)
	le := WordsToBytes(e, n)
	for i, bb := range le {
		be[len(be)-1-i] = bb
	}
	return new(safenum.Nat).SetBytes(be)
}

func natToElem(v *safenum.Nat, n int) field.Elem {
	be := v.Bytes()
	le := make([]byte, n*8)
	for i, bb := range be {
		idx := len(be) - 1 - i
		if idx < len(le) {
			le[idx] = bb
		}
	}
	return BytesToWords(le, n)
}

// IsOnCurve reports whether (x, y) satisfies y² = x³ - a·x + b mod p.
func (o *Oracle) IsOnCurve(p *Affine) bool {
	n := o.words
	x := elemToNat(&p.X, n)
	y := elemToNat(&p.Y, n)

	x3 := new(safenum.Nat).ModMul(x, x, o.p)
	x3.ModMul(x3, x, o.p)
	ax := new(safenum.Nat).ModMul(x, o.a, o.p)
	x3.ModSub(x3, ax, o.p)
	x3.ModAdd(x3, o.b, o.p)

	y2 := new(safenum.Nat).ModMul(y, y, o.p)
	return x3.Cmp(y2) == 0
}

func (o *Oracle) doubleJacobian(x, y, z *safenum.Nat) (*safenum.Nat, *safenum.Nat, *safenum.Nat) {
	delta := new(safenum.Nat).ModMul(z, z, o.p)
	gamma := new(safenum.Nat).ModMul(y, y, o.p)
	alpha := new(safenum.Nat).ModSub(x, delta, o.p)
	alpha2 := new(safenum.Nat).ModAdd(x, delta, o.p)
	alpha.ModMul(alpha, alpha2, o.p)
	alpha2.SetNat(alpha)
	alpha.ModAdd(alpha, alpha, o.p)
	alpha.ModAdd(alpha, alpha2, o.p)

	beta := alpha2.ModMul(x, gamma, o.p)

	x3 := new(safenum.Nat).ModMul(alpha, alpha, o.p)
	eight := new(safenum.Nat).SetUint64(8)
	beta8 := new(safenum.Nat).ModMul(beta, eight, o.p)
	x3.ModSub(x3, beta8, o.p)

	z3 := new(safenum.Nat).ModAdd(y, z, o.p)
	z3.ModMul(z3, z3, o.p)
	z3.ModSub(z3, gamma, o.p)
	z3.ModSub(z3, delta, o.p)

	beta.ModMul(beta, new(safenum.Nat).SetUint64(4), o.p)
	beta.ModSub(beta, x3, o.p)
	y3 := alpha.ModMul(alpha, beta, o.p)

	gamma.ModMul(gamma, gamma, o.p)
	gamma.ModMul(gamma, eight, o.p)
	y3.ModSub(y3, gamma, o.p)

	return x3, y3, z3
}

func (o *Oracle) addJacobian(x1, y1, z1, x2, y2, z2 *safenum.Nat) (*safenum.Nat, *safenum.Nat, *safenum.Nat) {
	if z1.EqZero() {
		return new(safenum.Nat).SetNat(x2), new(safenum.Nat).SetNat(y2), new(safenum.Nat).SetNat(z2)
	}
	if z2.EqZero() {
		return new(safenum.Nat).SetNat(x1), new(safenum.Nat).SetNat(y1), new(safenum.Nat).SetNat(z1)
	}

	z1z1 := new(safenum.Nat).ModMul(z1, z1, o.p)
	z2z2 := new(safenum.Nat).ModMul(z2, z2, o.p)

	u1 := new(safenum.Nat).ModMul(x1, z2z2, o.p)
	u2 := new(safenum.Nat).ModMul(x2, z1z1, o.p)
	h := new(safenum.Nat).ModSub(u2, u1, o.p)
	xEqual := h.EqZero()
	i := new(safenum.Nat).ModAdd(h, h, o.p)
	i.ModMul(i, i, o.p)
	j := new(safenum.Nat).ModMul(h, i, o.p)

	s1 := new(safenum.Nat).ModMul(y1, z2, o.p)
	s1.ModMul(s1, z2z2, o.p)
	s2 := new(safenum.Nat).ModMul(y2, z1, o.p)
	s2.ModMul(s2, z1z1, o.p)
	r := new(safenum.Nat).ModSub(s2, s1, o.p)
	yEqual := r.EqZero()
	if xEqual && yEqual {
		return o.doubleJacobian(x1, y1, z1)
	}

	r.ModAdd(r, r, o.p)
	v := new(safenum.Nat).ModMul(u1, i, o.p)

	x3 := new(safenum.Nat).SetNat(r)
	x3.ModMul(x3, x3, o.p)
	x3.ModSub(x3, j, o.p)
	x3.ModSub(x3, v, o.p)
	x3.ModSub(x3, v, o.p)

	y3 := new(safenum.Nat).SetNat(r)
	v.ModSub(v, x3, o.p)
	y3.ModMul(y3, v, o.p)
	s1.ModMul(s1, j, o.p)
	s1.ModAdd(s1, s1, o.p)
	y3.ModSub(y3, s1, o.p)

	z3 := new(safenum.Nat).ModAdd(z1, z2, o.p)
	z3.ModMul(z3, z3, o.p)
	z3.ModSub(z3, z1z1, o.p)
	z3.ModSub(z3, z2z2, o.p)
	z3.ModMul(z3, h, o.p)

	return x3, y3, z3
}

func (o *Oracle) affineFromJacobian(x, y, z *safenum.Nat) Affine {
	if z.EqZero() {
		return Affine{}
	}
	zinv := new(safenum.Nat).ModInverse(z, o.p)
	zinvsq := new(safenum.Nat).ModMul(zinv, zinv, o.p)

	xOut := new(safenum.Nat).ModMul(x, zinvsq, o.p)
	zinvsq.ModMul(zinvsq, zinv, o.p)
	yOut := new(safenum.Nat).ModMul(y, zinvsq, o.p)

	return Affine{X: natToElem(xOut, o.words), Y: natToElem(yOut, o.words)}
}

// ScalarMult computes k*P by straightforward double-and-add over Jacobian
// coordinates, with no attempt at a constant operation count.
func (o *Oracle) ScalarMult(k *field.Elem, p *Affine) Affine {
	n := o.words
	bx := elemToNat(&p.X, n)
	by := elemToNat(&p.Y, n)
	bz := new(safenum.Nat).SetUint64(1)

	x := new(safenum.Nat)
	y := new(safenum.Nat)
	z := new(safenum.Nat)

	bitLen := field.BitLen(k, n)
	for i := bitLen - 1; i >= 0; i-- {
		x, y, z = o.doubleJacobian(x, y, z)
		if field.Bit(k, i) == 1 {
			x, y, z = o.addJacobian(bx, by, bz, x, y, z)
		}
	}

	return o.affineFromJacobian(x, y, z)
}

// ScalarBaseMult computes k*G.
func (o *Oracle) ScalarBaseMult(k *field.Elem) Affine {
	return o.ScalarMult(k, &Affine{X: natToElem(o.gx, o.words), Y: natToElem(o.gy, o.words)})
}
