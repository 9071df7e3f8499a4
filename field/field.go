// Package field implements the constant-time multi-word arithmetic that the
// NAXOS curve layer is built on: modular add/sub/double/multiply and Fermat
// inversion over a prime field, operating on fixed-capacity limb arrays.
//
// Every exported function except Bit takes an explicit word count n and never
// reads or writes a limb at index n or above, so the same Elem capacity (sized for
// the largest supported curve, P-521) can back every curve's field without
// the smaller curves' arithmetic ever touching the unused high limbs.
//
// Earlier C implementations of this arithmetic kept their operation count
// data-independent by running every branch against a scratch buffer left
// uninitialized by the compiler - safe only because the result was
// discarded. This package instead uses explicit branchless selection
// (constant-time conditional move) over two always-computed,
// always-initialized values.
package field

import (
	"math/bits"

	"github.com/nax-crypto/naxos-go/zeroize"
)

// MaxWords is the number of 64-bit limbs needed for the largest supported
// curve, P-521 (521 bits -> 9 words of 64 bits, the top word carrying only
// 9 significant bits).
const MaxWords = 9

// Elem is a fixed-capacity, little-endian multi-word integer: Elem[0] is
// the least significant limb. Callers restrict operations to the curve's
// effective word count n; limbs at index >= n are never touched by the
// functions in this package and are not meaningful on their own.
type Elem [MaxWords]uint64

// SetZero sets z to zero across n limbs.
func (z *Elem) SetZero(n int) {
	for i := 0; i < n; i++ {
		z[i] = 0
	}
}

// Set copies a into z across n limbs.
func (z *Elem) Set(a *Elem, n int) {
	copy(z[:n], a[:n])
}

// Bit returns bit j of a (0 or 1), reading limb j/64 and masking.
func Bit(a *Elem, j int) uint64 {
	return (a[j/64] >> uint(j%64)) & 1
}

// BitLen returns the position-plus-one of the highest set bit of a, scanning
// all n*64 bit positions unconditionally so the iteration count never
// depends on a's value.
func BitLen(a *Elem, n int) int {
	result := 0
	for i := n - 1; i >= 0; i-- {
		w := a[i]
		for j := 63; j >= 0; j-- {
			if (w>>uint(j))&1 == 1 && result == 0 {
				result = i*64 + j + 1
			}
		}
	}
	return result
}

// Cmp performs a constant-time lexicographic comparison of a and b across n
// limbs, from the most significant limb down, and returns -1, 0 or +1. Both
// the "greater" and "lesser" accumulators are updated on every limb: neither
// branches away once the outcome is already known.
func Cmp(a, b *Elem, n int) int {
	var eq, g, l uint64 = 1, 0, 0
	for i := n - 1; i >= 0; i-- {
		same := b2u(a[i] == b[i])
		eq &= same
		notEq := 1 - eq
		g |= notEq & b2u(a[i] > b[i]) & (1 - l)
		l |= notEq & b2u(a[i] < b[i]) & (1 - g)
	}
	return int(g) - int(l)
}

func b2u(cond bool) uint64 {
	if cond {
		return 1
	}
	return 0
}

// Select sets z = a when bit == 0 and z = b when bit == 1, across n limbs,
// using a branchless mask rather than a conditional jump.
func Select(z, a, b *Elem, bit uint64, n int) {
	mask := -bit
	for i := 0; i < n; i++ {
		z[i] = a[i] ^ (mask & (a[i] ^ b[i]))
	}
}

func addWords(z, a, b *Elem, n int) uint64 {
	var carry uint64
	for i := 0; i < n; i++ {
		s, c := bits.Add64(a[i], b[i], carry)
		z[i] = s
		carry = c
	}
	return carry
}

func subWords(z, a, b *Elem, n int) uint64 {
	var borrow uint64
	for i := 0; i < n; i++ {
		s, c := bits.Sub64(a[i], b[i], borrow)
		z[i] = s
		borrow = c
	}
	return borrow
}

// Half sets z = a/2, shifting the whole limb array right by one bit.
func Half(z, a *Elem, n int) {
	for i := 0; i < n-1; i++ {
		z[i] = (a[i] >> 1) | (a[i+1] << 63)
	}
	z[n-1] = a[n-1] >> 1
}

// AddThenHalf sets z = (a+b)/2, where a and b are both already reduced mod
// p. Since a < p and b < p, (a+b)/2 < p and no further reduction is needed:
// the extra bit the addition can carry out is retained across the shift
// instead of being dropped.
func AddThenHalf(z, a, b *Elem, n int) {
	var sum Elem
	carry := addWords(&sum, a, b, n)
	for i := 0; i < n; i++ {
		var hi uint64
		if i+1 < n {
			hi = sum[i+1] << 63
		} else {
			hi = carry << 63
		}
		z[i] = (sum[i] >> 1) | hi
	}
}

// AddMod sets z = (a+b) mod p, for a, b < p.
func AddMod(z, a, b, p *Elem, n int) {
	var sum, diff Elem
	carry := addWords(&sum, a, b, n)
	subWords(&diff, &sum, p, n)
	needSub := carry == 1 || Cmp(&sum, p, n) != -1
	Select(z, &sum, &diff, maskBit(needSub), n)
}

// SubMod sets z = (a-b) mod p, for a, b < p.
func SubMod(z, a, b, p *Elem, n int) {
	var diff, sum Elem
	borrow := subWords(&diff, a, b, n)
	addWords(&sum, &diff, p, n)
	Select(z, &diff, &sum, maskBit(borrow == 1), n)
}

// DoubleMod sets z = 2*b mod p, for b < p.
func DoubleMod(z, b, p *Elem, n int) {
	var doubled, diff Elem
	top := b[n-1] >> 63
	for i := n - 1; i > 0; i-- {
		doubled[i] = (b[i] << 1) | (b[i-1] >> 63)
	}
	doubled[0] = b[0] << 1
	subWords(&diff, &doubled, p, n)
	needSub := top == 1 || Cmp(&doubled, p, n) != -1
	Select(z, &doubled, &diff, maskBit(needSub), n)
}

func maskBit(cond bool) uint64 {
	if cond {
		return 1
	}
	return 0
}

// MulMod sets z = (a*b) mod p, for a, b < p, via a double-and-add scan of
// b's bits from the least significant bit upwards, doubling t1 = a*2^j at
// each step. The accumulator t3 only ever receives a real update when the
// scanned bit is set; when it is clear, the identical addition is performed
// into a parallel dummy accumulator instead, so every bit costs the same two
// AddMods and one DoubleMod regardless of its value.
func MulMod(z, a, b, p *Elem, n int) {
	var t1, t2, t3 Elem
	t1.Set(a, n)
	t2.Set(a, n)
	for i := 0; i < n; i++ {
		for j := 0; j < 64; j++ {
			bitSet := (b[i]>>uint(j))&1 == 1

			var realSum, dummySum Elem
			AddMod(&realSum, &t3, &t1, p, n)
			AddMod(&dummySum, &t2, &t1, p, n)
			Select(&t3, &t3, &realSum, maskBit(bitSet), n)
			Select(&t2, &t2, &dummySum, maskBit(!bitSet), n)

			var doubled Elem
			DoubleMod(&doubled, &t1, p, n)
			t1 = doubled
		}
	}
	z.Set(&t3, n)

	zeroize.Words(t1[:n])
	zeroize.Words(t2[:n])
	zeroize.Words(t3[:n])
}

// InvMod sets z = a^-1 mod p, for 0 < a < p, via Fermat's little theorem
// (a^(p-2) mod p) computed by a Montgomery-ladder exponentiation. The ladder
// always runs BitLen(p) rounds, from bit index BitLen(p)-1 down to 0; the
// rounds whose bit index is BitLen(p-2) or higher run against a parallel
// scratch ladder (f0, f1) instead of the real one, so the
// total operation count is independent of p's exact bit pattern, not just
// its bit length.
func InvMod(z, a, p *Elem, n int) {
	order := BitLen(p, n)

	var two Elem
	two[0] = 2
	var k Elem
	SubMod(&k, p, &two, p, n)
	kBits := BitLen(&k, n)

	var r0, r1 Elem
	r0[0] = 1
	r1.Set(a, n)

	var f0, f1 Elem
	f0[0] = 1
	f1.Set(a, n)

	for i := order - 1; i >= 0; i-- {
		b := Bit(&k, i)
		if i < kBits {
			var nr0, nr1 Elem
			if b == 0 {
				MulMod(&nr1, &r0, &r1, p, n)
				MulMod(&nr0, &r0, &r0, p, n)
			} else {
				MulMod(&nr0, &r0, &r1, p, n)
				MulMod(&nr1, &r1, &r1, p, n)
			}
			r0, r1 = nr0, nr1
		} else {
			var nf0, nf1 Elem
			if b == 0 {
				MulMod(&nf1, &f0, &f1, p, n)
				MulMod(&nf0, &f0, &f0, p, n)
			} else {
				MulMod(&nf0, &f0, &f1, p, n)
				MulMod(&nf1, &f1, &f1, p, n)
			}
			f0, f1 = nf0, nf1
		}
	}

	z.Set(&r0, n)

	zeroize.Words(r0[:n])
	zeroize.Words(r1[:n])
	zeroize.Words(f0[:n])
	zeroize.Words(f1[:n])
}
