// Package limb implements multi-precision arithmetic over fixed-width
// little-endian limb vectors. A vector is a []W with index 0 holding
// the least significant digit; the value is the usual positional sum.
//
// The kernel is generic in the word type, so the same routines serve
// 8, 16, 32 and 64-bit limbs. The public integer types in the root
// package are thin wrappers that load their digits into small stack
// arrays and call in here for everything beyond single ripple chains.
//
// All routines are pure: they write results through their destination
// slices and never retain references. Destinations may alias sources
// unless noted otherwise.
package limb

import (
	"github.com/widemath/wide/internal/arith"
)

// Nlz returns the number of leading zero bits in x. For a zero vector
// this is the full width in bits.
func Nlz[W arith.Word](x []W) uint {
	var count uint
	for i := len(x) - 1; i >= 0; i-- {
		c := arith.Nlz(x[i])
		count += c
		if c < arith.Width[W]() {
			break
		}
	}
	return count
}

// Cmp compares x and y as unsigned integers, returning -1, 0 or 1.
// len(x) must equal len(y).
func Cmp[W arith.Word](x, y []W) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// Add sets z = x + y and returns the carry out of the top limb.
// len(z) == len(x) == len(y).
func Add[W arith.Word](z, x, y []W) (carry W) {
	for i := range x {
		z[i], carry = arith.Add(x[i], y[i], carry)
	}
	return carry
}

// AddWord sets z = x + y and returns the carry out of the top limb.
func AddWord[W arith.Word](z, x []W, y W) (carry W) {
	z[0], carry = arith.Add(x[0], y, 0)
	for i := 1; i < len(x); i++ {
		z[i], carry = arith.Add(x[i], 0, carry)
	}
	return carry
}

// Sub sets z = x - y and returns the borrow out of the top limb.
// len(z) == len(x) == len(y).
func Sub[W arith.Word](z, x, y []W) (borrow W) {
	for i := range x {
		z[i], borrow = arith.Sub(x[i], y[i], borrow)
	}
	return borrow
}

// Shl sets z = x << s. Bits shifted past the top limb are discarded;
// s at or beyond the vector width clears z. z must not alias x.
func Shl[W arith.Word](z, x []W, s uint) {
	w := arith.Width[W]()
	n := len(x)
	if s >= uint(n)*w {
		for i := range z {
			z[i] = 0
		}
		return
	}
	k, b := int(s/w), s%w
	for i := n - 1; i >= 0; i-- {
		var hi, lo W
		if i-k >= 0 {
			hi = x[i-k]
		}
		if i-k-1 >= 0 {
			lo = x[i-k-1]
		}
		z[i] = arith.Shl2(hi, lo, b)
	}
}

// Shr sets z = x >> s, shifting in zero bits. s at or beyond the
// vector width clears z. z must not alias x.
func Shr[W arith.Word](z, x []W, s uint) {
	w := arith.Width[W]()
	n := len(x)
	if s >= uint(n)*w {
		for i := range z {
			z[i] = 0
		}
		return
	}
	k, b := int(s/w), s%w
	for i := 0; i < n; i++ {
		var hi, lo W
		if i+k < n {
			lo = x[i+k]
		}
		if i+k+1 < n {
			hi = x[i+k+1]
		}
		z[i] = arith.Shr2(hi, lo, b)
	}
}

// Sar sets z = x >> s arithmetically: limbs shifted in from above take
// the value of the top bit of x. s at or beyond the vector width
// yields all zero or all ones depending on the sign. z must not alias
// x.
func Sar[W arith.Word](z, x []W, s uint) {
	w := arith.Width[W]()
	n := len(x)
	var sign W
	if x[n-1]>>(w-1) != 0 {
		sign = ^W(0)
	}
	if s >= uint(n)*w {
		for i := range z {
			z[i] = sign
		}
		return
	}
	k, b := int(s/w), s%w
	for i := 0; i < n; i++ {
		hi, lo := sign, sign
		if i+k < n {
			lo = x[i+k]
		}
		if i+k+1 < n {
			hi = x[i+k+1]
		}
		z[i] = arith.Shr2(hi, lo, b)
	}
}

// addMulWord adds x*y into z, returning the carry out of the top of z.
// len(z) >= len(x).
func addMulWord[W arith.Word](z, x []W, y W) (carry W) {
	for i := range x {
		var lo W
		lo, carry = arith.Mul(x[i], y, carry)
		var c W
		z[i], c = arith.Add(z[i], lo, 0)
		carry += c
	}
	return carry
}

// subMulWord subtracts x*y from z, returning the borrow out of the top
// of z. len(z) >= len(x).
func subMulWord[W arith.Word](z, x []W, y W) (borrow W) {
	for i := range x {
		var lo W
		lo, borrow = arith.Mul(x[i], y, borrow)
		var b W
		z[i], b = arith.Sub(z[i], lo, 0)
		borrow += b
	}
	return borrow
}

// MulAddWord sets z = z*m + a and returns the carry out of the top
// limb. This is the accumulation step literal parsing is built on.
func MulAddWord[W arith.Word](z []W, m, a W) (carry W) {
	carry = a
	for i := range z {
		z[i], carry = arith.Mul(z[i], m, carry)
	}
	return carry
}

// Mul sets z = x * y, the full double-width schoolbook product.
// len(z) == len(x) + len(y); z must not alias x or y. The caller
// splits z into the low half and the out-of-band carry half.
func Mul[W arith.Word](z, x, y []W) {
	for i := range z {
		z[i] = 0
	}
	n := len(x)
	for i, d := range y {
		if d != 0 {
			z[n+i] = addMulWord(z[i:n+i], x, d)
		}
	}
}

// addAt adds x into z starting at limb position i, propagating the
// carry through the rest of z. The carry out of the top of z must be
// zero; callers arrange widths so it always is.
func addAt[W arith.Word](z, x []W, i int) {
	var carry W
	for j := range x {
		z[i+j], carry = arith.Add(z[i+j], x[j], carry)
	}
	for j := i + len(x); carry != 0 && j < len(z); j++ {
		z[j], carry = arith.Add(z[j], 0, carry)
	}
}

// MulKaratsuba sets z = x * y using the three-multiplication split:
//
//	x1*y1·B² + ((x1+x0)(y1+y0) - x1*y1 - x0*y0)·B + x0*y0
//
// len(x) == len(y), a power of two; len(z) == 2*len(x); z must not
// alias x or y. Output is identical to Mul.
func MulKaratsuba[W arith.Word](z, x, y []W) {
	n := len(x)
	if n == 1 {
		z[0], z[1] = arith.Mul(x[0], y[0], 0)
		return
	}
	h := n / 2
	x0, x1 := x[:h], x[h:]
	y0, y1 := y[:h], y[h:]

	p0 := make([]W, n)
	p2 := make([]W, n)
	MulKaratsuba(p0, x0, y0)
	MulKaratsuba(p2, x1, y1)

	// Half sums may overflow by one bit each; the bits are carried
	// explicitly and folded into the middle term below.
	s1 := make([]W, h)
	s2 := make([]W, h)
	c1 := Add(s1, x0, x1)
	c2 := Add(s2, y0, y1)

	// mid = (c1·B+s1)(c2·B+s2), needing n limbs plus two spare bits.
	mid := make([]W, n+1)
	MulKaratsuba(mid[:n], s1, s2)
	if c1 != 0 {
		addAt(mid, s2, h)
	}
	if c2 != 0 {
		addAt(mid, s1, h)
	}
	if c1 != 0 && c2 != 0 {
		addAt(mid, []W{1}, n)
	}

	// mid -= p0 + p2; never underflows.
	var borrow W
	for i := 0; i < n; i++ {
		mid[i], borrow = arith.Sub(mid[i], p0[i], borrow)
	}
	mid[n] -= borrow
	borrow = 0
	for i := 0; i < n; i++ {
		mid[i], borrow = arith.Sub(mid[i], p2[i], borrow)
	}
	mid[n] -= borrow

	copy(z[:n], p0)
	copy(z[n:], p2)
	addAt(z, mid, h)
}

// DivWord divides u by the single word v, storing the quotient in q
// and returning the remainder. len(q) == len(u). Panics if v == 0.
func DivWord[W arith.Word](q, u []W, v W) (r W) {
	if v == 0 {
		panic("wide: division by zero")
	}
	for i := len(u) - 1; i >= 0; i-- {
		q[i], r = arith.Div2(r, u[i], v)
	}
	return r
}

// Div computes the quotient and remainder of u / v using Knuth's
// Algorithm D. u holds len(u) limbs of dividend, v len(v) limbs of
// divisor; leading zero limbs of v are ignored. The quotient is
// written to q (len(q) == len(u)) and the remainder to r
// (len(r) == len(v)); r may be nil when the caller only wants the
// quotient. Panics if v is zero. None of the slices may alias.
//
// The quotient digit for each step is estimated from the top two
// limbs of the normalized dividend divided by the top limb of the
// normalized divisor, then corrected at most twice before the
// multiply-subtract; a final add-back handles the rare remaining
// overestimate.
func Div[W arith.Word](q, r, u, v []W) {
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	if n == 0 {
		panic("wide: division by zero")
	}
	for i := range q {
		q[i] = 0
	}
	if r != nil {
		for i := range r {
			r[i] = 0
		}
	}

	m := len(u)
	for m > 0 && u[m-1] == 0 {
		m--
	}
	if m < n {
		if r != nil {
			copy(r, u[:m])
		}
		return
	}

	if n == 1 {
		rem := DivWord(q[:m], u[:m], v[0])
		if r != nil {
			r[0] = rem
		}
		return
	}

	w := arith.Width[W]()

	// D1: normalize so the divisor's top bit is set.
	s := arith.Nlz(v[n-1])
	vn := make([]W, n)
	Shl(vn, v[:n], s)

	// The dividend grows one limb under the same shift.
	un := make([]W, m+1)
	if s == 0 {
		copy(un, u[:m])
	} else {
		un[m] = u[m-1] >> (w - s)
		for i := m - 1; i > 0; i-- {
			un[i] = (u[i] << s) | (u[i-1] >> (w - s))
		}
		un[0] = u[0] << s
	}

	// D2..D7: produce one quotient digit per position, top down.
	for j := m - n; j >= 0; j-- {
		// D3: estimate.
		var qhat, rhat W
		rhatOvf := false
		if un[j+n] >= vn[n-1] {
			// Only equality is possible here; saturate the estimate.
			qhat = ^W(0)
			var c W
			rhat, c = arith.Add(un[j+n-1], vn[n-1], 0)
			rhatOvf = c != 0
		} else {
			qhat, rhat = arith.Div2(un[j+n], un[j+n-1], vn[n-1])
		}
		for !rhatOvf {
			plo, phi := arith.Mul(qhat, vn[n-2], 0)
			if phi < rhat || (phi == rhat && plo <= un[j+n-2]) {
				break
			}
			qhat--
			var c W
			rhat, c = arith.Add(rhat, vn[n-1], 0)
			rhatOvf = c != 0
		}

		// D4: multiply and subtract.
		borrow := subMulWord(un[j:j+n], vn, qhat)
		var b W
		un[j+n], b = arith.Sub(un[j+n], borrow, 0)

		// D5/D6: add back on the rare overestimate.
		if b != 0 {
			qhat--
			carry := Add(un[j:j+n], un[j:j+n], vn)
			un[j+n] += carry
		}

		q[j] = qhat
	}

	// D8: denormalize the remainder.
	if r != nil {
		if s == 0 {
			copy(r, un[:n])
		} else {
			for i := 0; i < n; i++ {
				r[i] = (un[i] >> s) | (un[i+1] << (w - s))
			}
		}
	}
}
