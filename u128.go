package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/widemath/wide/internal/limb"
)

// U128 is an unsigned integer of exactly 128 bits, behaving like a
// primitive unsigned type: arithmetic wraps modulo 2^128.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromBool returns 1 for true and 0 for false.
func U128FromBool(v bool) U128 {
	if v {
		return U128{lo: 1}
	}
	return U128{}
}

// U128FromI64 sign-extends v into the high limbs, then reinterprets
// the bits as unsigned; -1 becomes MaxU128.
func U128FromI64(v int64) U128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return U128{hi: hi, lo: uint64(v)}
}

// U128FromString creates a U128 from a string. All the bases ParseU128
// accepts are supported. Overflow truncates to MaxU128 and sets
// accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	out, err = ParseU128(s)
	if err == nil {
		return out, true, nil
	}
	if isRangeErr(err) {
		return MaxU128, false, nil
	}
	return U128{}, false, err
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("wide: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an
// external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Bool returns false for zero and true for every other value.
func (u U128) Bool() bool { return u != zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See
// U128FromRaw() for the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// digits returns the value as a little-endian limb vector for the
// kernel.
func (u U128) digits() [2]uint64 { return [2]uint64{u.lo, u.hi} }

func u128FromDigits(d [2]uint64) U128 { return U128{hi: d[1], lo: d[0]} }

func (u U128) String() string {
	if u == zeroU128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	v := u.AsBigInt()
	return v.String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will
// interpret it as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsU256 zero-extends u to 256 bits.
func (u U128) AsU256() U256 {
	return U256{lm: u.hi, lo: u.lo}
}

// AsI256 zero-extends u to 256 bits; the result is always
// non-negative.
func (u U128) AsI256() I256 {
	return I256{lm: u.hi, lo: u.lo}
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the
// range will over/underflow. See IsUint64() if you want to check
// before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

// Add64 adds a uint64 without widening it first.
func (u U128) Add64(n uint64) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Sub64 subtracts a uint64 without widening it first.
func (u U128) Sub64(n uint64) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

// Neg returns the two's complement negation: 2^128 - u for u != 0,
// and 0 for u == 0.
func (u U128) Neg() (v U128) {
	return zeroU128.Sub(u)
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !n.LessThan(u)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Lsh shifts left by n bits; counts of 128 or more yield zero, as
// they would for a primitive unsigned type.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else { // n == 64
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh shifts right by n bits, shifting in zeros; counts of 128 or
// more yield zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else { // n == 64
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

// Mul returns the low 128 bits of the product, wrapping on overflow.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// MulCarry returns the full 256-bit product as a low half and an
// out-of-band carry of the same width.
func (u U128) MulCarry(n U128) (lo, carry U128) {
	var z [4]uint64
	x, y := u.digits(), n.digits()
	mulDigits(z[:], x[:], y[:])
	return u128FromDigits([2]uint64{z[0], z[1]}), u128FromDigits([2]uint64{z[2], z[3]})
}

// MulDiv returns (u * m) / d, computed through the full 256-bit
// intermediate product so the multiplication cannot overflow. The
// quotient is truncated to 128 bits. Panics if d is zero.
func (u U128) MulDiv(m, d U128) U128 {
	if d.hi|d.lo == 0 {
		panic("wide: division by zero")
	}

	var p [4]uint64
	x, y := u.digits(), m.digits()
	mulDigits(p[:], x[:], y[:])

	var q [4]uint64
	dd := d.digits()
	limb.Div(q[:], nil, p[:], dd[:])
	return u128FromDigits([2]uint64{q[0], q[1]})
}

// Quo returns the quotient x/y for y != 0. If y == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.quorem(by, false)
	return q
}

// QuoRem returns the quotient q and remainder r for y != 0. If y ==
// 0, a division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// U128 does not support big.Int.DivMod()-style Euclidean division.
func (u U128) QuoRem(by U128) (q, r U128) {
	return u.quorem(by, true)
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) quorem(by U128, wantRem bool) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic("wide: division by zero")
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set
		// if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		q = u.Rsh(byTrailing0)
		by = by.Dec()
		r = by.And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	ud, byd := u.digits(), by.digits()
	var qd, rd [2]uint64
	if wantRem {
		limb.Div(qd[:], rd[:], ud[:], byd[:])
	} else {
		limb.Div(qd[:], nil, ud[:], byd[:])
	}
	return u128FromDigits(qd), u128FromDigits(rd)
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits required to represent u; the bit
// length of 0 is 0.
func (u U128) BitLen() uint {
	return 128 - u.LeadingZeros()
}

// Bit returns the value of the i'th bit, where bit 0 is the least
// significant. Bits at or past 128 read as 0.
func (u U128) Bit(i uint) uint {
	if i >= 128 {
		return 0
	} else if i >= 64 {
		return uint(u.hi>>(i-64)) & 1
	}
	return uint(u.lo>>i) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). Bits at or
// past 128 are ignored.
func (u U128) SetBit(i uint, b uint) U128 {
	if i >= 128 {
		return u
	}
	if i >= 64 {
		if b == 0 {
			u.hi &^= 1 << (i - 64)
		} else {
			u.hi |= 1 << (i - 64)
		}
	} else {
		if b == 0 {
			u.lo &^= 1 << i
		} else {
			u.lo |= 1 << i
		}
	}
	return u
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
