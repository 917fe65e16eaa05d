package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/widemath/wide/internal/limb"
)

// U256 is an unsigned integer of exactly 256 bits, behaving like a
// primitive unsigned type: arithmetic wraps modulo 2^256. The four
// limbs are named from most to least significant.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{hi: hi, hm: hm, lm: lm, lo: lo}
}

// U256From128 zero-extends a U128 to 256 bits.
func U256From128(in U128) U256 {
	hi, lo := in.Raw()
	return U256{lm: hi, lo: lo}
}

func U256From64(in uint64) U256 { return U256{lo: in} }
func U256From32(in uint32) U256 { return U256{lo: uint64(in)} }
func U256From16(in uint16) U256 { return U256{lo: uint64(in)} }
func U256From8(in uint8) U256   { return U256{lo: uint64(in)} }

// U256FromBool returns 1 for true and 0 for false.
func U256FromBool(v bool) U256 {
	if v {
		return U256{lo: 1}
	}
	return U256{}
}

// U256FromI64 sign-extends v into the high limbs, then reinterprets
// the bits as unsigned; -1 becomes MaxU256.
func U256FromI64(v int64) U256 {
	var ext uint64
	if v < 0 {
		ext = maxUint64
	}
	return U256{hi: ext, hm: ext, lm: ext, lo: uint64(v)}
}

// U256FromString creates a U256 from a string. All the bases ParseU256
// accepts are supported. Overflow truncates to MaxU256 and sets
// accurate to 'false'.
func U256FromString(s string) (out U256, accurate bool, err error) {
	out, err = ParseU256(s)
	if err == nil {
		return out, true, nil
	}
	if isRangeErr(err) {
		return MaxU256, false, nil
	}
	return U256{}, false, err
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to
// MaxU256 and sets accurate to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U256{}, true
		case 1:
			return U256{lo: uint64(words[0])}, true
		case 2:
			return U256{lm: uint64(words[1]), lo: uint64(words[0])}, true
		case 3:
			return U256{hm: uint64(words[2]), lm: uint64(words[1]), lo: uint64(words[0])}, true
		case 4:
			return U256{hi: uint64(words[3]), hm: uint64(words[2]), lm: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU256, false
		}

	default:
		lw := len(words)
		if lw == 0 {
			return U256{}, true
		}
		var digits [4]uint64
		for idx, word := range words {
			if idx >= 8 {
				return MaxU256, false
			}
			digits[idx/2] |= uint64(word) << (32 * uint(idx%2))
		}
		return u256FromDigits(digits), true
	}
}

// RandU256 generates an unsigned 256-bit random integer from an
// external source.
func RandU256(source RandSource) (out U256) {
	return U256{
		hi: source.Uint64(), hm: source.Uint64(),
		lm: source.Uint64(), lo: source.Uint64(),
	}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Bool returns false for zero and true for every other value.
func (u U256) Bool() bool { return u != zeroU256 }

// Raw returns access to the U256 as four uint64s, most significant
// first. See U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// digits returns the value as a little-endian limb vector for the
// kernel.
func (u U256) digits() [4]uint64 { return [4]uint64{u.lo, u.lm, u.hm, u.hi} }

func u256FromDigits(d [4]uint64) U256 {
	return U256{hi: d[3], hm: d[2], lm: d[1], lo: d[0]}
}

func (u U256) String() string {
	if u == zeroU256 {
		return "0"
	}
	if u.hi == 0 && u.hm == 0 && u.lm == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	v := u.AsBigInt()
	return v.String()
}

func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.lm)
		bits[2] = big.Word(u.hm)
		bits[3] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		for _, d := range []uint64{u.hm, u.lm, u.lo} {
			b.Lsh(b, 64)
			var w big.Int
			w.SetUint64(d)
			b.Add(b, &w)
		}
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU128 truncates the U256 to its low 128 bits. Narrowing is lossy
// and always explicit; see IsU128() to check first.
func (u U256) AsU128() U128 { return U128FromRaw(u.lm, u.lo) }

// IsU128 reports whether u can be represented in a U128.
func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

// AsI256 performs a direct cast of a U256 to an I256, which will
// interpret it as a two's complement value.
func (u U256) AsI256() I256 {
	return I256{hi: u.hi, hm: u.hm, lm: u.lm, lo: u.lo}
}

// IsI256 reports whether u can be represented in an I256.
func (u U256) IsI256() bool { return u.hi&signBit == 0 }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the
// range will over/underflow. See IsUint64() if you want to check
// before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) Inc() (v U256) {
	return u.Add64(1)
}

func (u U256) Dec() (v U256) {
	return u.Sub64(1)
}

func (u U256) Add(n U256) (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.lm, c = bits.Add64(u.lm, n.lm, c)
	v.hm, c = bits.Add64(u.hm, n.hm, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

// Add64 adds a uint64 without widening it first.
func (u U256) Add64(n uint64) (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n, 0)
	v.lm, c = bits.Add64(u.lm, 0, c)
	v.hm, c = bits.Add64(u.hm, 0, c)
	v.hi = u.hi + c
	return v
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

// Sub64 subtracts a uint64 without widening it first.
func (u U256) Sub64(n uint64) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n, 0)
	v.lm, b = bits.Sub64(u.lm, 0, b)
	v.hm, b = bits.Sub64(u.hm, 0, b)
	v.hi = u.hi - b
	return v
}

// Neg returns the two's complement negation: 2^256 - u for u != 0,
// and 0 for u == 0.
func (u U256) Neg() (v U256) {
	return zeroU256.Sub(u)
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(v U256) bool            { return u == v }
func (u U256) GreaterThan(v U256) bool      { return u.Cmp(v) > 0 }
func (u U256) GreaterOrEqualTo(v U256) bool { return u.Cmp(v) >= 0 }
func (u U256) LessThan(v U256) bool         { return u.Cmp(v) < 0 }
func (u U256) LessOrEqualTo(v U256) bool    { return u.Cmp(v) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi = u.hi & n.hi
	u.hm = u.hm & n.hm
	u.lm = u.lm & n.lm
	u.lo = u.lo & n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi &^ n.hi
	u.hm = u.hm &^ n.hm
	u.lm = u.lm &^ n.lm
	u.lo = u.lo &^ n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi | n.hi
	u.hm = u.hm | n.hm
	u.lm = u.lm | n.lm
	u.lo = u.lo | n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi ^ n.hi
	u.hm = u.hm ^ n.hm
	u.lm = u.lm ^ n.lm
	u.lo = u.lo ^ n.lo
	return u
}

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

// BitLen returns the number of bits required to represent u; the bit
// length of 0 is 0.
func (u U256) BitLen() uint {
	return 256 - u.LeadingZeros()
}

// Bit returns the value of the i'th bit, where bit 0 is the least
// significant. Bits at or past 256 read as 0.
func (u U256) Bit(i uint) uint {
	if i >= 256 {
		return 0
	}
	d := u.digits()
	return uint(d[i/64]>>(i%64)) & 1
}

// Lsh shifts left by n bits; counts of 256 or more yield zero, as
// they would for a primitive unsigned type.
func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}
	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}
	} else {
		return U256{}
	}
}

// Rsh shifts right by n bits, shifting in zeros; counts of 256 or
// more yield zero.
func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}

	} else {
		return U256{}
	}
}

// Mul returns the low 256 bits of the product, wrapping on overflow.
func (u U256) Mul(n U256) U256 {
	var z [8]uint64
	x, y := u.digits(), n.digits()
	mulDigits(z[:], x[:], y[:])
	return u256FromDigits([4]uint64{z[0], z[1], z[2], z[3]})
}

// MulCarry returns the full 512-bit product as a low half and an
// out-of-band carry of the same width.
func (u U256) MulCarry(n U256) (lo, carry U256) {
	var z [8]uint64
	x, y := u.digits(), n.digits()
	mulDigits(z[:], x[:], y[:])
	return u256FromDigits([4]uint64{z[0], z[1], z[2], z[3]}),
		u256FromDigits([4]uint64{z[4], z[5], z[6], z[7]})
}

// MulDiv returns (u * m) / d, computed through the full 512-bit
// intermediate product so the multiplication cannot overflow. The
// quotient is truncated to 256 bits. Panics if d is zero.
func (u U256) MulDiv(m, d U256) U256 {
	if d == zeroU256 {
		panic("wide: division by zero")
	}

	var p [8]uint64
	x, y := u.digits(), m.digits()
	mulDigits(p[:], x[:], y[:])

	var q [8]uint64
	dd := d.digits()
	limb.Div(q[:], nil, p[:], dd[:])
	return u256FromDigits([4]uint64{q[0], q[1], q[2], q[3]})
}

// Quo returns the quotient x/y for y != 0. If y == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (u U256) Quo(by U256) (q U256) {
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
func (u U256) QuoRem(by U256) (q, r U256) {
	return u.quorem(by, true)
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

func (u U256) quorem(by U256, wantRem bool) (q, r U256) {
	if by == zeroU256 {
		panic("wide: division by zero")
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 255 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 255 {
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
	var qd, rd [4]uint64
	if wantRem {
		limb.Div(qd[:], rd[:], ud[:], byd[:])
	} else {
		limb.Div(qd[:], nil, ud[:], byd[:])
	}
	return u256FromDigits(qd), u256FromDigits(rd)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, _, err := U256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: u256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
