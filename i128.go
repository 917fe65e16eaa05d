package wide

import (
	"fmt"
	"math/big"
	"math/bits"
)

// I128 is a signed two's complement integer of exactly 128 bits. The
// most significant bit is the sign bit; arithmetic wraps, so
// MinI128.Neg() == MinI128, just like an int64.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from
// two uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBool returns 1 for true and 0 for false.
func I128FromBool(v bool) I128 {
	if v {
		return I128{lo: 1}
	}
	return I128{}
}

// I128FromString creates an I128 from a string. All the bases
// ParseI128 accepts are supported. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	out, err = ParseI128(s)
	if err == nil {
		return out, true, nil
	}
	if isRangeErr(err) {
		if len(s) > 0 && s[0] == '-' {
			return MinI128, false, nil
		}
		return MaxI128, false, nil
	}
	return I128{}, false, err
}

var (
	minI128AsAbsU128 = U128{hi: signBit, lo: 0}
	maxI128AsU128    = U128{hi: signMask, lo: maxUint64}
)

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, uacc := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if !uacc || u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), true
	}

	if !uacc || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

// RandI128 generates a positive signed 128-bit random integer from an
// external source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Bool returns false for zero and true for every other value.
func (i I128) Bool() bool { return i != zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See
// I128FromRaw() for the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	v := i.AsBigInt()
	return v.String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain
// and recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	u := i.AsU128()
	if neg {
		u = u.Neg()
	}
	u.IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsI256 sign-extends i to 256 bits.
func (i I128) AsI256() I256 {
	var ext uint64
	if i.hi&signBit != 0 {
		ext = maxUint64
	}
	return I256{hi: ext, hm: ext, lm: i.hi, lo: i.lo}
}

// AsInt64 truncates the I128 to fit in an int64. Values outside the
// range will over/underflow. See IsInt64() if you want to check before
// you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, 1, 0)
	v.hi = i.hi + carry
	return v
}

func (i I128) Dec() (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, 1, 0)
	v.hi = i.hi - borrow
	return v
}

func (i I128) Add(n I128) (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, n.lo, 0)
	v.hi, _ = bits.Add64(i.hi, n.hi, carry)
	return v
}

func (i I128) Sub(n I128) (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(i.hi, n.hi, borrow)
	return v
}

// Neg returns the two's complement negation, ~i + 1. The negation of
// MinI128 wraps back to MinI128.
func (i I128) Neg() (v I128) {
	return zeroI128.Sub(i)
}

// Abs returns the absolute value. Abs(MinI128) wraps to MinI128, which
// remains negative.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is
// guaranteed to satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return !i.LessThan(n)
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return !n.LessThan(i)
}

// Bitwise operations behave identically to their U128 counterparts;
// signedness only changes comparison, division and right shift.

func (i I128) And(n I128) (out I128) {
	out.hi = i.hi & n.hi
	out.lo = i.lo & n.lo
	return out
}

func (i I128) Or(n I128) (out I128) {
	out.hi = i.hi | n.hi
	out.lo = i.lo | n.lo
	return out
}

func (i I128) Xor(n I128) (out I128) {
	out.hi = i.hi ^ n.hi
	out.lo = i.lo ^ n.lo
	return out
}

func (i I128) Not() (out I128) {
	out.hi = ^i.hi
	out.lo = ^i.lo
	return out
}

// Lsh shifts left by n bits. Bits shifted past the sign position are
// discarded, matching primitive signed shift behavior.
func (i I128) Lsh(n uint) I128 {
	return i.AsU128().Lsh(n).AsI128()
}

// Rsh is an arithmetic right shift: vacated bits take the value of the
// sign bit, so negative values stay negative. Counts of 128 or more
// yield 0 for non-negative values and -1 for negative ones.
func (i I128) Rsh(n uint) (v I128) {
	if n == 0 {
		return i
	}
	var sign uint64
	if i.hi&signBit != 0 {
		sign = maxUint64
	}
	if n >= 128 {
		return I128{hi: sign, lo: sign}
	} else if n > 64 {
		v.lo = (i.hi >> (n - 64)) | (sign << (128 - n))
		v.hi = sign
	} else if n < 64 {
		v.lo = (i.lo >> n) | (i.hi << (64 - n))
		v.hi = (i.hi >> n) | (sign << (64 - n))
	} else { // n == 64
		v.lo = i.hi
		v.hi = sign
	}
	return v
}

// Mul returns the product of two I128s.
//
// Overflow wraps around, as per the Go spec for signed integers; the
// low 128 bits of the product are identical to the unsigned ones.
func (i I128) Mul(n I128) (dest I128) {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// MulDiv returns (i * m) / d, computed through the full double-width
// intermediate product so the multiplication cannot overflow. The
// quotient truncates toward zero. Panics if d is zero.
func (i I128) MulDiv(m, d I128) I128 {
	neg := false
	if i.Sign() < 0 {
		neg = !neg
		i = i.Neg()
	}
	if m.Sign() < 0 {
		neg = !neg
		m = m.Neg()
	}
	if d.Sign() < 0 {
		neg = !neg
		d = d.Neg()
	}
	q := i.AsU128().MulDiv(m.AsU128(), d.AsU128()).AsI128()
	if neg {
		q = q.Neg()
	}
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by ==
// 0, a division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go): the quotient
// truncates toward zero and the remainder takes the sign of the
// dividend. MinI128.QuoRem(-1) wraps to (MinI128, 0).
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsU128().QuoRem(by.AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	qSign := 1
	if i.LessThan(zeroI128) {
		qSign = -1
		i = i.Neg()
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu := i.AsU128().Quo(by.AsU128())
	q = qu.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
