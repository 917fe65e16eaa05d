package wide

import (
	"fmt"
	"math/big"
)

// I256 is a signed two's complement integer of exactly 256 bits. The
// most significant bit is the sign bit; arithmetic wraps, so
// MinI256.Neg() == MinI256.
type I256 struct {
	hi, hm, lm, lo uint64
}

func I256FromRaw(hi, hm, lm, lo uint64) I256 {
	return I256{hi: hi, hm: hm, lm: lm, lo: lo}
}

func I256From64(v int64) I256 {
	var ext uint64
	if v < 0 {
		ext = maxUint64
	}
	return I256{hi: ext, hm: ext, lm: ext, lo: uint64(v)}
}

func I256From32(v int32) I256   { return I256From64(int64(v)) }
func I256From16(v int16) I256   { return I256From64(int64(v)) }
func I256From8(v int8) I256     { return I256From64(int64(v)) }
func I256FromInt(v int) I256    { return I256From64(int64(v)) }
func I256FromU64(v uint64) I256 { return I256{lo: v} }

// I256FromI128 sign-extends a 128-bit value to 256 bits.
func I256FromI128(v I128) I256 {
	return v.AsI256()
}

// I256FromBool returns 1 for true and 0 for false.
func I256FromBool(v bool) I256 {
	if v {
		return I256{lo: 1}
	}
	return I256{}
}

// I256FromString creates an I256 from a string. All the bases
// ParseI256 accepts are supported. Overflow truncates to
// MaxI256/MinI256 and sets accurate to 'false'.
func I256FromString(s string) (out I256, accurate bool, err error) {
	out, err = ParseI256(s)
	if err == nil {
		return out, true, nil
	}
	if isRangeErr(err) {
		if len(s) > 0 && s[0] == '-' {
			return MinI256, false, nil
		}
		return MaxI256, false, nil
	}
	return I256{}, false, err
}

var (
	minI256AsAbsU256 = U256{hi: signBit}
	maxI256AsU256    = U256{hi: signMask, hm: maxUint64, lm: maxUint64, lo: maxUint64}
)

func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	neg := v.Sign() < 0

	u, uacc := U256FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if !uacc || u.GreaterThan(maxI256AsU256) {
			return MaxI256, false
		}
		return u.AsI256(), true
	}

	if !uacc || u.GreaterThan(minI256AsAbsU256) {
		return MinI256, false
	}
	return u.AsI256().Neg(), true
}

// RandI256 generates a positive signed 256-bit random integer from an
// external source.
func RandI256(source RandSource) (out I256) {
	return I256{
		hi: source.Uint64() & maxInt64, hm: source.Uint64(),
		lm: source.Uint64(), lo: source.Uint64(),
	}
}

func (i I256) IsZero() bool { return i == zeroI256 }

// Bool returns false for zero and true for every other value.
func (i I256) Bool() bool { return i != zeroI256 }

// Raw returns access to the I256 as four uint64s, most significant
// first. See I256FromRaw() for the counterpart.
func (i I256) Raw() (hi, hm, lm, lo uint64) { return i.hi, i.hm, i.lm, i.lo }

func (i I256) String() string {
	return i.AsBigInt().String()
}

func (i I256) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I256 into a big.Int, allowing you to retain
// and recycle memory.
func (i I256) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	u := i.AsU256()
	if neg {
		u = u.Neg()
	}
	u.IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I256 into it.
func (i I256) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become values > MaxI256.
func (i I256) AsU256() U256 {
	return U256{hi: i.hi, hm: i.hm, lm: i.lm, lo: i.lo}
}

// IsU256 reports whether i can be represented in a U256.
func (i I256) IsU256() bool {
	return i.hi&signBit == 0
}

// AsI128 truncates the I256 to its low 128 bits. Narrowing is lossy
// and always explicit; see IsI128() to check first.
func (i I256) AsI128() I128 {
	return I128{hi: i.lm, lo: i.lo}
}

// IsI128 reports whether i can be represented in an I128.
func (i I256) IsI128() bool {
	var ext uint64
	if i.lm&signBit != 0 {
		ext = maxUint64
	}
	return i.hi == ext && i.hm == ext
}

// AsInt64 truncates the I256 to fit in an int64. Values outside the
// range will over/underflow. See IsInt64() if you want to check before
// you convert.
func (i I256) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I256) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.hm == maxUint64 && i.lm == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.hm == 0 && i.lm == 0 && i.lo <= maxInt64
}

func (i I256) Sign() int {
	if i == zeroI256 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Inc() (v I256) {
	return i.AsU256().Inc().AsI256()
}

func (i I256) Dec() (v I256) {
	return i.AsU256().Dec().AsI256()
}

func (i I256) Add(n I256) (v I256) {
	return i.AsU256().Add(n.AsU256()).AsI256()
}

func (i I256) Sub(n I256) (v I256) {
	return i.AsU256().Sub(n.AsU256()).AsI256()
}

// Neg returns the two's complement negation, ~i + 1. The negation of
// MinI256 wraps back to MinI256.
func (i I256) Neg() (v I256) {
	return i.AsU256().Neg().AsI256()
}

// Abs returns the absolute value. Abs(MinI256) wraps to MinI256, which
// remains negative.
func (i I256) Abs() I256 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n; if the signs differ the negative value is
// smaller, otherwise the underlying unsigned representations are
// compared.
func (i I256) Cmp(n I256) int {
	if i == n {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.AsU256().GreaterThan(n.AsU256()) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Equal(n I256) bool {
	return i == n
}

func (i I256) GreaterThan(n I256) bool      { return i.Cmp(n) > 0 }
func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }
func (i I256) LessThan(n I256) bool         { return i.Cmp(n) < 0 }
func (i I256) LessOrEqualTo(n I256) bool    { return i.Cmp(n) <= 0 }

func (i I256) And(n I256) I256 { return i.AsU256().And(n.AsU256()).AsI256() }
func (i I256) Or(n I256) I256  { return i.AsU256().Or(n.AsU256()).AsI256() }
func (i I256) Xor(n I256) I256 { return i.AsU256().Xor(n.AsU256()).AsI256() }
func (i I256) Not() I256       { return i.AsU256().Not().AsI256() }

// Lsh shifts left by n bits. Bits shifted past the sign position are
// discarded, matching primitive signed shift behavior.
func (i I256) Lsh(n uint) I256 {
	return i.AsU256().Lsh(n).AsI256()
}

// Rsh is an arithmetic right shift: vacated bits take the value of the
// sign bit. Counts of 256 or more yield 0 for non-negative values and
// -1 for negative ones.
func (i I256) Rsh(n uint) I256 {
	if i.hi&signBit == 0 {
		return i.AsU256().Rsh(n).AsI256()
	}
	if n == 0 {
		return i
	}
	if n >= 256 {
		return I256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	}
	// Shift in ones from the top: v >> n | ^(MaxU256 >> n).
	v := i.AsU256().Rsh(n)
	return v.Or(MaxU256.Rsh(n).Not()).AsI256()
}

// Mul returns the product of two I256s. Overflow wraps around; the low
// 256 bits of the product are identical to the unsigned ones.
func (i I256) Mul(n I256) I256 {
	return i.AsU256().Mul(n.AsU256()).AsI256()
}

// MulDiv returns (i * m) / d, computed through the full double-width
// intermediate product so the multiplication cannot overflow. The
// quotient truncates toward zero. Panics if d is zero.
func (i I256) MulDiv(m, d I256) I256 {
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
	q := i.AsU256().MulDiv(m.AsU256(), d.AsU256()).AsI256()
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
// dividend. MinI256.QuoRem(-1) wraps to (MinI256, 0).
func (i I256) QuoRem(by I256) (q, r I256) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI256) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroI256) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsU256().QuoRem(by.AsU256())
	q, r = qu.AsI256(), ru.AsI256()
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
func (i I256) Quo(by I256) (q I256) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (i I256) Rem(by I256) (r I256) {
	_, r = i.QuoRem(by)
	return r
}

func (i I256) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, _, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: i256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
