package wide

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var u64 = U128From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("wide: invalid big.Int %q", s))
	}
	return v
}

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	out, acc := U128FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("wide: inaccurate u128 %s", s))
	}
	return out
}

func randU128(rng *rand.Rand) U128 {
	u := U128{lo: rng.Uint64()}
	if rng.Intn(2) == 1 {
		// if we always generate hi bits, the universe will die before
		// we test a number < maxInt64
		u.hi = rng.Uint64()
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			require.Equal(t, tc.b, tc.a.AsBigInt())
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{big0, U128{}, true},
		{bigs("-1"), U128{}, false},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), MaxU128, true},
		{bigs("0x1 00000000 00000000 00000000 00000000"), MaxU128, false},
		{bigs("18446744073709551616"), U128{hi: 1}, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			v, acc := U128FromBigInt(tc.a)
			require.Equal(t, tc.acc, acc)
			require.Equal(t, tc.b, v)
		})
	}
}

func TestU128AddSub(t *testing.T) {
	x := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")
	require.Equal(t, u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d252"), x.Add(u64(1)))
	require.Equal(t, u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d252"), x.Add64(1))
	require.Equal(t, u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d250"), x.Sub(u64(1)))
	require.Equal(t, x, x.Add(zeroU128))
	require.Equal(t, zeroU128, x.Sub(x))

	// carry across the limb boundary:
	require.Equal(t, U128{hi: 1}, U128{lo: maxUint64}.Add64(1))
	require.Equal(t, U128{lo: maxUint64}, U128{hi: 1}.Sub64(1))

	// wrap around:
	require.Equal(t, zeroU128, MaxU128.Add64(1))
	require.Equal(t, MaxU128, zeroU128.Sub64(1))
}

func TestU128IncDec(t *testing.T) {
	require.Equal(t, U128{hi: 1, lo: 0}, U128{hi: 0, lo: maxUint64}.Inc())
	require.Equal(t, U128{hi: 0, lo: maxUint64}, U128{hi: 1, lo: 0}.Dec())
	require.Equal(t, zeroU128, MaxU128.Inc())
	require.Equal(t, MaxU128, zeroU128.Dec())
}

func TestU128Neg(t *testing.T) {
	x := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")
	require.Equal(t, u128s("0x0b8c171a 0917ed3c 021badc4 ae492daf"), x.Neg())
	require.Equal(t, x, x.Neg().Neg())
	require.Equal(t, zeroU128, zeroU128.Neg())
	require.Equal(t, u64(1), MaxU128.Neg())
}

func TestU128Mul(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 20000; i++ {
		a, b := randU128(rng), randU128(rng)
		want := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		want.Mod(want, wrapBigU128)
		require.Equal(t, want, a.Mul(b).AsBigInt())
	}
}

func TestU128MulCarry(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 20000; i++ {
		a, b := randU128(rng), randU128(rng)
		lo, carry := a.MulCarry(b)

		got := new(big.Int).Lsh(carry.AsBigInt(), 128)
		got.Add(got, lo.AsBigInt())
		require.Equal(t, new(big.Int).Mul(a.AsBigInt(), b.AsBigInt()), got)
	}
}

func TestU128MulDiv(t *testing.T) {
	x := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")
	require.Equal(t, x, x.MulDiv(x, x))

	// (x*3)/4 overflows 128 bits in the product but not the result.
	big3, big4 := bigU64(3), bigU64(4)
	want := new(big.Int).Mul(x.AsBigInt(), big3)
	want.Quo(want, big4)
	wantU, acc := U128FromBigInt(want)
	require.True(t, acc)
	require.Equal(t, wantU, x.MulDiv(u64(3), u64(4)))

	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 10000; i++ {
		a, m, d := randU128(rng), randU128(rng), randU128(rng)
		if d.IsZero() {
			continue
		}
		want := new(big.Int).Mul(a.AsBigInt(), m.AsBigInt())
		want.Quo(want, d.AsBigInt())
		want.Mod(want, wrapBigU128)
		require.Equal(t, want, a.MulDiv(m, d).AsBigInt())
	}
}

func TestU128MulDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		u64(4).MulDiv(u64(2), zeroU128)
	})
}

func TestU128QuoRem(t *testing.T) {
	x := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")

	q, r := x.QuoRem(x)
	require.Equal(t, u64(1), q)
	require.Equal(t, zeroU128, r)
	require.Equal(t, zeroU128, x.Rem(u64(1)))

	q, r = MaxU128.QuoRem(u64(2))
	require.Equal(t, u128s("0x7FFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), q)
	require.Equal(t, u64(1), r)

	for idx, tc := range []struct {
		u, by U128
	}{
		{u64(1), u64(2)},
		{u64(10), u64(3)},
		{MaxU128, u64(1)},
		{MaxU128, MaxU128},

		// 128-by-64 divisor paths, dividend hi below and above divisor:
		{u128s("0x12345678 9abcdef0 11111111 22222222"), u64(0x100)},
		{U128{hi: 10, lo: 0}, u64(3)},
		{U128{hi: 10, lo: 12345}, u64(7)},

		// power of two divisor:
		{u128s("0xf0f0f0f0 f0f0f0f0 ffffffff eeeeeeee"), u64(1 << 16)},

		// full 128-by-128:
		{u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251"), u128s("0x0b8c171a 0917ed3c 021badc4 ae492daf")},
	} {
		t.Run(fmt.Sprintf("%d/%s div %s", idx, tc.u, tc.by), func(t *testing.T) {
			wantQ, wantR := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			q, r := tc.u.QuoRem(tc.by)
			require.Equal(t, wantQ.String(), q.AsBigInt().String())
			require.Equal(t, wantR.String(), r.AsBigInt().String())
		})
	}

	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 20000; i++ {
		a, b := randU128(rng), randU128(rng)
		if b.IsZero() {
			continue
		}
		q, r := a.QuoRem(b)
		wantQ, wantR := new(big.Int).QuoRem(a.AsBigInt(), b.AsBigInt(), new(big.Int))
		require.Equal(t, wantQ.String(), q.AsBigInt().String())
		require.Equal(t, wantR.String(), r.AsBigInt().String())

		// round trip: a == q*b + r, 0 <= r < b
		require.Equal(t, a, q.Mul(b).Add(r))
		require.True(t, r.LessThan(b))
		require.Equal(t, q, a.Quo(b))
		require.Equal(t, r, a.Rem(b))
	}
}

func TestU128DivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { u64(1).Quo(zeroU128) })
	require.Panics(t, func() { u64(1).Rem(zeroU128) })
	require.Panics(t, func() { u64(1).QuoRem(zeroU128) })
}

func TestU128Shift(t *testing.T) {
	require.Equal(t, u128s("0x80000000 00000000 00000000 00000000"), MaxU128.Lsh(127))
	require.Equal(t, u64(1), MaxU128.Rsh(127))
	require.Equal(t, zeroU128, MaxU128.Lsh(128))
	require.Equal(t, zeroU128, MaxU128.Rsh(128))
	require.Equal(t, zeroU128, MaxU128.Lsh(300))

	rng := rand.New(rand.NewSource(24))
	for i := 0; i < 20000; i++ {
		a := randU128(rng)
		s := uint(rng.Intn(130))

		wantL := new(big.Int).Lsh(a.AsBigInt(), s)
		wantL.Mod(wantL, wrapBigU128)
		require.Equal(t, wantL, a.Lsh(s).AsBigInt(), "%s << %d", a, s)

		wantR := new(big.Int).Rsh(a.AsBigInt(), s)
		require.Equal(t, wantR.String(), a.Rsh(s).AsBigInt().String(), "%s >> %d", a, s)

		// (a << k) >> k == a & mask(128 - k)
		if s < 128 {
			mask := new(big.Int).Sub(new(big.Int).Lsh(big1, 128-s), big1)
			want, _ := U128FromBigInt(new(big.Int).And(a.AsBigInt(), mask))
			require.Equal(t, want, a.Lsh(s).Rsh(s))
		}
	}
}

func TestU128Bitwise(t *testing.T) {
	a := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")
	require.Equal(t, a, a.Not().Not())
	require.Equal(t, zeroU128, a.And(a.Not()))
	require.Equal(t, MaxU128, a.Or(a.Not()))
	require.Equal(t, zeroU128, a.Xor(a))
	require.Equal(t, a, a.AndNot(zeroU128))
	require.Equal(t, zeroU128, a.AndNot(a))
}

func TestU128LeadingTrailingZeros(t *testing.T) {
	require.Equal(t, uint(128), zeroU128.LeadingZeros())
	require.Equal(t, uint(128), zeroU128.TrailingZeros())
	require.Equal(t, uint(127), u64(1).LeadingZeros())
	require.Equal(t, uint(0), u64(1).TrailingZeros())
	require.Equal(t, uint(0), MaxU128.LeadingZeros())
	require.Equal(t, uint(63), U128{hi: 1}.LeadingZeros())
	require.Equal(t, uint(64), U128{hi: 1}.TrailingZeros())
	require.Equal(t, uint(0), zeroU128.BitLen())
	require.Equal(t, uint(65), U128{hi: 1}.BitLen())
}

func TestU128BitSetBit(t *testing.T) {
	require.Equal(t, U128{hi: 1}, zeroU128.SetBit(64, 1))
	require.Equal(t, uint(1), U128{hi: 1}.Bit(64))
	require.Equal(t, uint(0), U128{hi: 1}.Bit(63))
	require.Equal(t, zeroU128, U128{hi: 1}.SetBit(64, 0))
	require.Equal(t, zeroU128, zeroU128.SetBit(128, 1))
}

func TestU128Cmp(t *testing.T) {
	require.Equal(t, 0, u64(1).Cmp(u64(1)))
	require.Equal(t, 1, u64(2).Cmp(u64(1)))
	require.Equal(t, -1, u64(1).Cmp(u64(2)))
	require.Equal(t, 1, U128{hi: 1}.Cmp(U128{lo: maxUint64}))

	assert.True(t, u64(2).GreaterThan(u64(1)))
	assert.True(t, u64(2).GreaterOrEqualTo(u64(2)))
	assert.True(t, u64(1).LessThan(u64(2)))
	assert.True(t, u64(2).LessOrEqualTo(u64(2)))
	assert.True(t, u64(2).Equal(u64(2)))
}

func TestU128Conversions(t *testing.T) {
	x := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")

	require.Equal(t, x, x.AsI128().AsU128())
	require.False(t, x.IsI128())
	require.True(t, u64(1).IsI128())

	require.Equal(t, uint64(0xfde4523b51b6d251), x.AsUint64())
	require.False(t, x.IsUint64())
	require.True(t, u64(1).IsUint64())

	require.Equal(t, x, x.AsU256().AsU128())
	require.True(t, x.AsU256().IsU128())

	require.Equal(t, MaxU128, U128FromI64(-1))
	require.Equal(t, u64(1), U128FromBool(true))
	require.Equal(t, zeroU128, U128FromBool(false))
	require.True(t, u64(1).Bool())
	require.False(t, zeroU128.Bool())

	require.Equal(t, u64(math.MaxUint32), U128From32(math.MaxUint32))
	require.Equal(t, u64(math.MaxUint16), U128From16(math.MaxUint16))
	require.Equal(t, u64(math.MaxUint8), U128From8(math.MaxUint8))
}

func TestU128String(t *testing.T) {
	require.Equal(t, "0", zeroU128.String())
	require.Equal(t, "12345", u64(12345).String())
	require.Equal(t, "340282366920938463463374607431768211455", MaxU128.String())
	require.Equal(t, "18446744073709551616", U128{hi: 1}.String())
}

func TestU128Format(t *testing.T) {
	require.Equal(t, "ff", fmt.Sprintf("%x", u64(255)))
	require.Equal(t, "0xff", fmt.Sprintf("%#x", u64(255)))
	require.Equal(t, "255", fmt.Sprintf("%d", u64(255)))
}

func TestU128MarshalJSON(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	for i := 0; i < 1000; i++ {
		u := randU128(rng)

		bts, err := json.Marshal(u)
		require.NoError(t, err)

		var result U128
		require.NoError(t, json.Unmarshal(bts, &result))
		require.Equal(t, u, result)
	}
}

func TestU128MarshalText(t *testing.T) {
	u := u128s("0xf473e8e5 f6e812c3 fde4523b 51b6d251")
	bts, err := u.MarshalText()
	require.NoError(t, err)

	var back U128
	require.NoError(t, back.UnmarshalText(bts))
	require.Equal(t, u, back)
}

func TestU128FromString(t *testing.T) {
	v, acc, err := U128FromString("340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.True(t, acc)
	require.Equal(t, MaxU128, v)

	// overflow truncates and reports inaccuracy:
	v, acc, err = U128FromString("340282366920938463463374607431768211456")
	require.NoError(t, err)
	require.False(t, acc)
	require.Equal(t, MaxU128, v)

	_, _, err = U128FromString("banana")
	require.Error(t, err)
}

func TestRandU128(t *testing.T) {
	rng := rand.New(rand.NewSource(26))
	seen := map[U128]bool{}
	for i := 0; i < 100; i++ {
		seen[RandU128(rng)] = true
	}
	require.Greater(t, len(seen), 90)
}

func TestDifferenceU128(t *testing.T) {
	a, b := u64(10), u64(3)
	require.Equal(t, u64(7), DifferenceU128(a, b))
	require.Equal(t, u64(7), DifferenceU128(b, a))
	require.Equal(t, zeroU128, DifferenceU128(a, a))
	require.Equal(t, a, LargerU128(a, b))
	require.Equal(t, b, SmallerU128(a, b))
}
