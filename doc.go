/*
Package wide provides fixed-width 128-bit and 256-bit integer types
(U128, I128, U256, I256) that behave like Go's primitive integers:
stack-allocated values of statically-known size, with wrap-around
arithmetic, bitwise and shift operators, comparisons, and division
with remainder.

U128, I128, U256 and I256 are value types; all operations return new
values. Overflow wraps modulo the type width, and signed types use
two's complement, so `MinI128.Neg() == MinI128` just as it would for
an int64. Division by zero panics, like native integer division.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Values can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromBool(v bool) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)

ParseU128 and friends accept the full literal syntax (binary, octal,
decimal and hex prefixes, '_' digit separators) and report range and
syntax errors; the MustU128-style helpers panic on error for use in
variable initializers.

All types support the following formatting and marshalling interfaces:

	fmt.Formatter
	fmt.Stringer
	json.Marshaler
	json.Unmarshaler
	encoding.TextMarshaler
	encoding.TextUnmarshaler

The underlying multi-limb arithmetic lives in internal/limb, a kernel
generic over the machine word; the public types are fixed flat
wrappers over 64-bit limbs.
*/
package wide
