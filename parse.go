package wide

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/widemath/wide/internal/limb"
)

// Parse errors. Errors returned by the Parse functions wrap one of
// these; use errors.Is to distinguish a malformed numeral from one
// that does not fit the target width.
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

func isRangeErr(err error) bool { return errors.Is(err, ErrRange) }

// ParseU128 parses s as an unsigned 128-bit numeral. The base is
// selected by prefix: "0b" binary, "0o" octal, "0x" hex, otherwise
// decimal. '_' may separate digits. Values that do not fit return
// ErrRange.
func ParseU128(s string) (out U128, err error) {
	var z [2]uint64
	if err := parseDigits(z[:], s); err != nil {
		return out, fmt.Errorf("wide: parse u128 %q: %w", s, err)
	}
	return u128FromDigits(z), nil
}

// MustU128 is like ParseU128 but panics on error, for use in variable
// initializers.
func MustU128(s string) U128 {
	out, err := ParseU128(s)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseU256 parses s as an unsigned 256-bit numeral; see ParseU128 for
// the accepted syntax.
func ParseU256(s string) (out U256, err error) {
	var z [4]uint64
	if err := parseDigits(z[:], s); err != nil {
		return out, fmt.Errorf("wide: parse u256 %q: %w", s, err)
	}
	return u256FromDigits(z), nil
}

// MustU256 is like ParseU256 but panics on error, for use in variable
// initializers.
func MustU256(s string) U256 {
	out, err := ParseU256(s)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseI128 parses s as a signed 128-bit numeral: an optional sign
// followed by a magnitude in any base ParseU128 accepts. Magnitudes
// beyond the two's complement range return ErrRange.
func ParseI128(s string) (out I128, err error) {
	neg, mag := splitSign(s)
	var z [2]uint64
	if err := parseDigits(z[:], mag); err != nil {
		return out, fmt.Errorf("wide: parse i128 %q: %w", s, err)
	}
	u := u128FromDigits(z)
	if err := checkSignedRange(neg, u.Cmp(minI128AsAbsU128), u.Cmp(maxI128AsU128)); err != nil {
		return out, fmt.Errorf("wide: parse i128 %q: %w", s, err)
	}
	if neg {
		return u.Neg().AsI128(), nil
	}
	return u.AsI128(), nil
}

// MustI128 is like ParseI128 but panics on error, for use in variable
// initializers.
func MustI128(s string) I128 {
	out, err := ParseI128(s)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseI256 parses s as a signed 256-bit numeral; see ParseI128 for
// the accepted syntax.
func ParseI256(s string) (out I256, err error) {
	neg, mag := splitSign(s)
	var z [4]uint64
	if err := parseDigits(z[:], mag); err != nil {
		return out, fmt.Errorf("wide: parse i256 %q: %w", s, err)
	}
	u := u256FromDigits(z)
	if err := checkSignedRange(neg, u.Cmp(minI256AsAbsU256), u.Cmp(maxI256AsU256)); err != nil {
		return out, fmt.Errorf("wide: parse i256 %q: %w", s, err)
	}
	if neg {
		return u.Neg().AsI256(), nil
	}
	return u.AsI256(), nil
}

// MustI256 is like ParseI256 but panics on error, for use in variable
// initializers.
func MustI256(s string) I256 {
	out, err := ParseI256(s)
	if err != nil {
		panic(err)
	}
	return out
}

func splitSign(s string) (neg bool, rest string) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return true, s[1:]
		case '+':
			return false, s[1:]
		}
	}
	return false, s
}

// checkSignedRange validates a parsed magnitude against the two's
// complement bounds, given its comparisons against |Min| and Max.
func checkSignedRange(neg bool, cmpAbsMin, cmpMax int) error {
	if neg {
		if cmpAbsMin > 0 {
			return ErrRange
		}
	} else if cmpMax > 0 {
		return ErrRange
	}
	return nil
}

// parseDigits parses the numeral in s into the little-endian limb
// vector z. Accumulation is repeated multiply-by-base plus add-digit
// on the limb vector; power-of-two bases use the equivalent direct
// bit-packing path. A leading sign is a syntax error here; signed
// parsing strips it first.
func parseDigits(z []uint64, s string) error {
	for i := range z {
		z[i] = 0
	}

	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			base, s = 2, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'x', 'X':
			base, s = 16, s[2:]
		}
	}
	if len(s) == 0 {
		return ErrSyntax
	}

	shift := uint(0)
	if base&(base-1) == 0 {
		shift = uint(bits.TrailingZeros64(base))
	}

	seen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			// Separators sit between digits only.
			if !seen || i == len(s)-1 || s[i+1] == '_' {
				return ErrSyntax
			}
			continue
		}

		d, ok := digitVal(c)
		if !ok || uint64(d) >= base {
			return ErrSyntax
		}
		seen = true

		if shift != 0 {
			if limb.Nlz(z) < shift {
				return ErrRange
			}
			shlDigit(z, shift, uint64(d))
		} else {
			if carry := limb.MulAddWord(z, base, uint64(d)); carry != 0 {
				return ErrRange
			}
		}
	}
	if !seen {
		return ErrSyntax
	}
	return nil
}

// shlDigit shifts z left by k bits (k < 64) and ors the digit into the
// vacated low bits.
func shlDigit(z []uint64, k uint, d uint64) {
	for i := len(z) - 1; i > 0; i-- {
		z[i] = (z[i] << k) | (z[i-1] >> (64 - k))
	}
	z[0] = (z[0] << k) | d
}

func digitVal(c byte) (uint, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint(c-'A') + 10, true
	}
	return 0, false
}
