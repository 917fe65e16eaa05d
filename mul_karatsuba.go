//go:build widekaratsuba

package wide

import "github.com/widemath/wide/internal/limb"

// mulDigits computes the full double-width product of two equal-length
// limb vectors using the Karatsuba kernel. Output is identical to the
// schoolbook default.
func mulDigits(z, x, y []uint64) {
	limb.MulKaratsuba(z, x, y)
}
