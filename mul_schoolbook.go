//go:build !widekaratsuba

package wide

import "github.com/widemath/wide/internal/limb"

// mulDigits computes the full double-width product of two equal-length
// limb vectors. The schoolbook kernel is the default; build with the
// widekaratsuba tag to select the divide-and-conquer variant. Both
// produce identical output.
func mulDigits(z, x, y []uint64) {
	limb.Mul(z, x, y)
}
