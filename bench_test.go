package wide

import (
	"testing"
)

var (
	BenchU128Result U128
	BenchU256Result U256
	BenchI128Result I128
	BenchUintResult uint

	benchU128a = MustU128("0xf473e8e5_f6e812c3_fde4523b_51b6d251")
	benchU128b = MustU128("0x0b8c171a_0917ed3c_021badc4_ae492daf")
	benchU256a = MustU256("0xaf5705a4_89525e79_a5120c42_daebbc57_d55f0277_53a05970_9fee8a5d_41e2ae79")
	benchU256b = MustU256("0x00000001_89525e79_a5120c42_daebbc57_d55f0277_53a05970_9fee8a5d_41e2ae79")
)

func BenchmarkU128Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = benchU128a.Add(benchU128b)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = benchU128a.Mul(benchU128b)
	}
}

func BenchmarkU128QuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = benchU128a.QuoRem(benchU128b)
	}
}

func BenchmarkU128MulDiv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = benchU128a.MulDiv(benchU128a, benchU128a)
	}
}

func BenchmarkU128Lsh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = benchU128a.Lsh(71)
	}
}

func BenchmarkU128LeadingZeros(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = benchU128a.LeadingZeros()
	}
}

func BenchmarkU256Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = benchU256a.Add(benchU256b)
	}
}

func BenchmarkU256Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = benchU256a.Mul(benchU256b)
	}
}

func BenchmarkU256QuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result, _ = benchU256a.QuoRem(benchU256b)
	}
}

func BenchmarkI128QuoRem(b *testing.B) {
	ia, ib := benchU128a.AsI128(), benchU128b.AsI128()
	for i := 0; i < b.N; i++ {
		BenchI128Result, _ = ia.QuoRem(ib)
	}
}
