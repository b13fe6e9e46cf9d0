package mathutil

import (
	"github.com/holiman/uint256"
)

var decimalFactorTable = [...]uint64{ // up to 1e19
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
	100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000, 10000000000000000000,
}

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Sqrt128 returns the integer square root of hi*2^64 + lo.
func Sqrt128(hi, lo uint64) uint64 {
	z := &uint256.Int{lo, hi}
	return z.Sqrt(z).Uint64()
}
