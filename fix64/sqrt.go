// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix64

import (
	"math/bits"

	"github.com/IGI-111/fixed-point/internal/mathutil"
)

// sqrtIterations is the fixed number of Newton-Raphson refinement steps.
// Four are enough to pin down 6 decimal places starting from the integer
// square root seed; the count is deliberately not adaptive so that both
// cost and result are identical on every execution.
const sqrtIterations = 4

// Sqrt returns the square root of v.
// The second return value is false only for a zero input, which by
// convention yields no result rather than zero.
func (v Value) Sqrt() (Value, bool) {
	if v == 0 {
		return zero, false
	}
	// Seed with the integer square root of raw*Scale: the extra factor of
	// Scale keeps the root in raw fixed-point units.
	hi, lo := bits.Mul64(uint64(v), Scale)
	guess := Value(mathutil.Sqrt128(hi, lo))
	for i := 0; i < sqrtIterations; i++ {
		q, err := v.Div(guess)
		if err != nil {
			return zero, false
		}
		// Average guess and v/guess, rounding the halving up.
		guess = (guess + q + 1) / 2
	}
	return guess, true
}
