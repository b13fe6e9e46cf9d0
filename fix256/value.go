// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fix256 implements unsigned and signed fixed-point decimal
// numbers with 18 digits of precision after the point, stored in a
// 256-bit unsigned integer.
//
// Value is the unsigned type; Signed packs a sign bit and a Value-style
// magnitude into a single raw integer. All values are immutable: every
// operation returns a new value. Rounding is always round-half-up and
// multiply/divide intermediates are widened to 512 bits, so identical
// inputs produce bit-identical results on every execution.
package fix256

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/IGI-111/fixed-point/internal/mathutil"
)

const (
	// Digits is the number of decimal places in a Value.
	Digits = 18

	scaleUint     = 1_000_000_000_000_000_000
	halfScaleUint = scaleUint / 2
)

var (
	scale     = uint256.NewInt(scaleUint)
	halfScale = uint256.NewInt(halfScaleUint)
	one       = uint256.NewInt(1)
)

var (
	// ErrOverflow is returned when a result does not fit the backing width:
	// 256 bits for Value, 255 bits of magnitude for Signed.
	ErrOverflow = errors.New("fix256: overflow")
	// ErrUnderflow is returned by Value.Sub when the subtrahend exceeds the
	// minuend; the unsigned type has no negative representation.
	ErrUnderflow = errors.New("fix256: underflow")
	// ErrDivideByZero is returned by Div for a zero divisor.
	ErrDivideByZero = errors.New("fix256: divide by zero")
)

var zero Value

// Scale returns the scaling factor 10^18: a Value's raw integer divided
// by it is the number the Value represents.
func Scale() *uint256.Int {
	return new(uint256.Int).Set(scale)
}

// HalfScale returns Scale/2, the round-half-up threshold for a
// fractional remainder.
func HalfScale() *uint256.Int {
	return new(uint256.Int).Set(halfScale)
}

// Value is an unsigned fixed-point number with 18 decimal places.
type Value struct {
	raw uint256.Int
}

// FromRaw wraps a pre-scaled integer as a Value. A nil raw is zero.
func FromRaw(raw *uint256.Int) Value {
	var v Value
	if raw != nil {
		v.raw.Set(raw)
	}
	return v
}

// FromUint64 returns a Value for the whole number n.
// A uint64 scaled by 10^18 always fits 256 bits, so there is no error.
func FromUint64(n uint64) Value {
	var v Value
	v.raw.SetUint64(n)
	v.raw.Mul(&v.raw, scale)
	return v
}

// FromInt returns a Value for the whole number n.
func FromInt(n *uint256.Int) (Value, error) {
	var v Value
	if _, overflow := v.raw.MulOverflow(n, scale); overflow {
		return zero, ErrOverflow
	}
	return v, nil
}

// FromParts combines a whole part with a fraction of exactly fracDigits
// decimal digits. Fractional digits beyond the 18 the type stores are
// truncated, not rounded.
func FromParts(whole, frac uint64, fracDigits int) Value {
	var v Value
	v.raw.SetUint64(whole)
	v.raw.Mul(&v.raw, scale)
	var f uint256.Int
	if fracDigits >= Digits {
		if p := mathutil.Pow10(fracDigits - Digits); p != 0 {
			f.SetUint64(frac / p)
		}
	} else {
		f.SetUint64(frac)
		f.Mul(&f, new(uint256.Int).SetUint64(mathutil.Pow10(Digits-fracDigits)))
	}
	v.raw.Add(&v.raw, &f)
	return v
}

// Raw returns a copy of the underlying scaled integer.
func (v Value) Raw() *uint256.Int {
	return new(uint256.Int).Set(&v.raw)
}

// Floor returns the integer part of v.
func (v Value) Floor() *uint256.Int {
	return new(uint256.Int).Div(&v.raw, scale)
}

// Frac returns the fractional remainder of v, always in [0, Scale).
func (v Value) Frac() uint64 {
	return new(uint256.Int).Mod(&v.raw, scale).Uint64()
}

// Round returns the nearest integer, halves rounded up.
func (v Value) Round() *uint256.Int {
	fl := v.Floor()
	if v.Frac() >= halfScaleUint {
		// cannot wrap: the floor of a scaled value leaves 60 spare bits.
		fl.Add(fl, one)
	}
	return fl
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.raw.IsZero()
}

// Add returns v + other.
func (v Value) Add(other Value) (Value, error) {
	var res Value
	if _, carry := res.raw.AddOverflow(&v.raw, &other.raw); carry {
		return zero, ErrOverflow
	}
	return res, nil
}

// Sub returns v - other.
func (v Value) Sub(other Value) (Value, error) {
	var res Value
	if _, borrow := res.raw.SubOverflow(&v.raw, &other.raw); borrow {
		return zero, ErrUnderflow
	}
	return res, nil
}

// Mul returns v * other, rounded half-up.
// The full product is held in 512 bits before scaling back down.
func (v Value) Mul(other Value) (Value, error) {
	var res Value
	_, overflow := res.raw.MulDivOverflow(&v.raw, &other.raw, scale)
	var rem uint256.Int
	rem.MulMod(&v.raw, &other.raw, scale)
	if rem.Uint64() >= halfScaleUint {
		if _, carry := res.raw.AddOverflow(&res.raw, one); carry {
			overflow = true
		}
	}
	if overflow {
		return zero, ErrOverflow
	}
	return res, nil
}

// Div returns v / other, computed as (v.raw*Scale + HalfScale) / other.raw
// over a 512-bit intermediate.
func (v Value) Div(other Value) (Value, error) {
	if other.raw.IsZero() {
		return zero, ErrDivideByZero
	}
	var res Value
	_, overflow := res.raw.MulDivOverflow(&v.raw, scale, &other.raw)
	var extra uint256.Int
	extra.MulMod(&v.raw, scale, &other.raw)
	if _, carry := extra.AddOverflow(&extra, halfScale); carry {
		// remainder+HalfScale wrapped past 2^256, which takes a divisor
		// within HalfScale of 2^256; the extra quotient is exactly one.
		extra.SetOne()
	} else {
		extra.Div(&extra, &other.raw)
	}
	if !extra.IsZero() {
		if _, carry := res.raw.AddOverflow(&res.raw, &extra); carry {
			overflow = true
		}
	}
	if overflow {
		return zero, ErrOverflow
	}
	return res, nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	return v.raw.Cmp(&other.raw)
}

// Eq returns v == other.
func (v Value) Eq(other Value) bool { return v.raw.Eq(&other.raw) }

// Gt returns v > other.
func (v Value) Gt(other Value) bool { return v.raw.Gt(&other.raw) }

// Lt returns v < other.
func (v Value) Lt(other Value) bool { return v.raw.Lt(&other.raw) }
