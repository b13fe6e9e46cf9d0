// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fix64 implements an unsigned fixed-point decimal number with
// 6 digits of precision after the point, stored in a uint64.
//
// Values are immutable: every operation returns a new Value. Rounding is
// always round-half-up and intermediate products are widened to 128 bits,
// so identical inputs produce bit-identical results on every execution.
package fix64

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/IGI-111/fixed-point/internal/mathutil"
	"github.com/IGI-111/fixed-point/internal/strutil"
)

const (
	// Digits is the number of decimal places in a Value.
	Digits = 6
	// Scale is the scaling factor: a Value's raw integer divided by Scale
	// is the number it represents.
	Scale = 1_000_000
	// HalfScale is the round-half-up threshold for a fractional remainder.
	HalfScale = Scale / 2

	maxInteger = math.MaxUint64 / Scale
)

var (
	// ErrOverflow is returned when a result does not fit 64 bits.
	ErrOverflow = errors.New("fix64: overflow")
	// ErrUnderflow is returned by Sub when the subtrahend exceeds the minuend.
	ErrUnderflow = errors.New("fix64: underflow")
	// ErrDivideByZero is returned by Div for a zero divisor.
	ErrDivideByZero = errors.New("fix64: divide by zero")
)

var zero Value

// Value is an unsigned fixed-point number with 6 decimal places.
type Value uint64

// FromRaw wraps a pre-scaled integer as a Value.
func FromRaw(raw uint64) Value {
	return Value(raw)
}

// FromUint64 returns a Value for the whole number n.
func FromUint64(n uint64) (Value, error) {
	if n > maxInteger {
		return zero, ErrOverflow
	}
	return Value(n * Scale), nil
}

// FromParts combines a whole part with a fraction of exactly fracDigits
// decimal digits. Fractional digits beyond the 6 the type stores are
// truncated, not rounded.
func FromParts(whole, frac uint64, fracDigits int) (Value, error) {
	if fracDigits >= Digits {
		if p := mathutil.Pow10(fracDigits - Digits); p == 0 {
			frac = 0
		} else {
			frac /= p
		}
	} else {
		hi, lo := bits.Mul64(frac, mathutil.Pow10(Digits-fracDigits))
		if hi != 0 {
			return zero, ErrOverflow
		}
		frac = lo
	}
	if whole > maxInteger {
		return zero, ErrOverflow
	}
	raw, carry := bits.Add64(whole*Scale, frac, 0)
	if carry != 0 {
		return zero, ErrOverflow
	}
	return Value(raw), nil
}

// FromString parses a decimal string, like "123" or "123.45".
// Fractional digits beyond 6 are truncated.
func FromString(s string) (Value, error) {
	wholeStr, fracStr, err := strutil.SplitDecimal(s)
	if err != nil {
		return zero, fmt.Errorf("fix64: parsing failed: %w", err)
	}
	var whole uint64
	if wholeStr = strings.TrimLeft(wholeStr, "0"); wholeStr != "" {
		// the digit run is already validated, failure means out of range.
		if whole, err = strconv.ParseUint(wholeStr, 10, 64); err != nil {
			return zero, ErrOverflow
		}
	}
	if len(fracStr) > Digits {
		fracStr = fracStr[:Digits]
	}
	var frac uint64
	if fracStr != "" {
		frac, _ = strconv.ParseUint(fracStr, 10, 64)
	}
	return FromParts(whole, frac, len(fracStr))
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the underlying scaled integer.
func (v Value) Raw() uint64 {
	return uint64(v)
}

// Floor returns the integer part of v.
func (v Value) Floor() uint64 {
	return uint64(v) / Scale
}

// Frac returns the fractional remainder of v, always in [0, Scale).
func (v Value) Frac() uint64 {
	return uint64(v) % Scale
}

// Round returns the nearest integer, halves rounded up.
func (v Value) Round() uint64 {
	if v.Frac() >= HalfScale {
		return v.Floor() + 1
	}
	return v.Floor()
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v == 0
}

// Add returns v + other.
func (v Value) Add(other Value) (Value, error) {
	sum, carry := bits.Add64(uint64(v), uint64(other), 0)
	if carry != 0 {
		return zero, ErrOverflow
	}
	return Value(sum), nil
}

// Sub returns v - other.
func (v Value) Sub(other Value) (Value, error) {
	diff, borrow := bits.Sub64(uint64(v), uint64(other), 0)
	if borrow != 0 {
		return zero, ErrUnderflow
	}
	return Value(diff), nil
}

// Mul returns v * other, rounded half-up.
// The full product is held in 128 bits before scaling back down.
func (v Value) Mul(other Value) (Value, error) {
	hi, lo := bits.Mul64(uint64(v), uint64(other))
	lo, carry := bits.Add64(lo, HalfScale, 0)
	hi += carry
	if hi >= Scale {
		return zero, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, Scale)
	return Value(q), nil
}

// Div returns v / other, computed as (v.raw*Scale + HalfScale) / other.raw
// over a 128-bit intermediate.
func (v Value) Div(other Value) (Value, error) {
	if other == 0 {
		return zero, ErrDivideByZero
	}
	hi, lo := bits.Mul64(uint64(v), Scale)
	lo, carry := bits.Add64(lo, HalfScale, 0)
	hi += carry
	if hi >= uint64(other) {
		return zero, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, uint64(other))
	return Value(q), nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	switch {
	case v > other:
		return 1
	case v < other:
		return -1
	default:
		return 0
	}
}

// Eq returns v == other.
func (v Value) Eq(other Value) bool { return v == other }

// Gt returns v > other.
func (v Value) Gt(other Value) bool { return v > other }

// Lt returns v < other.
func (v Value) Lt(other Value) bool { return v < other }

// String returns the decimal representation of v with trailing
// fractional zeros trimmed.
func (v Value) String() string {
	s := strconv.FormatUint(v.Floor(), 10)
	if frac := v.Frac(); frac != 0 {
		fs := strconv.FormatUint(frac, 10)
		fs = "000000"[:Digits-len(fs)] + fs
		s += "." + strings.TrimRight(fs, "0")
	}
	return s
}

// MarshalJSON marshals v as a quoted decimal string.
func (v Value) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, v.String()), nil
}

// UnmarshalJSON parses a quoted or bare decimal string.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := FromString(s)
	if err == nil {
		*v = parsed
	}
	return err
}
