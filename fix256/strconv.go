// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix256

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/IGI-111/fixed-point/internal/mathutil"
	"github.com/IGI-111/fixed-point/internal/strutil"
)

const fracZeros = "000000000000000000" // Digits zeros, for left-padding

// FromString parses a non-negative decimal string, like "123" or
// "123.45". Fractional digits beyond 18 are truncated.
func FromString(s string) (Value, error) {
	wholeStr, fracStr, err := strutil.SplitDecimal(s)
	if err != nil {
		return zero, fmt.Errorf("fix256: parsing failed: %w", err)
	}
	var v Value
	if wholeStr = strings.TrimLeft(wholeStr, "0"); wholeStr != "" {
		whole, err := uint256.FromDecimal(wholeStr)
		if err != nil {
			return zero, ErrOverflow
		}
		if _, overflow := v.raw.MulOverflow(whole, scale); overflow {
			return zero, ErrOverflow
		}
	}
	if len(fracStr) > Digits {
		fracStr = fracStr[:Digits]
	}
	if fracStr != "" {
		// at most 18 validated digits, cannot fail or exceed a uint64.
		frac, _ := strconv.ParseUint(fracStr, 10, 64)
		f := uint256.NewInt(frac * mathutil.Pow10(Digits-len(fracStr)))
		if _, carry := v.raw.AddOverflow(&v.raw, f); carry {
			return zero, ErrOverflow
		}
	}
	return v, nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// SignedFromString parses a decimal string with an optional leading
// sign, like "-12.34".
func SignedFromString(s string) (Signed, error) {
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}
	mag, err := FromString(s)
	if err != nil {
		return signedZero, err
	}
	return NewSigned(mag, neg)
}

// MustSignedFromString is like SignedFromString, but panics on error.
func MustSignedFromString(s string) Signed {
	v, err := SignedFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the decimal representation of v with trailing
// fractional zeros trimmed.
func (v Value) String() string {
	var b strings.Builder
	v.writeString(&b)
	return b.String()
}

func (v Value) writeString(b *strings.Builder) {
	b.WriteString(v.Floor().Dec())
	if frac := v.Frac(); frac != 0 {
		fs := strconv.FormatUint(frac, 10)
		fs = fracZeros[:Digits-len(fs)] + fs
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fs, "0"))
	}
}

// MarshalJSON marshals v as a quoted decimal string.
func (v Value) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, v.String()), nil
}

// UnmarshalJSON parses a quoted or bare decimal string.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := FromString(unquote(string(data)))
	if err == nil {
		*v = parsed
	}
	return err
}

// String returns the decimal representation of s, with a leading minus
// for negative values.
func (s Signed) String() string {
	var b strings.Builder
	if s.IsNeg() {
		b.WriteByte('-')
	}
	s.Magnitude().writeString(&b)
	return b.String()
}

// MarshalJSON marshals s as a quoted decimal string.
func (s Signed) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, s.String()), nil
}

// UnmarshalJSON parses a quoted or bare decimal string.
func (s *Signed) UnmarshalJSON(data []byte) error {
	parsed, err := SignedFromString(unquote(string(data)))
	if err == nil {
		*s = parsed
	}
	return err
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
