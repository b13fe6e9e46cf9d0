// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix256

import (
	"github.com/holiman/uint256"
)

var (
	signBit = new(uint256.Int).Lsh(one, 255)
	magMask = new(uint256.Int).Not(signBit)

	signedZero Signed
)

// Signed is a fixed-point number with 18 decimal places and a sign.
// The most significant bit of the raw value is the sign (1 = negative);
// the remaining 255 bits hold the magnitude, scaled exactly as Value.
//
// Zero is canonical: whenever the magnitude is zero the sign bit is
// cleared, no matter what sign was requested or produced, so bitwise
// equality of raw values is value equality.
type Signed struct {
	raw uint256.Int
}

// NewSigned combines an unsigned magnitude with a sign.
// Fails with ErrOverflow if the magnitude does not fit the 255 bits
// reserved for it.
func NewSigned(v Value, neg bool) (Signed, error) {
	if !magnitudeFits(v) {
		return signedZero, ErrOverflow
	}
	return compose(&v.raw, neg), nil
}

// SignedFromRaw wraps a raw bit pattern as a Signed.
// A negative zero pattern is canonicalized to plain zero.
func SignedFromRaw(raw *uint256.Int) Signed {
	if raw == nil {
		return signedZero
	}
	mag := new(uint256.Int).And(raw, magMask)
	neg := !new(uint256.Int).And(raw, signBit).IsZero()
	return compose(mag, neg)
}

// SignedFromUint64 returns a Signed for the whole number n with the
// given sign.
func SignedFromUint64(n uint64, neg bool) Signed {
	v := FromUint64(n)
	return compose(&v.raw, neg)
}

// SignedFromInt returns a Signed for the whole number n with the given
// sign.
func SignedFromInt(n *uint256.Int, neg bool) (Signed, error) {
	v, err := FromInt(n)
	if err != nil {
		return signedZero, err
	}
	return NewSigned(v, neg)
}

// SignedFromParts combines a whole part, a fraction of exactly
// fracDigits decimal digits, and a sign. Excess fractional digits are
// truncated as in FromParts.
func SignedFromParts(whole, frac uint64, fracDigits int, neg bool) Signed {
	v := FromParts(whole, frac, fracDigits)
	return compose(&v.raw, neg)
}

// compose packs a magnitude known to fit 255 bits with a sign, keeping
// zero canonical.
func compose(mag *uint256.Int, neg bool) Signed {
	var s Signed
	s.raw.Set(mag)
	if neg && !mag.IsZero() {
		s.raw.Or(&s.raw, signBit)
	}
	return s
}

// magnitudeFits reports whether v leaves the sign bit clear.
func magnitudeFits(v Value) bool {
	return new(uint256.Int).And(&v.raw, signBit).IsZero()
}

// Raw returns a copy of the raw bit pattern, sign bit included.
func (s Signed) Raw() *uint256.Int {
	return new(uint256.Int).Set(&s.raw)
}

// Magnitude returns |s| as an unsigned Value.
func (s Signed) Magnitude() Value {
	var v Value
	v.raw.And(&s.raw, magMask)
	return v
}

// IsNeg reports whether s is negative. Canonical zero never is.
func (s Signed) IsNeg() bool {
	return !new(uint256.Int).And(&s.raw, signBit).IsZero()
}

// IsZero reports whether s is zero.
func (s Signed) IsZero() bool {
	return s.raw.IsZero()
}

// Sign returns -1 if s < 0, 0 if s == 0, 1 if s > 0.
func (s Signed) Sign() int {
	if s.raw.IsZero() {
		return 0
	}
	if s.IsNeg() {
		return -1
	}
	return 1
}

// Negate returns -s. Zero stays non-negative.
func (s Signed) Negate() Signed {
	if s.raw.IsZero() {
		return s
	}
	var r Signed
	r.raw.Xor(&s.raw, signBit)
	return r
}

// Add returns s + other.
func (s Signed) Add(other Signed) (Signed, error) {
	if s.raw.IsZero() {
		return other, nil
	}
	if other.raw.IsZero() {
		return s, nil
	}
	m1, m2 := s.Magnitude(), other.Magnitude()
	if s.IsNeg() == other.IsNeg() {
		sum, err := m1.Add(m2)
		if err != nil || !magnitudeFits(sum) {
			return signedZero, ErrOverflow
		}
		return compose(&sum.raw, s.IsNeg()), nil
	}
	// differing signs: the larger magnitude wins the sign,
	// equal magnitudes cancel to canonical zero.
	switch m1.Cmp(m2) {
	case 0:
		return signedZero, nil
	case 1:
		diff, _ := m1.Sub(m2)
		return compose(&diff.raw, s.IsNeg()), nil
	default:
		diff, _ := m2.Sub(m1)
		return compose(&diff.raw, other.IsNeg()), nil
	}
}

// Sub returns s - other.
func (s Signed) Sub(other Signed) (Signed, error) {
	return s.Add(other.Negate())
}

// Mul returns s * other. The magnitude is rounded half-up as in
// Value.Mul; the sign is the XOR of the operand signs, unless the
// magnitude rounds to zero, which stays canonical.
func (s Signed) Mul(other Signed) (Signed, error) {
	if s.raw.IsZero() || other.raw.IsZero() {
		return signedZero, nil
	}
	mag, err := s.Magnitude().Mul(other.Magnitude())
	if err != nil || !magnitudeFits(mag) {
		return signedZero, ErrOverflow
	}
	return compose(&mag.raw, s.IsNeg() != other.IsNeg()), nil
}

// Div returns s / other. A zero dividend short-circuits to canonical
// zero; a zero divisor fails with ErrDivideByZero.
func (s Signed) Div(other Signed) (Signed, error) {
	if s.raw.IsZero() {
		return signedZero, nil
	}
	if other.raw.IsZero() {
		return signedZero, ErrDivideByZero
	}
	mag, err := s.Magnitude().Div(other.Magnitude())
	if err != nil || !magnitudeFits(mag) {
		return signedZero, ErrOverflow
	}
	return compose(&mag.raw, s.IsNeg() != other.IsNeg()), nil
}

// Cmp compares two values.
// Returns -1 if s < other, 0 if s == other, 1 if s > other.
// For two negative values the smaller magnitude is the greater value.
func (s Signed) Cmp(other Signed) int {
	s1, s2 := s.Sign(), other.Sign()
	if s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}
	c := s.Magnitude().Cmp(other.Magnitude())
	if s1 < 0 {
		return -c
	}
	return c
}

// Eq returns s == other. Raw bitwise equality is sound because zero is
// canonical.
func (s Signed) Eq(other Signed) bool {
	return s.raw == other.raw
}

// Gt returns s > other.
func (s Signed) Gt(other Signed) bool { return s.Cmp(other) > 0 }

// Lt returns s < other.
func (s Signed) Lt(other Signed) bool { return s.Cmp(other) < 0 }

// AbsCmp compares magnitudes only, ignoring signs.
func (s Signed) AbsCmp(other Signed) int {
	return s.Magnitude().Cmp(other.Magnitude())
}

// AbsGt returns |s| > |other|.
func (s Signed) AbsGt(other Signed) bool { return s.AbsCmp(other) > 0 }

// Round returns the magnitude rounded to the nearest integer (halves
// up) and the sign. A magnitude that rounds to zero is reported
// non-negative no matter the original sign.
func (s Signed) Round() (*uint256.Int, bool) {
	m := s.Magnitude().Round()
	if m.IsZero() {
		return m, false
	}
	return m, s.IsNeg()
}
