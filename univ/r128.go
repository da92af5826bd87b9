// Package univ implements the universal coordinate type: a high-precision
// fixed point position usable across the simulation's full dynamic range,
// from millimeters to thousands of light years.
package univ

import (
	"math"
	"math/bits"
)

// R128 is a signed 64.64 fixed point number: a 128-bit two's complement
// integer scaled by 2^-64. The integer limb spans the full int64 range and
// the fractional limb resolves to about 5.4e-20, which keeps sub-millimeter
// resolution when the unit is micro-light-years.
//
// Arithmetic between two R128 values is exact; only conversion to and from
// float64 rounds.
type R128 struct {
	hi int64  // integer part (high limb of the 128-bit integer)
	lo uint64 // fractional part (low limb)
}

// Conversion to float64 is unsafe beyond this integer magnitude.
const outOfBoundsLimit = int64(1) << 62

const twoTo64 = 1 << 64

// R128FromFloat64 converts a float64 to fixed point. The value must have
// magnitude below 2^63; out-of-range inputs yield an out-of-bounds result.
func R128FromFloat64(v float64) R128 {
	if math.IsNaN(v) || v >= float64(math.MaxInt64) || v < float64(math.MinInt64) {
		return R128{hi: math.MaxInt64, lo: math.MaxUint64}
	}
	f := math.Floor(v)
	frac := (v - f) * twoTo64
	// A fractional part within half an ulp of 1.0 scales to exactly 2^64,
	// one past the low limb; the carry belongs in the integer limb.
	if frac >= twoTo64 {
		return R128{hi: int64(f) + 1}
	}
	return R128{hi: int64(f), lo: uint64(frac)}
}

// R128FromInt64 converts an integer to fixed point exactly.
func R128FromInt64(v int64) R128 {
	return R128{hi: v}
}

// Float64 rounds the fixed point value to the nearest float64.
func (a R128) Float64() float64 {
	return float64(a.hi) + math.Ldexp(float64(a.lo), -64)
}

// Add returns a+b. The sum is exact; overflow wraps like integer overflow.
func (a R128) Add(b R128) R128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	return R128{hi: a.hi + b.hi + int64(carry), lo: lo}
}

// Sub returns a-b exactly.
func (a R128) Sub(b R128) R128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	return R128{hi: a.hi - b.hi - int64(borrow), lo: lo}
}

// Neg returns -a.
func (a R128) Neg() R128 {
	lo, carry := bits.Add64(^a.lo, 1, 0)
	return R128{hi: ^a.hi + int64(carry), lo: lo}
}

// IsZero reports whether a is exactly zero.
func (a R128) IsZero() bool {
	return a.hi == 0 && a.lo == 0
}

// Sign returns -1, 0 or 1 according to the sign of a.
func (a R128) Sign() int {
	switch {
	case a.hi < 0:
		return -1
	case a.hi == 0 && a.lo == 0:
		return 0
	default:
		return 1
	}
}

// Mul returns a*b truncated to fixed point resolution. It is used to rotate
// universal coordinates by double-promoted rotation matrix entries without
// leaving the fixed point domain.
func (a R128) Mul(b R128) R128 {
	neg := false
	if a.hi < 0 {
		a = a.Neg()
		neg = !neg
	}
	if b.hi < 0 {
		b = b.Neg()
		neg = !neg
	}

	a1, a0 := uint64(a.hi), a.lo
	b1, b0 := uint64(b.hi), b.lo

	// 128x128 -> 256 bit product; the result is the middle 128 bits
	// (product >> 64), truncated toward zero.
	p00h, _ := bits.Mul64(a0, b0)
	p01h, p01l := bits.Mul64(a0, b1)
	p10h, p10l := bits.Mul64(a1, b0)
	_, p11l := bits.Mul64(a1, b1)

	lo, c1 := bits.Add64(p00h, p01l, 0)
	lo, c2 := bits.Add64(lo, p10l, 0)
	hi := p11l + p01h + p10h + c1 + c2

	r := R128{hi: int64(hi), lo: lo}
	if neg {
		r = r.Neg()
	}
	return r
}

// MulFloat64 returns a scaled by a float64 factor, promoted through fixed
// point so precision of the large component is preserved.
func (a R128) MulFloat64(v float64) R128 {
	return a.Mul(R128FromFloat64(v))
}

// IsOutOfBounds reports whether the value is too large to survive a round
// trip through float64 based arithmetic.
func (a R128) IsOutOfBounds() bool {
	return a.hi >= outOfBoundsLimit || a.hi < -outOfBoundsLimit
}
