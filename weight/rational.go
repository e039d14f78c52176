package weight

import (
	"math/big"
)

// Rational is the exact, arbitrary-precision W backend, backed by
// math/big.Rat. Required whenever a caller needs bit-exact WeightRange
// bounds (§9); every arithmetic op returns a newly reduced big.Rat, so no
// caller ever observes an un-reduced ratio.
type Rational struct {
	r *big.Rat
}

// RationalFromInt64 builds an exact Rational equal to num/den. Panics if den
// is zero, mirroring math/big.Rat's own contract.
func RationalFromInt64(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// RationalZero returns the Rational additive identity, 0/1.
func RationalZero() Rational { return Rational{r: new(big.Rat)} }

// RationalOne returns the Rational multiplicative identity, 1/1.
func RationalOne() Rational { return Rational{r: big.NewRat(1, 1)} }

// RationalFromString parses s as a decimal ("1.5") or fraction ("3/2")
// literal, per math/big.Rat.SetString's own accepted grammar. Used by
// hgformat to turn a textual edge weight into an exact Rational without
// that package needing to import math/big itself.
func RationalFromString(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, ErrInvalidLiteral
	}

	return Rational{r: r}, nil
}

func (x Rational) other(w W) *big.Rat {
	o, ok := w.(Rational)
	if !ok {
		panic("weight: mismatched W backend (Rational vs " + w.String() + ")")
	}

	return o.r
}

// Add implements W.
func (x Rational) Add(w W) W { return Rational{r: new(big.Rat).Add(x.r, x.other(w))} }

// Sub implements W.
func (x Rational) Sub(w W) W { return Rational{r: new(big.Rat).Sub(x.r, x.other(w))} }

// Mul implements W.
func (x Rational) Mul(w W) W { return Rational{r: new(big.Rat).Mul(x.r, x.other(w))} }

// Quo implements W.
func (x Rational) Quo(w W) W {
	o := x.other(w)
	if o.Sign() == 0 {
		panic("weight: division by zero")
	}

	return Rational{r: new(big.Rat).Quo(x.r, o)}
}

// Neg implements W.
func (x Rational) Neg() W { return Rational{r: new(big.Rat).Neg(x.r)} }

// Cmp implements W.
func (x Rational) Cmp(w W) int { return x.r.Cmp(x.other(w)) }

// Sign implements W.
func (x Rational) Sign() int { return x.r.Sign() }

// IsZero implements W.
func (x Rational) IsZero() bool { return x.r.Sign() == 0 }

// Zero implements W.
func (x Rational) Zero() W { return RationalZero() }

// One implements W.
func (x Rational) One() W { return RationalOne() }

// FromInt64 implements W.
func (x Rational) FromInt64(n int64) W { return RationalFromInt64(n, 1) }

// Float64 implements W.
func (x Rational) Float64() float64 {
	f, _ := x.r.Float64()

	return f
}

// String implements W, rendering as "num/den" (den omitted when 1).
func (x Rational) String() string { return x.r.RatString() }

// Num returns the reduced numerator, for snapshot encoding (§6).
func (x Rational) Num() *big.Int { return new(big.Int).Set(x.r.Num()) }

// Denom returns the reduced denominator, for snapshot encoding (§6).
func (x Rational) Denom() *big.Int { return new(big.Int).Set(x.r.Denom()) }
