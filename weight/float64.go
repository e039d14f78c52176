package weight

import "strconv"

// Float64 is the throughput-oriented W backend (§9): ordinary IEEE-754
// float64 arithmetic, no reduction, no exactness guarantee. Suitable when a
// caller accepts rounding in exchange for speed.
type Float64 float64

func (x Float64) other(w W) Float64 {
	o, ok := w.(Float64)
	if !ok {
		panic("weight: mismatched W backend (Float64 vs " + w.String() + ")")
	}

	return o
}

// Add implements W.
func (x Float64) Add(w W) W { return x + x.other(w) }

// Sub implements W.
func (x Float64) Sub(w W) W { return x - x.other(w) }

// Mul implements W.
func (x Float64) Mul(w W) W { return x * x.other(w) }

// Quo implements W.
func (x Float64) Quo(w W) W {
	o := x.other(w)
	if o == 0 {
		panic("weight: division by zero")
	}

	return x / o
}

// Neg implements W.
func (x Float64) Neg() W { return -x }

// Cmp implements W.
func (x Float64) Cmp(w W) int {
	o := x.other(w)
	switch {
	case x < o:
		return -1
	case x > o:
		return 1
	default:
		return 0
	}
}

// Sign implements W.
func (x Float64) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// IsZero implements W.
func (x Float64) IsZero() bool { return x == 0 }

// Zero implements W.
func (x Float64) Zero() W { return Float64(0) }

// One implements W.
func (x Float64) One() W { return Float64(1) }

// FromInt64 implements W.
func (x Float64) FromInt64(n int64) W { return Float64(n) }

// Float64 implements W.
func (x Float64) Float64() float64 { return float64(x) }

// String implements W.
func (x Float64) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }
