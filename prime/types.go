package prime

import (
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// PrimePower is one term Base^Exponent of a Factorization.
//
// Base is a prime, except for the degenerate encodings {0 1} and {1 1}
// produced by Factors(0) and Factors(1). Exponent is always ≥ 1 in a
// Factorization returned by this package.
type PrimePower struct {
	Base     uint32
	Exponent uint32
}

// Value returns Base^Exponent using uint32 wrap-around arithmetic.
func (p PrimePower) Value() uint32 {
	v := uint32(1)
	for e := p.Exponent; e > 0; e-- {
		v *= p.Base
	}

	return v
}

// checkedValue is Value with overflow detection.
func (p PrimePower) checkedValue() (uint32, bool) {
	v := uint32(1)
	for e := p.Exponent; e > 0; e-- {
		hi, lo := bits.Mul32(v, p.Base)
		if hi != 0 {
			return lo, false
		}
		v = lo
	}

	return v, true
}

// String renders "b" for a first power and "b^e" otherwise.
func (p PrimePower) String() string {
	if p.Exponent == 1 {
		return strconv.FormatUint(uint64(p.Base), 10)
	}

	return strconv.FormatUint(uint64(p.Base), 10) + "^" + strconv.FormatUint(uint64(p.Exponent), 10)
}

// Factorization is an ordered list of PrimePower with pairwise distinct bases.
//
// Invariant: the product of every Base^Exponent equals the number that was
// factorized (see Factors).
type Factorization []PrimePower

// Product multiplies Base^Exponent over all entries using uint32
// wrap-around arithmetic. The empty product is 1.
//
// This is the recombination step shared by GCF and LCM.
func (f Factorization) Product() uint32 {
	total := uint32(1)
	for _, p := range f {
		total *= p.Value()
	}

	return total
}

// CheckedProduct is Product that reports ok=false as soon as an intermediate
// power or product does not fit in uint32. The returned value is then the
// wrapped result.
func (f Factorization) CheckedProduct() (total uint32, ok bool) {
	total, ok = 1, true
	for _, p := range f {
		v, fits := p.checkedValue()
		hi, lo := bits.Mul32(total, v)
		if !fits || hi != 0 {
			ok = false
		}
		total = lo
	}

	return total, ok
}

// Find returns the entry whose Base equals base.
func (f Factorization) Find(base uint32) (PrimePower, bool) {
	for _, p := range f {
		if p.Base == base {
			return p, true
		}
	}

	return PrimePower{}, false
}

// Sorted returns a copy of f ordered by ascending Base. f is left untouched.
func (f Factorization) Sorted() Factorization {
	out := slices.Clone(f)
	slices.SortFunc(out, func(a, b PrimePower) int {
		switch {
		case a.Base < b.Base:
			return -1
		case a.Base > b.Base:
			return 1
		}

		return 0
	})

	return out
}

// String joins the terms with " · ", e.g. "2^3 · 37 · 83".
func (f Factorization) String() string {
	terms := make([]string, len(f))
	for i, p := range f {
		terms[i] = p.String()
	}

	return strings.Join(terms, " · ")
}
