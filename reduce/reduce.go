package reduce

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/primal/prime"
)

// LCM returns the Least Common Multiple of numbers.
//
// Every number is factorized, the factorizations are merged with Union and
// the result is recombined with Factorization.Product.
//
// Conventions:
//   - LCM(nil) == 1, the multiplicative identity.
//   - A 0 in numbers contributes the pseudo-factor {0 1}, so the result is 0.
//   - The product wraps around on uint32 overflow; see LCMChecked.
func LCM(numbers []uint32) uint32 {
	return Union(factorizeAll(numbers)...).Product()
}

// LCMChecked is LCM with overflow detection. It returns ErrOverflow when the
// exact result does not fit in uint32.
func LCMChecked(numbers []uint32) (uint32, error) {
	v, ok := Union(factorizeAll(numbers)...).CheckedProduct()
	if !ok {
		return 0, ErrOverflow
	}

	return v, nil
}

// GCF returns the Greatest Common Factor of numbers.
//
// Every number is factorized, the factorizations are merged with
// Intersection and the result is recombined with Factorization.Product.
//
// Errors:
//   - ErrInvalidInput — numbers is empty or contains 0.
func GCF(numbers []uint32) (uint32, error) {
	if len(numbers) == 0 || slices.Contains(numbers, 0) {
		return 0, ErrInvalidInput
	}

	return Intersection(factorizeAll(numbers)...).Product(), nil
}

// Union merges factorizations keeping, for every base seen anywhere, the
// largest exponent. The result is ordered by ascending base.
func Union(fs ...prime.Factorization) prime.Factorization {
	best := make(map[uint32]uint32)
	for _, f := range fs {
		for _, p := range f {
			if e, ok := best[p.Base]; !ok || p.Exponent > e {
				best[p.Base] = p.Exponent
			}
		}
	}

	bases := maps.Keys(best)
	slices.Sort(bases)

	out := make(prime.Factorization, 0, len(bases))
	for _, b := range bases {
		out = append(out, prime.PrimePower{Base: b, Exponent: best[b]})
	}

	return out
}

// Intersection merges factorizations keeping only the bases present in all
// of them, each with its smallest exponent. The result follows the order
// of fs[0]. The intersection of no factorization is empty.
func Intersection(fs ...prime.Factorization) prime.Factorization {
	if len(fs) == 0 {
		return prime.Factorization{}
	}

	out := make(prime.Factorization, 0, len(fs[0]))
next:
	for _, p := range fs[0] {
		kept := p
		for _, other := range fs[1:] {
			q, ok := other.Find(p.Base)
			if !ok {
				continue next
			}
			if q.Exponent < kept.Exponent {
				kept.Exponent = q.Exponent
			}
		}
		out = append(out, kept)
	}

	return out
}

// factorizeAll runs prime.Factors on every number.
func factorizeAll(numbers []uint32) []prime.Factorization {
	fs := make([]prime.Factorization, len(numbers))
	for i, n := range numbers {
		fs[i] = prime.Factors(n)
	}

	return fs
}
