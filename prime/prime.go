package prime

// Factors — prime factorization by recursive trial division
//
// Description:
//
//	Factors returns the prime factorization of n, one PrimePower per distinct
//	prime, the exponent being its multiplicity.
//
// Algorithm Outline:
//  1. Find the smallest divisor i ≥ 2 of n (scan stops at ⌊√n⌋).
//  2. No divisor: n is prime (or 0/1) and is emitted as {n 1}.
//  3. Otherwise handle i and n/i in turn: a prime is emitted, a composite
//     is decomposed recursively.
//  4. Emitting a base that is already present bumps its exponent instead
//     of appending a duplicate.
//
// Degenerate inputs:
//
//	Factors(0) == [{0 1}] and Factors(1) == [{1 1}].
//
// Complexity:
//
//	Time   = O(√n · log n) worst case
//	Memory = O(k), k = number of distinct primes (k ≤ 9 for uint32)
//
// Factors never fails and keeps no state between calls.
func Factors(n uint32) Factorization {
	primes := make(Factorization, 0, 4)
	decompose(n, &primes)

	if len(primes) == 0 {
		primes = append(primes, PrimePower{Base: n, Exponent: 1})
	}

	return primes
}

// IsPrime reports whether n is prime, by trial division over [2, ⌊√n⌋].
// Values ≤ 1 are never prime.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i*i <= uint64(n); i++ {
		if uint64(n)%i == 0 {
			return false
		}
	}

	return true
}

// decompose appends the prime powers of n to acc. It appends nothing when n
// has no divisor in [2, n), i.e. when n is prime, 0 or 1.
func decompose(n uint32, acc *Factorization) {
	i, ok := smallestDivisor(n)
	if !ok {
		return
	}

	for _, part := range [2]uint32{i, n / i} {
		if IsPrime(part) {
			acc.add(part)
		} else {
			decompose(part, acc)
		}
	}
}

// smallestDivisor returns the smallest i in [2, ⌊√n⌋] dividing n.
// Any n with a divisor in [2, n) has one in that range.
func smallestDivisor(n uint32) (uint32, bool) {
	for i := uint64(2); i*i <= uint64(n); i++ {
		if uint64(n)%i == 0 {
			return uint32(i), true
		}
	}

	return 0, false
}

// add records one more occurrence of base.
func (f *Factorization) add(base uint32) {
	for i := range *f {
		if (*f)[i].Base == base {
			(*f)[i].Exponent++
			return
		}
	}
	*f = append(*f, PrimePower{Base: base, Exponent: 1})
}
