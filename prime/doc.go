// Package prime decomposes unsigned 32-bit integers into their prime powers.
//
// 🚀 What is a prime factorization?
//
//	Every integer n ≥ 2 is, in exactly one way, a product of primes raised
//	to positive powers:  360 = 2³ · 3² · 5.  The factorization is the list
//	of those (base, exponent) pairs.  It is the building block for:
//	  • Greatest Common Factor (intersection of prime powers)
//	  • Least Common Multiple (union of prime powers)
//	  • divisor counting, radicals, totients …
//
// ✨ Key features:
//   - total function: every uint32 has a Factorization, 0 and 1 included
//   - pure: no caches, no package state, safe to call from any goroutine
//   - deterministic order: bases appear in the order they are discovered,
//     which is ascending; Sorted() makes that explicit when it matters
//   - wrap-around arithmetic: Product and Value follow uint32 semantics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primal/prime"
//
//	f := prime.Factors(24568)    // [2^3 37 83]
//	fmt.Println(f)               // 2^3 · 37 · 83
//	fmt.Println(f.Product())     // 24568
//	fmt.Println(prime.IsPrime(83)) // true
//
// Degenerate inputs:
//
//	0 and 1 have no prime factorization.  They are encoded as a single
//	pseudo-factor equal to themselves, [{0 1}] and [{1 1}], so that the
//	product invariant still holds and reductions built on top behave:
//	0 absorbs an LCM, 1 drops out of a GCF intersection.
//
// Performance:
//
//   - Time:   O(√n) divisor scan per level, O(log n) levels
//   - Memory: O(number of distinct primes) ≤ 9 entries for uint32
//
// Trial division is plenty for the uint32 range; it is not meant for
// numbers that need sub-exponential factoring.
package prime
