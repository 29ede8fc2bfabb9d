// Package reduce merges prime factorizations of several numbers into their
// Greatest Common Factor (GCF) and Least Common Multiple (LCM).
//
// 🚀 How does it work?
//
//	Both reductions use the prime-factorization method rather than Euclid:
//	  1. factorize every input with prime.Factors
//	  2. merge the prime powers
//	       • GCF → intersection, keep the smallest exponent
//	       • LCM → union, keep the largest exponent
//	  3. multiply the merged powers back together
//
//	  20 = 2²·5      75 = 3·5²
//	  GCF = 5        LCM = 2²·3·5² = 300
//
// ✨ Conventions:
//   - LCM is total: LCM(nil) = 1, any 0 input gives 0.
//   - GCF is fallible: empty input or a 0 element returns ErrInvalidInput.
//   - Arithmetic is uint32 with silent wrap-around; LCMChecked reports
//     ErrOverflow instead for callers that need an exact answer.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primal/reduce"
//
//	lcm := reduce.LCM([]uint32{12, 15, 75}) // 300
//	gcf, err := reduce.GCF([]uint32{12, 15, 75})
//	if err != nil {
//	  // ErrInvalidInput
//	}
//	fmt.Println(gcf) // 3
//
// Performance:
//
//   - Time:   O(Σ √nᵢ) for the factorizations, O(m·k) for the merge
//   - Memory: O(m·k), m inputs with at most k = 9 distinct primes each
package reduce
