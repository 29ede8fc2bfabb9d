// Package primal computes prime factorizations, Greatest Common Factors and
// Least Common Multiples of unsigned 32-bit integers with the
// prime-factorization method.
//
// 🚀 What is primal?
//
//	A small, pure-Go toolkit that:
//		• decomposes any uint32 into prime powers (trial division)
//		• merges factorizations by intersection (GCF) or union (LCM)
//		• recombines prime powers with uint32 wrap-around arithmetic
//
// ✨ Why choose primal?
//
//   - Total where it can be: every uint32 factorizes, LCM never fails
//   - Explicit where it must be: GCF of nothing or of 0 is an error
//   - Pure functions – no caches, no global state
//
// Under the hood, everything is organized under these packages:
//
//	prime/           — Factors, IsPrime, PrimePower & Factorization types
//	reduce/          — GCF, LCM, LCMChecked, Union, Intersection
//	internal/config/ — TOML settings for the CLI
//	cmd/primal/      — command-line front end
//	examples/        — runnable scenarios
//
// Quick example:
//
//	20 = 2²·5     75 = 3·5²
//	GCF = 5       LCM = 2²·3·5² = 300
//
//	go get github.com/katalvlaran/primal
package primal
