// Command primal prints prime factorizations, least common multiples and
// greatest common factors of unsigned 32-bit integers.
//
//	primal factors 24568 68549888
//	primal lcm 12 15 75
//	primal gcf 330 75 450 225
//	primal demo
//
// Settings come from an optional TOML file (--config) and can be overridden
// by flags: --format table|plain, --sorted, --strict, --log-level.
package main
