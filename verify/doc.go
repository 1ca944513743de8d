// Package verify checks the rank-23 kernel against reference products.
//
// Run draws random 3×3 matrices and compares rank23.Mul / rank23.MulRing
// with the naive product over several rings:
//
//   - fixed:   zero·zero, I·I, A·I and ones·ones
//   - int64:   exact integers in [Min, Max]
//   - mod:     residues modulo Modulus
//   - float64: real entries against gonum's mat.Dense product, within FloatTolerance
//   - poly:    integer polynomials of degree ≤ 2
//   - purity:  repeated calls agree and leave their inputs untouched
//   - opcount: one call costs 23 multiplications and 60 additions/subtractions
//
// Every trial is seeded from (Seed, check, trial index), so a failure can be
// reproduced with the same Config regardless of Workers.
package verify
