// Package mpint implements mutable arbitrary-precision signed integers.
//
// An Int stores its magnitude as a little-endian slice of 32-bit limbs
// together with a separate sign. Limbs above the logical length are never
// observed, the top limb of a non-zero value is never zero and zero carries
// no sign. Most operations follow the math/big receiver convention: the
// result is written to the receiver, which may alias any operand, and the
// receiver is returned so calls can be chained.
//
// Multiplication dispatches on the length of the shorter operand between
// schoolbook, in-place Karatsuba and 3-way Toom-Cook, with dedicated
// squaring routines and an optional parallel Karatsuba that forks the three
// half-size products. The crossover points are set per call through
// Options; they change how a product is computed, never its value.
//
// Division implements Knuth's Algorithm D with fast paths for divisors of
// one limb and divisors that fit in 64 bits. Quo and Rem truncate toward
// zero; Div and Mod are Euclidean, so Mod is never negative.
//
// Bitwise operations behave as if every Int were an infinite
// two's-complement bit string. Rsh floors for negative values.
//
// Operations that can fail return an error instead of panicking:
// division by zero, results that would exceed MaxBits, and malformed
// input. The receiver is left untouched when an error is returned.
package mpint
