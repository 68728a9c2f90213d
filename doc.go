// Package exactexpr implements an arithmetic calculator that keeps results
// exact wherever exactness is representable.
//
// Expressions use decimal literals, which may end in a repeating block such
// as "1.0(44)" for 1.04444..., the binary operators + - * / ^ (with × and ÷
// as synonyms), parentheses, postfix ! for factorial, and prefix √ for square
// roots. "^" is right-associative and binds tighter than multiplication. A
// sign written directly before a literal belongs to it, so "-2^2" is 4.
//
// Integers and fractions are exact and arbitrarily large. Irrational roots
// stay symbolic while an expression is evaluated, so "(√2)^2" is exactly 2.
// Values that cannot be kept exact are rounded to float64, and values beyond
// the range of float64 become sentinels that still carry what is known about
// them: ReallyBig, ReallySmall, Infinity, Unknown, and NaN.
//
// Every parsed expression also has a display tree, which renders the input as
// written either as plain text or as LaTeX-like markup.
package exactexpr
