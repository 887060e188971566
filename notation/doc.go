// Package notation reads and writes sequences of numeric literals.
//
// Input is a stream of literals separated by whitespace or commas, with
// ';' line comments:
//
//	; measurements
//	1/3, 0.25 1.50M
//	42N 1+2i ##Inf
//
// Reader reports every malformed literal as a *ParseError carrying the
// line and column of the offending byte. Writer renders numbers back in
// canonical form and can append a CRC-32 trailer that Reader verifies.
package notation
