// Package compound computes compound-interest projections with fixed-point
// arithmetic. Money, rates and growth multipliers are scaled unsigned
// integers: no value ever goes through a float.
//
// The core functionalities include:
//   - Input Parsing: converting command-line text into Cents, Rate, Years and
//     Frequency values, reporting which field failed.
//   - Growth Calculation: a truncating fixed-point power computed by
//     exponentiation by squaring, applied to the principal.
//   - Reporting: plain, currency-formatted and JSON renditions of a Projection,
//     and an exact decimal reference value to measure the truncation drift.
//
// This package serves as the foundational logic for the `compound`
// command-line tool.
package compound
