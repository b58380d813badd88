// SPDX-License-Identifier: MIT

// Package format renders equations, terms and conservation matrices as text.
//
// Counts are printed as Unicode subscripts and charges as superscripts
// (Fe₂O₃, SO₄²⁻, e⁻). Top-level coefficients are plain digits, with 1
// omitted unless WithUnitCoefficients is given. WithColor highlights
// coefficients: positive in green, zero or negative in yellow.
package format
