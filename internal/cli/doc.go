// SPDX-License-Identifier: MIT

// Package cli wires configuration, logging and the balancing engine into
// the chembal command tree:
//
//	chembal [flags] [EQUATION]   balance one equation, or read equations
//	                             interactively when none is given
//	chembal batch [flags] FILE   balance one equation per line of FILE
//	                             ("-" reads standard input)
package cli
