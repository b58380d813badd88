// SPDX-License-Identifier: MIT
// Package balance: sentinel errors and stage tags.

package balance

import (
	"errors"
	"fmt"
)

// ErrNotConserved signals that a solved vector failed the conservation
// re-check against the original matrix. It indicates an engine defect.
var ErrNotConserved = errors.New("balance: solution does not conserve every symbol")

// ErrNilEquation is returned when a nil equation is passed in.
var ErrNilEquation = errors.New("balance: nil equation")

// Stage tags used in wrapped errors and log records.
const (
	stageBuild  = "build"
	stageReduce = "reduce"
	stageSolve  = "solve"
	stageVerify = "verify"
	stageAssign = "assign"
)

// stageErrorf wraps err as "balance: <stage>: <err>".
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("balance: %s: %w", stage, err)
}
