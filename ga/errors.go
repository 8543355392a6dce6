package ga

import (
	"errors"
	"fmt"
)

// Sentinel errors. The concrete error types below wrap one of these so callers
// can use errors.Is without caring about the details.
var (
	ErrConfig              = errors.New("invalid configuration")
	ErrLengthMismatch      = errors.New("genotype length mismatch")
	ErrDegenerateSelection = errors.New("not enough survivors to breed")
	ErrUnresolvedGene      = errors.New("gene could not be resolved")
)

// ConfigError reports a configuration value that cannot start a run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// LengthMismatchError is returned when two genotypes that must line up
// position by position have different lengths.
type LengthMismatchError struct {
	Got  int
	Want int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("genotype length %d does not match expected length %d", e.Got, e.Want)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// DegenerateSelectionError is returned when breeding is attempted with fewer
// than two distinct survivors.
type DegenerateSelectionError struct {
	Survivors int
}

func (e *DegenerateSelectionError) Error() string {
	return fmt.Sprintf("need at least 2 distinct survivors to breed, have %d", e.Survivors)
}

func (e *DegenerateSelectionError) Unwrap() error { return ErrDegenerateSelection }

// UnresolvedGeneError is returned when every majority draw of the resolver
// ended in a tie.
type UnresolvedGeneError struct {
	Attempts int
	Bias     float64
}

func (e *UnresolvedGeneError) Error() string {
	return fmt.Sprintf("gene still tied after %d attempts (crossover_bias %.3f)", e.Attempts, e.Bias)
}

func (e *UnresolvedGeneError) Unwrap() error { return ErrUnresolvedGene }

func checkLength(got, want int) error {
	if got != want {
		return &LengthMismatchError{Got: got, Want: want}
	}
	return nil
}
