package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every ConfigError via errors.Is.
	ErrConfig = errors.New("invalid configuration")
	// ErrInvariant matches every InvariantError via errors.Is.
	ErrInvariant = errors.New("invariant violation")
)

// ConfigError reports an invalid construction parameter. A game cannot
// start once one is returned.
type ConfigError string

func (e ConfigError) Error() string { return "invalid configuration: " + string(e) }

func (e ConfigError) Is(target error) bool { return target == ErrConfig }

func configErrorf(format string, args ...any) error {
	return ConfigError(fmt.Sprintf(format, args...))
}

// InvariantError signals a logic defect detected mid-game, such as a pass
// with no tokens left. The run is aborted rather than clamped.
type InvariantError string

func (e InvariantError) Error() string { return "invariant violation: " + string(e) }

func (e InvariantError) Is(target error) bool { return target == ErrInvariant }

func invariantErrorf(format string, args ...any) error {
	return InvariantError(fmt.Sprintf(format, args...))
}
