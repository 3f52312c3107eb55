package toolchain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration marks failures that stem from the set of
// configured installations rather than from a single bad candidate.
var ErrInvalidConfiguration = errors.New("invalid java installation configuration")

// CanonicalizationError is returned when a validated installation path
// cannot be resolved to its canonical form. It aborts the whole detection
// pass.
type CanonicalizationError struct {
	Path string
	Err  error
}

func (e *CanonicalizationError) Error() string {
	return fmt.Sprintf("could not canonicalize path to java installation: %s: %v", e.Path, e.Err)
}

func (e *CanonicalizationError) Unwrap() error { return e.Err }

// Is reports true for ErrInvalidConfiguration.
func (e *CanonicalizationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
