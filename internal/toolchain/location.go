package toolchain

import (
	"context"
	"fmt"
)

// InstallationLocation is a raw candidate directory reported by a supplier,
// tagged with a description of where it came from.
type InstallationLocation struct {
	path   string
	source string
}

// NewInstallationLocation returns a location for path found via source.
func NewInstallationLocation(path, source string) InstallationLocation {
	return InstallationLocation{path: path, source: source}
}

// Path returns the raw, non-canonical path.
func (l InstallationLocation) Path() string { return l.path }

// Source returns the human-readable origin, e.g. "environment variable 'JDK17'".
func (l InstallationLocation) Source() string { return l.source }

// DisplayName is the form used in diagnostics: '<path>' (<source>).
func (l InstallationLocation) DisplayName() string {
	return fmt.Sprintf("'%s' (%s)", l.path, l.source)
}

// InstallationSupplier produces candidate installation locations.
// Implementations may block on filesystem or process I/O and must be safe to
// call from any goroutine.
type InstallationSupplier interface {
	// SourceName identifies the supplier in diagnostics.
	SourceName() string
	// Get returns the supplier's candidates. Missing sources yield an empty
	// slice, not an error.
	Get(ctx context.Context) ([]InstallationLocation, error)
}

// SupplierFunc adapts a function to the InstallationSupplier interface.
type SupplierFunc struct {
	Name string
	Fn   func(ctx context.Context) ([]InstallationLocation, error)
}

// SourceName returns s.Name.
func (s SupplierFunc) SourceName() string { return s.Name }

// Get calls s.Fn.
func (s SupplierFunc) Get(ctx context.Context) ([]InstallationLocation, error) {
	return s.Fn(ctx)
}
