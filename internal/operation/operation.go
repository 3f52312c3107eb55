// Package operation runs named units of work. An Executor may record timing
// or tracing around a computation but never alters its result.
package operation

import "context"

// Descriptor names a unit of work.
type Descriptor struct {
	DisplayName         string // e.g. "Toolchain detection"
	ProgressDisplayName string // e.g. "Detecting local java toolchains"
}

// Executor runs a computation as a named unit of work.
type Executor interface {
	Run(ctx context.Context, desc Descriptor, fn func(ctx context.Context) error) error
}

// Direct runs computations inline with no bookkeeping.
type Direct struct{}

// Run calls fn with ctx.
func (Direct) Run(ctx context.Context, _ Descriptor, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Call runs fn through exec and returns its result unchanged.
// A nil exec runs fn directly.
func Call[T any](ctx context.Context, exec Executor, desc Descriptor, fn func(ctx context.Context) (T, error)) (T, error) {
	if exec == nil {
		exec = Direct{}
	}
	var result T
	err := exec.Run(ctx, desc, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}
