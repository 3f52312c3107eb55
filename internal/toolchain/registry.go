package toolchain

import (
	"context"
	"os"
	"slices"
	"sync"

	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/agentx-labs/jdkx/internal/operation"
	"github.com/agentx-labs/jdkx/internal/platform"
	"golang.org/x/sync/singleflight"
)

// DetectionOperation describes the one-time detection pass.
var DetectionOperation = operation.Descriptor{
	DisplayName:         "Toolchain detection",
	ProgressDisplayName: "Detecting local java toolchains",
}

const flightKey = "installations"

// Logger receives warnings about dropped candidates.
type Logger interface {
	Warnf(format string, args ...any)
}

// Registry collects installation locations from its suppliers once per
// process and serves the canonical result from then on.
type Registry struct {
	suppliers []InstallationSupplier
	executor  operation.Executor
	logger    Logger

	stat         func(string) (os.FileInfo, error)
	canonicalize func(string) (string, error)

	mu       sync.Mutex
	computed bool
	snapshot []string
	group    singleflight.Group
}

// Option configures a Registry.
type Option func(*Registry)

// WithExecutor runs the detection pass through exec.
func WithExecutor(exec operation.Executor) Option {
	return func(r *Registry) { r.executor = exec }
}

// WithLogger sends dropped-candidate warnings to l.
func WithLogger(l Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry returns a registry over suppliers, which are invoked in order.
// The registry keeps its own copy of the slice.
func NewRegistry(suppliers []InstallationSupplier, opts ...Option) *Registry {
	r := &Registry{
		suppliers:    slices.Clone(suppliers),
		executor:     operation.Direct{},
		logger:       log.CategoryLogger{Category: log.CatRegistry},
		stat:         os.Stat,
		canonicalize: platform.Canonicalize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.executor == nil {
		r.executor = operation.Direct{}
	}
	return r
}

// Suppliers returns the registered suppliers in registration order.
func (r *Registry) Suppliers() []InstallationSupplier {
	return slices.Clone(r.suppliers)
}

// ListInstallations returns the sorted, de-duplicated canonical paths of all
// valid installations. The first successful call runs every supplier; later
// calls return the same result without touching the filesystem. Concurrent
// first callers share a single detection pass, which runs under the context
// of the caller that started it.
//
// Supplier errors are returned unchanged. A failed pass caches nothing.
func (r *Registry) ListInstallations(ctx context.Context) ([]string, error) {
	if s, ok := r.cached(); ok {
		return s, nil
	}

	v, err, _ := r.group.Do(flightKey, func() (any, error) {
		if s, ok := r.cached(); ok {
			return s, nil
		}
		s, err := operation.Call(ctx, r.executor, DetectionOperation, r.collect)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.snapshot = s
		r.computed = true
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]string)), nil
}

func (r *Registry) cached() ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.computed {
		return nil, false
	}
	return slices.Clone(r.snapshot), true
}

func (r *Registry) collect(ctx context.Context) ([]string, error) {
	var locations []InstallationLocation
	for _, s := range r.suppliers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := s.Get(ctx)
		if err != nil {
			return nil, err
		}
		log.Debug(log.CatDetect, "supplier finished", "supplier", s.SourceName(), "candidates", len(found))
		locations = append(locations, found...)
	}

	seen := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		if !r.installationExists(loc) {
			continue
		}
		canonical, err := r.canonicalize(loc.Path())
		if err != nil {
			return nil, &CanonicalizationError{Path: loc.Path(), Err: err}
		}
		seen[canonical] = struct{}{}
	}

	result := make([]string, 0, len(seen))
	for p := range seen {
		result = append(result, p)
	}
	slices.Sort(result)
	return result, nil
}

// installationExists reports whether loc names an existing directory and
// warns otherwise.
func (r *Registry) installationExists(loc InstallationLocation) bool {
	fi, err := r.stat(loc.Path())
	if err != nil {
		r.logger.Warnf("directory %s used for java installations does not exist", loc.DisplayName())
		return false
	}
	if !fi.IsDir() {
		r.logger.Warnf("path for java installation %s points to a file, not a directory", loc.DisplayName())
		return false
	}
	return true
}
