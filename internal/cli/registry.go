package cli

import (
	"sync"

	"github.com/agentx-labs/jdkx/internal/config"
	"github.com/agentx-labs/jdkx/internal/detect"
	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/agentx-labs/jdkx/internal/toolchain"
)

var (
	registryMu     sync.Mutex
	sharedRegistry *toolchain.Registry
)

// installationRegistry returns the process-wide registry, building it from
// the loaded configuration on first use.
func installationRegistry() (*toolchain.Registry, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if sharedRegistry != nil {
		return sharedRegistry, nil
	}
	settings, err := config.Current()
	if err != nil {
		return nil, err
	}
	sharedRegistry = toolchain.NewRegistry(
		detect.Default(settings.Installations, detect.OSEnvironment{}),
		toolchain.WithExecutor(executor),
		toolchain.WithLogger(log.CategoryLogger{Category: log.CatRegistry}),
	)
	return sharedRegistry, nil
}

// resetRegistry drops the shared registry. Tests only.
func resetRegistry() {
	registryMu.Lock()
	sharedRegistry = nil
	registryMu.Unlock()
}
