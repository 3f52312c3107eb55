package detect

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/agentx-labs/jdkx/internal/config"
	"github.com/agentx-labs/jdkx/internal/toolchain"
)

// Environment is the slice of process state suppliers read.
type Environment interface {
	LookupEnv(key string) (string, bool)
	UserHomeDir() (string, error)
}

// OSEnvironment reads the real process environment.
type OSEnvironment struct{}

// LookupEnv calls os.LookupEnv.
func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// UserHomeDir calls os.UserHomeDir.
func (OSEnvironment) UserHomeDir() (string, error) { return os.UserHomeDir() }

// Default returns the suppliers for settings in registration order:
// explicit paths, environment variables, JAVA_HOME, then (with auto
// detection on) provisioned JDKs, SDKMAN!, asdf, jabba and the OS locations.
func Default(settings config.Installations, env Environment) []toolchain.InstallationSupplier {
	suppliers := []toolchain.InstallationSupplier{
		&LocationList{Paths: settings.Paths},
		&EnvironmentVariableList{Names: settings.FromEnv, Env: env},
		&Current{Env: env},
	}
	if !settings.AutoDetect {
		return suppliers
	}

	suppliers = append(suppliers,
		Provisioned(settings.AutoDownloadDir),
		SDKMAN(env),
		Asdf(env),
		Jabba(env),
	)
	switch runtime.GOOS {
	case "linux":
		suppliers = append(suppliers, Linux())
	case "darwin":
		suppliers = append(suppliers, MacOS(env))
	}
	return suppliers
}

// LocationList reports explicitly configured installation directories.
type LocationList struct {
	Paths []string
}

// SourceName implements toolchain.InstallationSupplier.
func (s *LocationList) SourceName() string {
	return "config '" + config.KeyInstallationPaths + "'"
}

// Get returns one location per configured path.
func (s *LocationList) Get(context.Context) ([]toolchain.InstallationLocation, error) {
	out := make([]toolchain.InstallationLocation, 0, len(s.Paths))
	for _, p := range s.Paths {
		out = append(out, toolchain.NewInstallationLocation(filepath.Clean(p), s.SourceName()))
	}
	return out, nil
}

// EnvironmentVariableList reports the values of named environment variables.
// Unset or empty variables are skipped.
type EnvironmentVariableList struct {
	Names []string
	Env   Environment
}

// SourceName implements toolchain.InstallationSupplier.
func (s *EnvironmentVariableList) SourceName() string {
	return "config '" + config.KeyInstallationFromEnv + "'"
}

// Get returns one location per set variable.
func (s *EnvironmentVariableList) Get(context.Context) ([]toolchain.InstallationLocation, error) {
	var out []toolchain.InstallationLocation
	for _, name := range s.Names {
		v, ok := s.Env.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		out = append(out, toolchain.NewInstallationLocation(v, "environment variable '"+name+"'"))
	}
	return out, nil
}

// Current reports JAVA_HOME.
type Current struct {
	Env Environment
}

// SourceName implements toolchain.InstallationSupplier.
func (s *Current) SourceName() string { return "current JVM" }

// Get returns JAVA_HOME when set.
func (s *Current) Get(context.Context) ([]toolchain.InstallationLocation, error) {
	v, ok := s.Env.LookupEnv("JAVA_HOME")
	if !ok || v == "" {
		return nil, nil
	}
	return []toolchain.InstallationLocation{
		toolchain.NewInstallationLocation(v, "environment variable 'JAVA_HOME'"),
	}, nil
}
