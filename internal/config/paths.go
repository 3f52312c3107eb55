package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/jdkx/internal/branding"
)

// Directory and file names under the jdkx home.
const (
	ProvisionedDirName = "jdks"
	LogFileName        = "jdkx.log"
	TracesDirName      = "traces"
	TraceFileName      = "traces.jsonl"
)

// Dir returns the jdkx home directory. It checks the JDKX_HOME environment
// variable first, then falls back to ~/.jdkx.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jdkx/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// ProvisionedDir returns the default directory for provisioned JDKs.
func ProvisionedDir() string {
	return filepath.Join(Dir(), ProvisionedDirName)
}

// LogPath returns the default debug log file.
func LogPath() string {
	return filepath.Join(Dir(), LogFileName)
}

// TracePath returns the default JSONL trace file.
func TracePath() string {
	return filepath.Join(Dir(), TracesDirName, TraceFileName)
}

// EnsureDir creates the jdkx home directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}
