package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/agentx-labs/jdkx/internal/branding"
	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/agentx-labs/jdkx/internal/tracing"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyInstallationPaths   = "installations.paths"
	KeyInstallationFromEnv = "installations.from_env"
	KeyAutoDetect          = "installations.auto_detect"
	KeyAutoDownloadDir     = "installations.auto_download_dir"
	KeyTracingEnabled      = "tracing.enabled"
	KeyTracingExporter     = "tracing.exporter"
	KeyTracingFilePath     = "tracing.file_path"
	KeyTracingEndpoint     = "tracing.otlp_endpoint"
	KeyTracingSampleRate   = "tracing.sample_rate"
	KeyTracingServiceName  = "tracing.service_name"
	KeyLogFile             = "log.file"
	KeyLogLevel            = "log.level"
)

// Settings is the typed view of the configuration.
type Settings struct {
	Installations Installations  `mapstructure:"installations"`
	Tracing       tracing.Config `mapstructure:"tracing"`
	Log           Log            `mapstructure:"log"`
}

// Installations controls which suppliers feed the registry.
type Installations struct {
	// Paths are explicit installation directories.
	Paths []string `mapstructure:"paths"`
	// FromEnv names environment variables that each hold an installation directory.
	FromEnv []string `mapstructure:"from_env"`
	// AutoDetect enables the well-known-location suppliers (SDKMAN, asdf, /usr/lib/jvm, ...).
	AutoDetect bool `mapstructure:"auto_detect"`
	// AutoDownloadDir holds provisioned JDKs, one per child directory.
	AutoDownloadDir string `mapstructure:"auto_download_dir"`
}

// Log configures the debug log.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load initializes Viper to read from the config file and environment.
// JDKX_INSTALLATIONS_PATHS overrides installations.paths, and so on.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug(log.CatConfig, "config file not read", "path", FilePath(), "error", err)
	}
}

func setDefaults() {
	tc := tracing.DefaultConfig()
	viper.SetDefault(KeyInstallationPaths, []string{})
	viper.SetDefault(KeyInstallationFromEnv, []string{})
	viper.SetDefault(KeyAutoDetect, true)
	viper.SetDefault(KeyAutoDownloadDir, ProvisionedDir())
	viper.SetDefault(KeyTracingEnabled, tc.Enabled)
	viper.SetDefault(KeyTracingExporter, tc.Exporter)
	viper.SetDefault(KeyTracingFilePath, TracePath())
	viper.SetDefault(KeyTracingEndpoint, tc.OTLPEndpoint)
	viper.SetDefault(KeyTracingSampleRate, tc.SampleRate)
	viper.SetDefault(KeyTracingServiceName, tc.ServiceName)
	viper.SetDefault(KeyLogFile, LogPath())
	viper.SetDefault(KeyLogLevel, "warn")
}

// Current decodes the loaded configuration into Settings. Comma-separated
// strings decode into list fields.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	s.Installations.Paths = compact(s.Installations.Paths)
	s.Installations.FromEnv = compact(s.Installations.FromEnv)
	return &s, nil
}

// compact trims entries and drops empty ones.
func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Info(log.CatConfig, "config updated", "key", key, "file", configFile)

	return nil
}
