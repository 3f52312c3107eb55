package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("JDKX_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestPathsHonorHomeOverride(t *testing.T) {
	home := setupHome(t)

	require.Equal(t, home, Dir())
	require.Equal(t, filepath.Join(home, "config.yaml"), FilePath())
	require.Equal(t, filepath.Join(home, "jdks"), ProvisionedDir())
	require.Equal(t, filepath.Join(home, "jdkx.log"), LogPath())
	require.Equal(t, filepath.Join(home, "traces", "traces.jsonl"), TracePath())
}

func TestCurrent_Defaults(t *testing.T) {
	home := setupHome(t)
	Load()

	s, err := Current()
	require.NoError(t, err)
	require.Empty(t, s.Installations.Paths)
	require.Empty(t, s.Installations.FromEnv)
	require.True(t, s.Installations.AutoDetect)
	require.Equal(t, filepath.Join(home, "jdks"), s.Installations.AutoDownloadDir)
	require.False(t, s.Tracing.Enabled)
	require.Equal(t, "file", s.Tracing.Exporter)
	require.Equal(t, filepath.Join(home, "traces", "traces.jsonl"), s.Tracing.FilePath)
	require.Equal(t, "warn", s.Log.Level)
}

func TestCurrent_FromFile(t *testing.T) {
	home := setupHome(t)
	content := `installations:
  paths:
    - /opt/jdk17
    - /opt/jdk21
  from_env: [JDK8_HOME]
  auto_detect: false
tracing:
  enabled: true
  exporter: stdout
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644))
	Load()

	s, err := Current()
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/jdk17", "/opt/jdk21"}, s.Installations.Paths)
	require.Equal(t, []string{"JDK8_HOME"}, s.Installations.FromEnv)
	require.False(t, s.Installations.AutoDetect)
	require.True(t, s.Tracing.Enabled)
	require.Equal(t, "stdout", s.Tracing.Exporter)
}

func TestCurrent_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("JDKX_INSTALLATIONS_PATHS", "/opt/a, /opt/b,")
	t.Setenv("JDKX_INSTALLATIONS_AUTO_DETECT", "false")
	Load()

	s, err := Current()
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/a", "/opt/b"}, s.Installations.Paths)
	require.False(t, s.Installations.AutoDetect)
}

func TestSetAndGet(t *testing.T) {
	home := setupHome(t)
	Load()

	require.NoError(t, Set(KeyInstallationPaths, "/opt/jdk17,/opt/jdk21"))
	require.Equal(t, "/opt/jdk17,/opt/jdk21", Get(KeyInstallationPaths))

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "/opt/jdk17,/opt/jdk21")

	s, err := Current()
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/jdk17", "/opt/jdk21"}, s.Installations.Paths)
}
