package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		valid     bool
		issuePath string
	}{
		{
			name:  "empty document",
			yaml:  "",
			valid: true,
		},
		{
			name: "full document",
			yaml: `installations:
  paths: [/opt/jdk17]
  from_env: [JDK17_HOME]
  auto_detect: true
  auto_download_dir: /var/jdks
tracing:
  enabled: true
  exporter: otlp
  otlp_endpoint: collector:4317
  sample_rate: 0.5
log:
  level: debug
`,
			valid: true,
		},
		{
			name:  "values written by config set",
			yaml:  "installations:\n  paths: /opt/a,/opt/b\n  auto_detect: \"false\"\n",
			valid: true,
		},
		{
			name:      "unknown exporter",
			yaml:      "tracing:\n  exporter: kafka\n",
			issuePath: "/tracing/exporter",
		},
		{
			name:      "bad env var name",
			yaml:      "installations:\n  from_env: [\"1BAD\"]\n",
			issuePath: "/installations/from_env/0",
		},
		{
			name:      "sample rate out of range",
			yaml:      "tracing:\n  sample_rate: 3\n",
			issuePath: "/tracing/sample_rate",
		},
		{
			name:      "unknown top-level key",
			yaml:      "toolchains: {}\n",
			issuePath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			require.NoError(t, err)
			require.Equal(t, tt.valid, result.Valid, "issues: %+v", result.Issues)
			if tt.valid {
				require.Empty(t, result.Issues)
				return
			}
			require.NotEmpty(t, result.Issues)
			paths := make([]string, 0, len(result.Issues))
			for _, issue := range result.Issues {
				paths = append(paths, issue.Path)
				require.NotEmpty(t, issue.Message)
			}
			require.Contains(t, paths, tt.issuePath)
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	_, err := Validate([]byte("installations: [unclosed"))
	require.ErrorContains(t, err, "parsing YAML")
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: verbose\n"), 0644))

	result, err := ValidateFile(path)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, "/log/level", result.Issues[0].Path)
	require.Equal(t, "enum", result.Issues[0].Keyword)

	_, err = ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
