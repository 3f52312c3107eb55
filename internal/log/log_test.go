package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := formatEntry(ts, LevelWarn, CatRegistry, "dropped", "path", "/opt/jdk", "reason", "missing")
	require.Equal(t, "2025-12-06T10:45:00 [WARN] [registry] dropped path=/opt/jdk reason=missing\n", got)
}

func TestFormatEntry_OddFields(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := formatEntry(ts, LevelInfo, CatDetect, "scan", "root")
	require.True(t, strings.HasSuffix(got, " root=<missing>\n"), "got %q", got)
}

func TestLogIsNoOpBeforeInit(t *testing.T) {
	Reset()
	// Must not panic.
	Warn(CatRegistry, "nothing listens")
}

func TestInitWriter_RespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetMinLevel(LevelWarn)
	Debug(CatDetect, "hidden")
	Info(CatDetect, "hidden too")
	Warn(CatDetect, "shown")
	ErrorErr(CatDetect, "failed", os.ErrNotExist)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[WARN] [detect] shown")
	require.Contains(t, out, "[ERROR] [detect] failed error=file does not exist")
}

func TestSetEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetEnabled(false)
	Warn(CatConfig, "muted")
	require.Empty(t, buf.String())

	SetEnabled(true)
	Warn(CatConfig, "audible")
	require.Contains(t, buf.String(), "audible")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jdkx.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(Reset)

	Info(CatTrace, "provider started", "exporter", "file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [trace] provider started exporter=file")
}

func TestCategoryLogger_Warnf(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	CategoryLogger{Category: CatRegistry}.Warnf("directory %s used for java installations does not exist", "/opt/x (test)")
	require.Contains(t, buf.String(), "[WARN] [registry] directory /opt/x (test) used for java installations does not exist")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}
