package jvm

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentx-labs/jdkx/internal/log"
)

// ExecTimeout bounds a single java -XshowSettings run.
var ExecTimeout = 10 * time.Second

// ExecProbe runs the installation's java binary and fills the version,
// vendor and architecture that a missing release file could not provide.
// Fields already set are left alone.
func ExecProbe(ctx context.Context, m *Metadata) error {
	if !m.HasJavaBinary {
		return fmt.Errorf("no java binary in %s", m.Home)
	}
	ctx, cancel := context.WithTimeout(ctx, ExecTimeout)
	defer cancel()

	javaBin := filepath.Join(m.Home, "bin", executable("java"))
	cmd := exec.CommandContext(ctx, javaBin, "-XshowSettings:properties", "-version")
	cmd.Dir = m.Home

	// The JVM prints settings and the version banner on stderr.
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", javaBin, err)
	}

	props := ParseSettings(out.Bytes())
	if m.JavaVersion == "" {
		m.JavaVersion = props["java.version"]
	}
	if m.Implementor == "" {
		m.Implementor = props["java.vendor"]
	}
	if m.Architecture == "" {
		m.Architecture = props["os.arch"]
	}
	if m.Version == nil && m.JavaVersion != "" {
		v, err := ParseJavaVersion(m.JavaVersion)
		if err != nil {
			log.Debug(log.CatProbe, "unparseable java version", "home", m.Home, "version", m.JavaVersion, "error", err)
		} else {
			m.Version = v
		}
	}
	log.Debug(log.CatProbe, "probed java binary", "home", m.Home, "version", m.JavaVersion)
	return nil
}

// ParseSettings reads the "key = value" lines of -XshowSettings:properties
// output. Continuation lines of multi-valued properties are ignored.
func ParseSettings(data []byte) map[string]string {
	props := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), " = ")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		props[key] = strings.TrimSpace(value)
	}
	return props
}
