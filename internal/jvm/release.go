package jvm

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/jdkx/internal/log"
)

// ReleaseFileName is the metadata file shipped at the root of every JDK
// since Java 9 (and by most Java 8 distributions).
const ReleaseFileName = "release"

// Metadata describes one installation directory.
type Metadata struct {
	Home           string            `json:"home"`
	JavaVersion    string            `json:"java_version,omitempty"`
	Implementor    string            `json:"implementor,omitempty"`
	Architecture   string            `json:"architecture,omitempty"`
	HasJavaBinary  bool              `json:"has_java_binary"`
	HasCompiler    bool              `json:"has_compiler"`
	Properties     map[string]string `json:"-"`
	Version        *semver.Version   `json:"-"`
	ReleaseMissing bool              `json:"release_missing,omitempty"`
}

// IsJDK reports whether the installation ships javac.
func (m *Metadata) IsJDK() bool { return m.HasCompiler }

// Probe reads the release file and binaries under home. A missing release
// file is not an error; the metadata is returned with ReleaseMissing set.
func Probe(home string) (*Metadata, error) {
	m := &Metadata{
		Home:          home,
		HasJavaBinary: fileExists(filepath.Join(home, "bin", executable("java"))),
		HasCompiler:   fileExists(filepath.Join(home, "bin", executable("javac"))),
	}

	data, err := os.ReadFile(filepath.Join(home, ReleaseFileName))
	if os.IsNotExist(err) {
		m.ReleaseMissing = true
		log.Debug(log.CatProbe, "no release file", "home", home)
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading release file in %s: %w", home, err)
	}

	m.Properties = ParseRelease(data)
	m.JavaVersion = m.Properties["JAVA_VERSION"]
	m.Implementor = m.Properties["IMPLEMENTOR"]
	m.Architecture = m.Properties["OS_ARCH"]

	if m.JavaVersion != "" {
		v, err := ParseJavaVersion(m.JavaVersion)
		if err != nil {
			log.Debug(log.CatProbe, "unparseable java version", "home", home, "version", m.JavaVersion, "error", err)
		} else {
			m.Version = v
		}
	}
	return m, nil
}

// ParseRelease parses KEY="value" lines. Blank lines, comments and lines
// without '=' are skipped; surrounding quotes are removed.
func ParseRelease(data []byte) map[string]string {
	props := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if key != "" {
			props[key] = value
		}
	}
	return props
}

var legacyVersion = regexp.MustCompile(`^1\.(\d+)(?:\.(\d+))?(?:_(\d+))?(.*)$`)

// ParseJavaVersion converts a JAVA_VERSION value to semver. Legacy
// "1.8.0_292" becomes 8.0.292; "17.0.2+8" and "21" parse directly, with
// build metadata preserved.
func ParseJavaVersion(raw string) (*semver.Version, error) {
	v := strings.TrimSpace(raw)
	if m := legacyVersion.FindStringSubmatch(v); m != nil {
		minor := m[2]
		if minor == "" {
			minor = "0"
		}
		patch := m[3]
		if patch == "" {
			patch = "0"
		}
		v = m[1] + "." + minor + "." + patch + m[4]
	}
	// Four-part versions (e.g. 11.0.9.1) keep only major.minor.patch.
	if core, rest, found := cutCore(v); found {
		v = core + rest
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("parsing java version %q: %w", raw, err)
	}
	return parsed, nil
}

// cutCore trims a numeric core beyond three components.
func cutCore(v string) (string, string, bool) {
	end := strings.IndexAny(v, "+-")
	core, rest := v, ""
	if end >= 0 {
		core, rest = v[:end], v[end:]
	}
	parts := strings.Split(core, ".")
	if len(parts) <= 3 {
		return v, "", false
	}
	return strings.Join(parts[:3], "."), rest, true
}

// SortByVersion orders metadata newest first. Entries without a version sort
// last, by home path. It is a display order only.
func SortByVersion(items []*Metadata) {
	slices.SortStableFunc(items, func(a, b *Metadata) int {
		switch {
		case a.Version == nil && b.Version == nil:
			return strings.Compare(a.Home, b.Home)
		case a.Version == nil:
			return 1
		case b.Version == nil:
			return -1
		}
		if c := b.Version.Compare(a.Version); c != 0 {
			return c
		}
		return strings.Compare(a.Home, b.Home)
	})
}

func executable(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
