//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds the isolated directories a detection run sees.
type testEnv struct {
	HomeDir  string // HOME; SDKMAN!, asdf and jabba live below it
	JdkxHome string // JDKX_HOME; config and provisioned JDKs
	Installs string // scratch directory for explicitly configured JDKs
}

// setupTestEnv sandboxes HOME and JDKX_HOME and clears the variables that
// point detection at the host's own JDKs.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:  t.TempDir(),
		JdkxHome: t.TempDir(),
		Installs: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("JDKX_HOME", env.JdkxHome)
	for _, v := range []string{"JAVA_HOME", "SDKMAN_CANDIDATES_DIR", "ASDF_DATA_DIR", "JABBA_HOME"} {
		t.Setenv(v, "")
	}
	return env
}

// writeJDK lays out a minimal JDK at dir and returns its canonical path.
func writeJDK(t *testing.T, dir, version string) string {
	t.Helper()

	for _, bin := range []string{"java", "javac"} {
		writeFile(t, filepath.Join(dir, "bin", bin), "#!/bin/sh\n")
	}
	writeFile(t, filepath.Join(dir, "release"), "JAVA_VERSION=\""+version+"\"\nIMPLEMENTOR=\"Test\"\n")

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolving %s: %v", dir, err)
	}
	return canonical
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink %s -> %s: %v", link, target, err)
	}
}
