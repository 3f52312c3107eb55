package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCanonicalizeResolvesSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()

	target := filepath.Join(tmp, "jdk-17")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "current")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	viaLink, err := Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize(link): %v", err)
	}
	direct, err := Canonicalize(target)
	if err != nil {
		t.Fatalf("Canonicalize(target): %v", err)
	}
	if viaLink != direct {
		t.Errorf("Canonicalize(link) = %q, Canonicalize(target) = %q; want equal", viaLink, direct)
	}
}

func TestCanonicalizeCleansDotSegments(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Canonicalize(filepath.Join(tmp, "a", "..", "a", "."))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	want, err := Canonicalize(dir)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got != want {
		t.Errorf("Canonicalize = %q, want %q", got, want)
	}
}

func TestCanonicalizeMissingPath(t *testing.T) {
	if _, err := Canonicalize(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing path, got nil")
	}
}

func TestIsSymlinkAndReadSymlinkTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()

	if err := os.Mkdir(filepath.Join(tmp, "jdk-21"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "java")
	if err := os.Symlink("jdk-21", link); err != nil {
		t.Fatal(err)
	}

	if !IsSymlink(link) {
		t.Error("IsSymlink(link) = false, want true")
	}
	if IsSymlink(filepath.Join(tmp, "jdk-21")) {
		t.Error("IsSymlink(dir) = true, want false")
	}

	target, err := ReadSymlinkTarget(link)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget: %v", err)
	}
	if want := filepath.Join(tmp, "jdk-21"); target != want {
		t.Errorf("ReadSymlinkTarget = %q, want %q", target, want)
	}
}

func TestReadSymlinkTargetNotALink(t *testing.T) {
	if _, err := ReadSymlinkTarget(t.TempDir()); err == nil {
		t.Fatal("expected error for a regular directory, got nil")
	}
}
