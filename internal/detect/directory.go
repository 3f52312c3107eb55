package detect

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/agentx-labs/jdkx/internal/toolchain"
)

// DirectorySupplier reports every child of its root directories as a
// candidate installation. Missing roots contribute nothing.
type DirectorySupplier struct {
	Name  string
	Roots []string
	// Skip lists child names to ignore (e.g. SDKMAN's "current" link).
	Skip []string
	// Home maps a child directory to the installation home. Nil means the
	// child itself.
	Home func(child string) string
}

// SourceName implements toolchain.InstallationSupplier.
func (s *DirectorySupplier) SourceName() string { return s.Name }

// Get lists the children of each root in lexical order.
func (s *DirectorySupplier) Get(ctx context.Context) ([]toolchain.InstallationLocation, error) {
	var out []toolchain.InstallationLocation
	for _, root := range s.Roots {
		if root == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Warn(log.CatDetect, "cannot list installation root", "supplier", s.Name, "root", root, "error", err)
			}
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") || slices.Contains(s.Skip, name) {
				continue
			}
			if !e.IsDir() && e.Type()&os.ModeSymlink == 0 {
				continue
			}
			child := filepath.Join(root, name)
			if s.Home != nil {
				child = s.Home(child)
			}
			out = append(out, toolchain.NewInstallationLocation(child, s.Name))
		}
	}
	log.Debug(log.CatDetect, "listed installation roots", "supplier", s.Name, "candidates", len(out))
	return out, nil
}

// homeOr returns $envVar when set, else the fallback path under the user's home.
func homeOr(env Environment, envVar string, fallback ...string) string {
	if v, ok := env.LookupEnv(envVar); ok && v != "" {
		return v
	}
	home, err := env.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// Provisioned lists JDKs previously provisioned into dir.
func Provisioned(dir string) *DirectorySupplier {
	return &DirectorySupplier{Name: "auto-provisioned", Roots: []string{dir}}
}

// SDKMAN lists $SDKMAN_CANDIDATES_DIR/java (default ~/.sdkman/candidates/java).
func SDKMAN(env Environment) *DirectorySupplier {
	root := homeOr(env, "SDKMAN_CANDIDATES_DIR", ".sdkman", "candidates")
	if root != "" {
		root = filepath.Join(root, "java")
	}
	return &DirectorySupplier{Name: "SDKMAN!", Roots: []string{root}, Skip: []string{"current"}}
}

// Asdf lists $ASDF_DATA_DIR/installs/java (default ~/.asdf/installs/java).
func Asdf(env Environment) *DirectorySupplier {
	root := homeOr(env, "ASDF_DATA_DIR", ".asdf")
	if root != "" {
		root = filepath.Join(root, "installs", "java")
	}
	return &DirectorySupplier{Name: "asdf-vm", Roots: []string{root}}
}

// Jabba lists $JABBA_HOME/jdk (default ~/.jabba/jdk).
func Jabba(env Environment) *DirectorySupplier {
	root := homeOr(env, "JABBA_HOME", ".jabba")
	if root != "" {
		root = filepath.Join(root, "jdk")
	}
	return &DirectorySupplier{Name: "jabba", Roots: []string{root}}
}

// LinuxRoots are the package-manager install locations probed on Linux.
var LinuxRoots = []string{"/usr/lib/jvm", "/usr/lib64/jvm", "/usr/java", "/usr/local/java", "/opt/java"}

// Linux lists the common Linux JVM directories.
func Linux() *DirectorySupplier {
	return &DirectorySupplier{Name: "common Linux locations", Roots: LinuxRoots}
}

// MacOS lists system and user JavaVirtualMachines bundles, mapping each
// bundle to its Contents/Home.
func MacOS(env Environment) *DirectorySupplier {
	roots := []string{"/Library/Java/JavaVirtualMachines"}
	if home, err := env.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Library", "Java", "JavaVirtualMachines"))
	}
	return &DirectorySupplier{
		Name:  "macOS JavaVirtualMachines",
		Roots: roots,
		Home:  BundleHome,
	}
}

// BundleHome maps a .jdk bundle to its Contents/Home directory.
func BundleHome(bundle string) string {
	return filepath.Join(bundle, "Contents", "Home")
}
