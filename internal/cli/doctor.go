package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/jdkx/internal/config"
	"github.com/agentx-labs/jdkx/internal/platform"
	"github.com/agentx-labs/jdkx/internal/toolchain"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Explain where each Java installation came from",
	Long: `Run every installation supplier and report each candidate it produced,
whether the candidate exists, and which symlink it resolves through. The
final section lists the canonical installations the registry keeps.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	reg, err := installationRegistry()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for _, s := range reg.Suppliers() {
		fmt.Fprintf(out, "%s\n", s.SourceName())
		locations, err := s.Get(cmd.Context())
		if err != nil {
			fmt.Fprintf(out, "  ✗ %v\n", err)
			continue
		}
		if len(locations) == 0 {
			fmt.Fprintln(out, "  (none)")
			continue
		}
		for _, loc := range locations {
			printCandidate(out, loc)
		}
	}

	homes, err := reg.ListInstallations(cmd.Context())
	if err != nil {
		var cerr *toolchain.CanonicalizationError
		if errors.As(err, &cerr) {
			return fmt.Errorf("%w (check the installation settings in %s)", err, config.FilePath())
		}
		return err
	}
	fmt.Fprintf(out, "\nInstallations (%d)\n", len(homes))
	for _, home := range homes {
		fmt.Fprintf(out, "  %s\n", home)
	}
	return nil
}

func printCandidate(out io.Writer, loc toolchain.InstallationLocation) {
	status := "✓"
	detail := ""
	info, err := os.Stat(loc.Path())
	switch {
	case err != nil:
		status, detail = "✗", "missing"
	case !info.IsDir():
		status, detail = "✗", "not a directory"
	}
	if platform.IsSymlink(loc.Path()) {
		if target, err := platform.ReadSymlinkTarget(loc.Path()); err == nil {
			if detail != "" {
				detail += ", "
			}
			detail += "-> " + target
		}
	}
	if detail != "" {
		fmt.Fprintf(out, "  %s %s (%s)\n", status, loc.Path(), detail)
		return
	}
	fmt.Fprintf(out, "  %s %s\n", status, loc.Path())
}
