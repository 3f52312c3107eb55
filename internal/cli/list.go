package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/agentx-labs/jdkx/internal/jvm"
	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List detected Java installations",
	Long: `List every Java installation found by the configured suppliers.

Each installation is listed once by its canonical path, with the version,
vendor and architecture read from its release file.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := installationRegistry()
	if err != nil {
		return err
	}
	homes, err := reg.ListInstallations(cmd.Context())
	if err != nil {
		return err
	}

	entries := make([]*jvm.Metadata, 0, len(homes))
	for _, home := range homes {
		m, err := jvm.Probe(home)
		if err != nil {
			log.Warn(log.CatProbe, "cannot read installation", "home", home, "error", err)
			m = &jvm.Metadata{Home: home}
		}
		if m.ReleaseMissing && m.HasJavaBinary {
			if err := jvm.ExecProbe(cmd.Context(), m); err != nil {
				log.Debug(log.CatProbe, "java binary probe failed", "home", home, "error", err)
			}
		}
		entries = append(entries, m)
	}
	jvm.SortByVersion(entries)

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Java installations found.")
		return nil
	}
	if err := printListTable(cmd, entries); err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "\n%d installation(s)\n", len(entries))
	return nil
}

func printListTable(cmd *cobra.Command, entries []*jvm.Metadata) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HOME\tVERSION\tVENDOR\tARCH\tTYPE")
	for _, m := range entries {
		kind := "JRE"
		if m.IsJDK() {
			kind = "JDK"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Home, orDash(m.JavaVersion), orDash(m.Implementor), orDash(m.Architecture), kind)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []*jvm.Metadata) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
