package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agentx-labs/jdkx/internal/branding"
	"github.com/agentx-labs/jdkx/internal/config"
	"github.com/agentx-labs/jdkx/internal/log"
	"github.com/agentx-labs/jdkx/internal/operation"
	"github.com/agentx-labs/jdkx/internal/tracing"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	debugFlag bool
	traceFlag bool

	// executor runs the detection pass; replaced by a tracing executor
	// when tracing is on.
	executor operation.Executor = operation.Direct{}
	cleanups []func()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` discovers Java installations on this machine: configured paths,
environment variables, JAVA_HOME, SDKMAN!, asdf, jabba, provisioned JDKs and the
operating system's JVM directories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings, err := config.Current()
		if err != nil {
			return err
		}
		if err := setupLogging(cmd, settings); err != nil {
			return err
		}
		return setupTracing(settings)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write a debug log to ~/.jdkx/jdkx.log")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Record an OpenTelemetry trace of toolchain detection")
}

// setupLogging sends warnings to stderr, or everything to the log file with --debug.
func setupLogging(cmd *cobra.Command, settings *config.Settings) error {
	if !debugFlag {
		log.InitWriter(cmd.ErrOrStderr())
		log.SetMinLevel(log.ParseLevel(settings.Log.Level))
		return nil
	}
	if err := config.EnsureDir(); err != nil {
		return err
	}
	closeLog, err := log.Init(settings.Log.File)
	if err != nil {
		return err
	}
	log.SetMinLevel(log.LevelDebug)
	cleanups = append(cleanups, closeLog)
	return nil
}

func setupTracing(settings *config.Settings) error {
	cfg := settings.Tracing
	if traceFlag {
		cfg.Enabled = true
	}
	if !cfg.Enabled {
		return nil
	}
	provider, err := tracing.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	executor = tracing.NewExecutor(provider.Tracer())
	cleanups = append(cleanups, func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	})
	return nil
}

// teardown runs cleanups in reverse order.
func teardown() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
	executor = operation.Direct{}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		teardown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
