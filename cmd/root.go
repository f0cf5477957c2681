package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marcus/phoneinput/internal/output"
)

var (
	version string
	baseDir string
	debug   bool
	logger  = slog.New(slog.DiscardHandler)
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "phoneinput",
	Short: "Phone number field with a country picker",
	Long: `phoneinput - a terminal phone number field that pairs a country picker with a
number input, formatting what you type as an international dial string.

Run without arguments for the interactive field. Subcommands validate and
format numbers from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error("%v", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir, initLogger)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug records to stderr")
	addInputFlags(rootCmd.Flags(), &demoFlags)
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

func initLogger() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// getBaseDir returns the directory holding .phoneinput/
func getBaseDir() string {
	return baseDir
}
