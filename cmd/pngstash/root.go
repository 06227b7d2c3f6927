// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pngstash.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pngstash-cli/internal/config"
	"pngstash-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration; defaults until initRootConfig runs.
	cfg = config.DefaultConfig()

	// logger emits shell-side diagnostics on stderr. The core png package
	// never logs; everything it reports comes back as an error.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "pngstash",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pngstash",
		Short: "Hide, read, and manage data in PNG chunks",
		Long: TitleStyle.Render("pngstash") + SubtitleStyle.Render(" - Hide, read, and manage data in PNG chunks") + `

pngstash works on the PNG container itself, never on the image: it parses
a file into its chunk sequence, validates every chunk's length and CRC,
and lets you stash, read, or strip custom chunks identified by a 4-letter
type code.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Pick a 4-letter ancillary type code, e.g. ruSt
  2. Stash a message:   pngstash encode photo.png ruSt "hello"
  3. Read it back:      pngstash decode photo.png ruSt

` + SubtitleStyle.Render("Examples:") + `
  pngstash print photo.png          List every chunk in the file
  pngstash verify photo.png         Check structural integrity
  pngstash remove photo.png ruSt    Delete the stashed chunk
  pngstash config show              Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pngstash/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration before any command runs.
func initRootConfig() {
	// Keep the package override in sync so ConfigFilePath (and with it
	// `config path` and `config show`) honors --config too.
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, resolved, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// A broken config never aborts the command; warn and keep defaults.
		warnConfigLoad(err)
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if resolved != "" {
		logger.Debug("loaded config", "path", resolved)
	}
}

// warnConfigLoad reports a config loading failure on stderr, with the
// config-load guidance card in verbose mode.
func warnConfigLoad(err error) {
	fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	if verbose {
		if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(issueStyle()); renderErr == nil {
			os.Stderr.WriteString(rendered)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
