// Package cli implements httplint command line interface.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ava12/httplint/internal/config"
	"github.com/ava12/httplint/internal/logging"
)

// Version is reported by version command, set at build time.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "text" | "json" | "yaml", empty means configured
	Config string // path to TOML config file

	// NewID generates report ids.
	NewID func() string

	// Profile selects logger defaults.
	Profile logging.Profile
}

// NewRootCommand creates the root command for httplint.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{NewID: newReportID})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "httplint",
		Short:         "HTTP/1.1 message element checker",
		Long:          "Checks HTTP/1.1 request lines, status lines, and header fields against RFC 7230 grammar.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !config.ValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, config.Formats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "TOML config file")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewNoticesCommand(opts))
	cmd.AddCommand(NewElementsCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// loadConfig returns defaults overlaid with config file and flags.
func (opts *RootOptions) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		if err := cfg.Merge(opts.Config); err != nil {
			return cfg, WrapExitError(ExitCommandError, "config", err)
		}
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	return cfg, nil
}

func (opts *RootOptions) logger(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	s := logging.Resolve(opts.Profile)
	if !cfg.Color {
		s.NoColor = true
	}
	return logging.New(cmd.ErrOrStderr(), s)
}
