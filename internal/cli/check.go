package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/httplint/syntax"
)

// CheckOptions holds flags of check command.
type CheckOptions struct {
	Element  string
	EachLine bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Check message elements read from files or standard input",
		Long: `Parses each file (or standard input if no files or "-" given) as a single message element.
Gzip and zstd compressed files are decompressed. Exits with code 1 if any element is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Element, "element", "e", "", "element to check, see elements command")
	cmd.Flags().BoolVarP(&opts.EachLine, "lines", "l", false, "check every non-empty line separately")

	return cmd
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, opts *CheckOptions, args []string) error {
	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}
	if opts.Element != "" {
		cfg.Element = opts.Element
	}

	log := rootOpts.logger(cmd, cfg)
	if rootOpts.Config != "" {
		log.Debug().Str("path", rootOpts.Config).Msg("loaded config")
	}

	el := syntax.LookupElement(cfg.Element)
	if el == nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown element %q", cfg.Element))
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	reports := []Report{}
	for _, name := range args {
		content, err := readSource(name, cmd.InOrStdin())
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read "+name, err)
		}

		for _, in := range split(name, el.Name, content, opts.EachLine) {
			r := checkInput(el, in, cfg, rootOpts.NewID())
			log.Debug().
				Str("source", r.Source).
				Str("element", r.Element).
				Bool("valid", r.Valid).
				Int("notices", len(r.Notices)).
				Msg("checked")
			reports = append(reports, r)
		}
	}

	res := CheckResult{Reports: reports, Summary: summarize(reports)}
	if err := writeResult(cmd.OutOrStdout(), cfg.Format, res); err != nil {
		return WrapExitError(ExitCommandError, "cannot write report", err)
	}

	if res.Summary.Invalid > 0 {
		log.Warn().Int("invalid", res.Summary.Invalid).Int("checked", res.Summary.Checked).Msg("invalid elements found")
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d elements invalid", res.Summary.Invalid, res.Summary.Checked))
	}
	return nil
}
