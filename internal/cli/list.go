package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/syntax"
)

// NoticeInfo is an entry of notices command output.
type NoticeInfo struct {
	Code     int    `json:"code" yaml:"code"`
	Severity string `json:"severity" yaml:"severity"`
	Title    string `json:"title" yaml:"title"`
}

// ElementInfo is an entry of elements command output.
type ElementInfo struct {
	Name string `json:"name" yaml:"name"`
	Cite string `json:"cite,omitempty" yaml:"cite,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// NewNoticesCommand creates the command listing notice codes.
func NewNoticesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notices",
		Short: "List notice codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			var infos []NoticeInfo
			for _, code := range notice.Codes() {
				info, _ := notice.Describe(code)
				infos = append(infos, NoticeInfo{code, info.Severity.String(), info.Title})
			}

			return writeList(cmd.OutOrStdout(), cfg.Format, infos, func(sb *strings.Builder, i NoticeInfo) {
				fmt.Fprintf(sb, "%d %-7s %s\n", i.Code, i.Severity, i.Title)
			})
		},
	}
}

// NewElementsCommand creates the command listing checkable elements.
func NewElementsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List elements accepted by check command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			var infos []ElementInfo
			for _, el := range syntax.Elements() {
				c := el.Rule.Citation()
				infos = append(infos, ElementInfo{el.Name, c.String(), c.URL})
			}

			return writeList(cmd.OutOrStdout(), cfg.Format, infos, func(sb *strings.Builder, i ElementInfo) {
				if i.Cite == "" {
					sb.WriteString(i.Name + "\n")
				} else {
					fmt.Fprintf(sb, "%-18s %s\n", i.Name, i.Cite)
				}
			})
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "httplint "+Version)
		},
	}
}

func writeList[T any](w io.Writer, format string, items []T, text func(*strings.Builder, T)) error {
	if format == "text" {
		var sb strings.Builder
		for _, item := range items {
			text(&sb, item)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}
	return writeData(w, format, items)
}
