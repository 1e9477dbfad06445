package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deicod/migprefix/internal/prefix"
)

type parseReport struct {
	Input  string `yaml:"input"`
	Prefix string `yaml:"prefix"`
	Time   string `yaml:"time"`
}

func newParseCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "parse <prefix|filename>...",
		Short: "Decode migration prefixes back into UTC instants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(output)
			switch format {
			case "", "text":
				format = "text"
			case "yaml":
			default:
				return CommandError{
					Message:    fmt.Sprintf("parse: unsupported output %q", output),
					Suggestion: "Use one of text or yaml.",
					ExitCode:   2,
				}
			}

			reports := make([]parseReport, 0, len(args))
			for _, arg := range args {
				p, err := prefix.FromFilename(arg)
				if err != nil {
					return wrapError(fmt.Sprintf("parse: %q does not start with a migration prefix", arg), err,
						"Prefixes are 14 UTC digits (YYYYMMDDHHMMSS), optionally followed by _name.", 2)
				}
				at, err := prefix.Parse(p)
				if err != nil {
					return wrapError(fmt.Sprintf("parse: decode %s", p), err, "", 2)
				}
				slog.Debug("decoded migration prefix", "input", arg, "prefix", p, "time", at)
				reports = append(reports, parseReport{Input: arg, Prefix: p, Time: at.Format(time.RFC3339)})
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(reports); err != nil {
					return wrapError("parse: encode yaml", err, "", 1)
				}
				return enc.Close()
			}
			for _, r := range reports {
				fmt.Fprintf(out, "%s\t%s\n", r.Prefix, r.Time)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	return cmd
}
