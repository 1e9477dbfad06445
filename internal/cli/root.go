package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deicod/migprefix/internal/logging"
	"github.com/deicod/migprefix/internal/prefix"
)

var (
	verbose bool
	clock   prefix.Clock = prefix.SystemClock
)

// NewRootCmd constructs the root command. Run without arguments it prints the
// prefix for a new migration file.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migprefix",
		Short: "migprefix - print a UTC timestamp prefix for a new migration file",
		Long: "migprefix prints the current UTC time as YYYYMMDDHHMMSS. Prefix migration filenames with it " +
			"(for example 20240315090507_create_users_table) so lexical order follows creation order.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prefix.New(clock).Generate()
			slog.Debug("generated migration prefix", "prefix", p)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging output")
	cmd.AddCommand(newParseCmd())
	return cmd
}

// Execute runs the CLI entrypoint.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when handed nil.
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var cerr CommandError
	if !errors.As(err, &cerr) {
		fmt.Fprintln(stderr, err)
		return 1
	}
	msg := strings.TrimSpace(cerr.Message)
	if msg == "" && cerr.Cause != nil {
		msg = cerr.Cause.Error()
	}
	if msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	if cerr.Cause != nil && msg != cerr.Cause.Error() && verbose {
		fmt.Fprintf(stderr, "details: %v\n", cerr.Cause)
	}
	if cerr.Suggestion != "" {
		fmt.Fprintln(stderr, formatSuggestion(cerr.Suggestion))
	}
	return cerr.ExitStatus()
}
