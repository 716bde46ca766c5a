package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"formvalidator/internal/config"
	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
	"formvalidator/internal/platform/logger"
	"formvalidator/internal/version"
)

// Exit codes
const (
	ExitValid    = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitInvalid  = 3
)

const (
	formatText = "text"
	formatJSON = "json"
)

type commandDeps struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    logger.Logger
	rules  config.SignupRulesConfig
}

type options struct {
	file        string
	domain      string
	minLength   int
	parallelism int
	format      string
}

// exitError carries the process exit code out of RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

func newRootCommand(deps commandDeps) *cobra.Command {
	opts := options{
		domain:      deps.rules.AllowedDomain,
		minLength:   deps.rules.PasswordMinLength,
		parallelism: deps.rules.Parallelism,
		format:      formatText,
	}

	cmd := &cobra.Command{
		Use:   "signup-check",
		Short: "Validate signup records against the signup rules",
		Long: `Validate signup records against the signup rules.

Records are read as YAML or JSON from --file or stdin. The input may hold a
single record, a list of records, or several YAML documents. Every rule runs
on every record and all failures are reported per field.

Exit codes: 0 all records valid, 3 at least one record invalid,
2 usage or input error.`,
		Example: `  # Check one record from stdin:
  echo '{"email":"jane@example.com","password1":"Secret1","password2":"Secret1"}' | signup-check

  # Check a YAML list against a different domain, JSON output for CI:
  signup-check --file signups.yaml --domain corp.example.org --format json`,
		Version:       version.Info().String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check(cmd, deps, opts)
		},
	}

	cmd.SetIn(deps.in)
	cmd.SetOut(deps.out)
	cmd.SetErr(deps.errOut)

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Path to the records file (default stdin, \"-\" also means stdin)")
	flags.StringVar(&opts.domain, "domain", opts.domain, "Allowed email domain")
	flags.IntVar(&opts.minLength, "min-length", opts.minLength, "Minimum password length")
	flags.IntVar(&opts.parallelism, "parallelism", opts.parallelism, "Rules evaluated concurrently per record")
	flags.StringVar(&opts.format, "format", opts.format, "Output format (text|json)")

	return cmd
}

func check(cmd *cobra.Command, deps commandDeps, opts options) error {
	if opts.format != formatText && opts.format != formatJSON {
		return usageError("unsupported format %q, use text or json", opts.format)
	}

	policy := signup.Policy{AllowedDomain: opts.domain, MinPasswordLength: opts.minLength}
	pipeline, err := signup.NewPipeline(policy, validation.WithParallelism(opts.parallelism))
	if err != nil {
		return &exitError{code: ExitUsage, err: err}
	}

	in, name, closeFn, err := openInput(cmd.InOrStdin(), opts.file)
	if err != nil {
		return &exitError{code: ExitUsage, err: err}
	}
	defer closeFn()

	records, err := decodeRecords(in)
	if err != nil {
		return &exitError{code: ExitUsage, err: fmt.Errorf("read %s: %w", name, err)}
	}

	log := deps.log.With(logger.String("input", name))
	reports := make([]report, 0, len(records))
	for i, raw := range records {
		if unknown := raw.unknownKeys(); len(unknown) > 0 {
			log.Warn("Ignoring unknown keys", logger.Int("record", i+1), logger.Strings("keys", unknown))
		}

		result, err := pipeline.Validate(raw.record())
		if err != nil {
			return &exitError{code: ExitInternal, err: err}
		}
		reports = append(reports, newReport(i+1, result))
	}

	invalid := countInvalid(reports)
	log.Debug("Records checked", logger.Int("records", len(reports)), logger.Int("invalid", invalid))

	if err := writeReports(cmd.OutOrStdout(), opts.format, reports); err != nil {
		return &exitError{code: ExitInternal, err: err}
	}

	if invalid > 0 {
		return &exitError{code: ExitInvalid}
	}
	return nil
}

func openInput(stdin io.Reader, file string) (io.Reader, string, func(), error) {
	if file == "" || file == "-" {
		return stdin, "stdin", func() {}, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, file, nil, err
	}
	return f, file, func() { _ = f.Close() }, nil
}

// execute runs cmd and maps its error to an exit code. Messages go to the
// command's error stream; an invalid record is reported on stdout only.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitValid
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "signup-check: %v\n", exitErr.err)
		}
		return exitErr.code
	}

	// cobra flag and argument errors
	fmt.Fprintf(cmd.ErrOrStderr(), "signup-check: %v\n", err)
	return ExitUsage
}
