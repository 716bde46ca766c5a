// Command signup-check runs signup records from a file or stdin through the
// signup rules and reports every failure per field.
package main

import (
	"fmt"
	"os"

	"formvalidator/internal/config"
	"formvalidator/internal/platform/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rules, err := config.LoadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "signup-check: %v\n", err)
		return ExitUsage
	}

	cfg := rules.LoggerConfig()
	cfg.Output = "stderr"
	cfg.Name = "signup-check"
	if cfg.Level == "" {
		cfg.Level = logger.LevelWarn
	}
	log, err := logger.NewZapLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "signup-check: %v\n", err)
		return ExitUsage
	}
	defer func() { _ = logger.Sync(log) }()

	return execute(newRootCommand(commandDeps{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		log:    log,
		rules:  rules.Signup,
	}), args)
}
