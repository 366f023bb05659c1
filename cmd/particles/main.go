package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/internal/cli"
	perrors "github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	hooks := c.Hooks()
	observability.SetConvertHooks(hooks)
	observability.SetCacheHooks(hooks)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Set the log level from --verbose before the root pre-run resolves config.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode separates bad input (2) from everything else (1).
func exitCode(err error) int {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeInvalidInput, perrors.ErrCodeDivisionByZero, perrors.ErrCodeDegenerateRange,
		perrors.ErrCodeInvalidCount, perrors.ErrCodeInvalidGradient, perrors.ErrCodeInvalidFormat,
		perrors.ErrCodeInvalidConfig, perrors.ErrCodeFileNotFound:
		return 2
	default:
		return 1
	}
}
