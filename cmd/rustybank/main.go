package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OliverGavin/rusty-bank/internal/account"
	"github.com/OliverGavin/rusty-bank/internal/csvio"
	"github.com/OliverGavin/rusty-bank/internal/processor"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if err := run(os.Args, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, "rustybank:", err)
		os.Exit(1)
	}
}

// run processes the transaction file named on the command line and
// writes the account summaries to stdout.
func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	path, err := inputPath(args)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	proc := processor.New(account.NewMemoryStore(), logger)
	if err := proc.Process(csvio.NewReader(f)); err != nil {
		return err
	}
	w := csvio.NewWriter(stdout)
	if err := proc.Export(w); err != nil {
		return err
	}
	return w.Flush()
}

// inputPath extracts the single transaction file argument.
func inputPath(args []string) (string, error) {
	switch len(args) {
	case 2:
		return args[1], nil
	case 0, 1:
		return "", fmt.Errorf("usage: rustybank <transactions.csv>")
	default:
		return "", fmt.Errorf("only one parameter allowed, got %q", args[1:])
	}
}

// newLogger builds the process logger. Diagnostics go to stderr so
// stdout stays reserved for the CSV report; LOG_LEVEL overrides the
// default info level.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
