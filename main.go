package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"fieldgen/core"
	"fieldgen/logging"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Ambient settings may come from a .env file; its absence is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Warning: failed to load .env file: %v\n", err)
	}

	dev := core.ParseBoolEnv(core.EnvDevMode, false)
	logCfg := logging.ConfigFromEnv(dev, core.EnvLogLevel, core.EnvLogFile)
	logCfg.Console = zapcore.Lock(zapcore.AddSync(stderr))
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return core.ExitCodeError
	}
	// Sync on a terminal reports EINVAL on some platforms; nothing to do about it.
	defer func() { _ = logger.Sync() }()
	if path := logger.LogFilePath(); path != "" {
		logger.Debug("Logging to file", zap.String("path", path))
	}

	cmd := newRootCommand(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.Execute()
	if err == nil {
		return core.ExitCodeSuccess
	}

	// Anything cobra rejected on its own (stray arguments, unknown commands)
	// is a usage problem.
	if _, ok := core.IsCLIError(err); !ok {
		err = core.ErrInvalidArgument(err.Error(), err)
	}
	reportError(stderr, err)
	return core.ExitCodeFor(err)
}

// reportError prints err for a human reader.
func reportError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	cliErr, ok := core.IsCLIError(err)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, cliErr.Message)
	if cliErr.Action != "" {
		color.New(color.FgHiBlack).Fprintln(w, cliErr.Action)
	}
}
