package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
)

var envFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sayitanyway",
		Short: "Grief journal core: screening, recording time, subscriptions and messages",
		Long: `sayitanyway drives the journal core from the command line. Every command prints JSON on
stdout; logs go to stderr. Storage is chosen with BLOBS_BACKEND (memory, file, pg or redis).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadEnv(envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading config; missing files are ignored")
	cmd.AddCommand(
		newScreenCmd(),
		newRulesCmd(),
		newTimeCmd(),
		newSubCmd(),
		newRecipientCmd(),
		newMessageCmd(),
		newComposeCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)
	return cmd
}

// loadEnv never overrides variables already set in the process
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "load %s", path)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// report prints err as JSON and picks the exit code; 75 is EX_TEMPFAIL
func report(w io.Writer, err error) int {
	logger.Get().Debug().Err(err).Msg("command failed")
	_ = printJSON(w, map[string]perr.Wire{"error": perr.WireFrom(err)})
	switch perr.CodeOf(err) {
	case perr.ErrorCodeInvalidArgument, perr.ErrorCodeValidation:
		return 2
	case perr.ErrorCodeInsufficientTime:
		return 3
	case perr.ErrorCodeNotFound:
		return 4
	}
	if perr.Retryable(err) {
		return 75
	}
	return 1
}
