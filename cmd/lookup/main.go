package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quotelookup/internal/app"
	"quotelookup/internal/config"
	"quotelookup/internal/logging"
	"quotelookup/internal/view"
	"quotelookup/internal/widget"
)

type submitter interface {
	Submit(ctx context.Context, raw string) widget.State
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		configPath string
		stockProv  string
		chartDir   string
		timeout    int
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "lookup [query]",
		Short: "Look up a stock symbol or cryptocurrency",
		Long: `Look up a stock ticker (AAPL, TSLA) or a cryptocurrency (bitcoin, eth).
With a query the result is printed once. Without one, queries are read from
standard input, one per line.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if stockProv != "" {
				cfg.Stock.Provider = strings.ToLower(stockProv)
			}
			if chartDir != "" {
				cfg.Chart.Dir = chartDir
			}
			if cfg.Chart.Dir == "" {
				cfg.Chart.Dir = filepath.Join(os.TempDir(), "quotelookup-charts")
			}
			if timeout > 0 {
				cfg.Server.RequestTimeoutSec = timeout
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if err := os.MkdirAll(cfg.Chart.Dir, 0o755); err != nil {
				return fmt.Errorf("chart dir: %w", err)
			}

			log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			term := &view.Terminal{W: out, ChartFile: a.Charts.File}
			ctrl := a.Controller(term)
			reqTimeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second

			if len(args) == 1 {
				// the chart file of a one-shot lookup is left for the user to open
				return oneShot(cmd.Context(), ctrl, args[0], reqTimeout)
			}
			defer ctrl.Close()
			return runInteractive(cmd.Context(), ctrl, in, out, reqTimeout)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.toml or config.json (optional)")
	cmd.Flags().StringVar(&stockProv, "provider", "", "stock provider: alphavantage, twelvedata or yahoo")
	cmd.Flags().StringVar(&chartDir, "chart-dir", "", "directory for rendered chart images")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "request timeout seconds")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// errLookupFailed signals a lookup that ended on the error banner. The banner
// itself was already printed by the terminal view.
var errLookupFailed = errors.New("lookup failed")

// oneShot runs a single query and reports a failed lookup as an error so the
// process exits non-zero.
func oneShot(ctx context.Context, s submitter, query string, timeout time.Duration) error {
	if runOnce(ctx, s, query, timeout) == widget.ShowingError {
		return errLookupFailed
	}
	return nil
}

func runOnce(ctx context.Context, s submitter, query string, timeout time.Duration) widget.State {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.Submit(ctx, query)
}

// runInteractive submits every line read from in until EOF, "quit" or
// cancellation of ctx.
func runInteractive(ctx context.Context, s submitter, in io.Reader, out io.Writer, timeout time.Duration) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := sc.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit":
			return nil
		}
		runOnce(ctx, s, line, timeout)
		if ctx.Err() != nil {
			return nil
		}
	}
}
