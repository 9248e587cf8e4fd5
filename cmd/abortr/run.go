package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/mark3labs/abortr/internal/config"
	"github.com/mark3labs/abortr/internal/logger"
	"github.com/mark3labs/abortr/internal/runner"
	abortsig "github.com/mark3labs/abortr/signal"
	"github.com/mark3labs/abortr/tool"
	"github.com/spf13/cobra"
)

var runFlags struct {
	params  string
	timeout string
}

var runCmd = &cobra.Command{
	Use:   "run <tool>",
	Short: "Execute one tool call (Ctrl-C cancels it)",
	Long: `Execute a single call against one of the bundled tools. The interrupt
signal (Ctrl-C) drives the session-wide cancellation signal, so an
in-flight call stops as soon as you interrupt it.

Examples:
  abortr run echo --params '{"x":1}'
  abortr run sleep --params '{"duration":"10s"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.params, "params", "p", "{}", "Tool parameters as a JSON object")
	runCmd.Flags().StringVarP(&runFlags.timeout, "timeout", "t", "", "Per-call timeout (overrides config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}

	if runFlags.timeout != "" {
		cfg.ToolTimeout = runFlags.timeout
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(runFlags.params), &params); err != nil {
		return fmt.Errorf("failed to parse --params: %w", err)
	}

	// Ctrl-C cancels the context; the ambient signal follows it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ambient := abortsig.FromContext(ctx)

	r := runner.New(runner.Config{Ambient: ambient, Timeout: timeout})
	for _, t := range builtinTools() {
		if err := r.Register(t); err != nil {
			return fmt.Errorf("failed to register tool: %w", err)
		}
	}

	name := args[0]
	res, err := r.Run(ctx, "cli-1", name, params, nil, func(u tool.Update) {
		fmt.Fprint(os.Stderr, u.Output)
	})
	if err != nil {
		if abortsig.IsAborted(err) {
			return fmt.Errorf("call cancelled: %w", err)
		}
		return err
	}

	fmt.Println(res.Content)
	if res.IsError {
		os.Exit(1)
	}
	return nil
}
