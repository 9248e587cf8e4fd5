package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/abortr/internal/logger"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "abortr",
	Short: "Cancellable tool execution for AI agents",
	Long: `abortr wraps agent tools so that a session-wide cancellation signal and
each call's own signal are merged into one: firing either cancels the
call. The CLI runs the bundled tools directly or serves them over MCP,
with Ctrl-C driving the session signal.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(setupCmd)
}
