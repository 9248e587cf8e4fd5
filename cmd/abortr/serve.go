package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/mark3labs/abortr/internal/config"
	"github.com/mark3labs/abortr/internal/logger"
	abortsig "github.com/mark3labs/abortr/signal"
	"github.com/mark3labs/abortr/tool"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	port int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bundled tools over MCP (streamable HTTP)",
	Long: `Start an MCP server exposing the bundled tools. Every tool is wrapped
with a session-wide cancellation signal that fires on shutdown (Ctrl-C),
so in-flight calls are cancelled instead of orphaned.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "Port to listen on (0 picks a random port, overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}

	port := cfg.Port
	if serveFlags.port != 0 {
		port = serveFlags.port
	}

	// The ambient signal fires when the process is asked to shut down.
	ambient := abortsig.New()

	mcpServer := server.NewMCPServer(
		"abortr-tools",
		version,
		server.WithToolCapabilities(true),
	)
	for _, t := range builtinTools() {
		def, err := t.MCP()
		if err != nil {
			return fmt.Errorf("failed to register tool %s: %w", t.Name, err)
		}
		mcpServer.AddTool(def, tool.MCPHandler(tool.WithCancellation(t, ambient)))
	}

	// Create the listener first so the bound port is known before the
	// server goroutine starts.
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	boundPort := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		mcpServer,
		server.WithStateLess(true),
	))
	httpServer := &http.Server{Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	logger.Info("MCP server listening on http://127.0.0.1:%d/mcp", boundPort)
	fmt.Printf("Serving tools at http://127.0.0.1:%d/mcp (Ctrl-C to stop)\n", boundPort)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	select {
	case err := <-errCh:
		ambient.Abort()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Cancel in-flight tool calls, then drain the HTTP server.
	logger.Info("Shutting down, cancelling in-flight tool calls")
	ambient.Abort()
	if err := httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
