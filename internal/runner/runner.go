// Package runner dispatches tool calls against a registered toolset with
// an ambient cancellation signal bound into every tool.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/abortr/internal/logger"
	"github.com/mark3labs/abortr/signal"
	"github.com/mark3labs/abortr/tool"
)

var (
	// ErrUnknownTool is returned by Run when no tool with the requested
	// name is registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool is returned by Register when a tool with the
	// same name already exists.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrNotExecutable is returned by Run for metadata-only tools.
	ErrNotExecutable = errors.New("tool is not executable")
)

// Config holds configuration for creating a Runner.
type Config struct {
	Ambient signal.Aborter // Session-wide cancellation signal (optional)
	Timeout time.Duration  // Per-call timeout, 0 disables
}

// Runner executes tool calls by name. The ambient signal is bound into
// each tool once, at registration time, so every call automatically
// merges it with its own per-call signal.
//
// Register all tools before calling Run; the runner does no locking of
// its own.
type Runner struct {
	ambient signal.Aborter
	timeout time.Duration
	tools   map[string]tool.Tool
}

// New creates an empty Runner.
func New(cfg Config) *Runner {
	return &Runner{
		ambient: cfg.Ambient,
		timeout: cfg.Timeout,
		tools:   make(map[string]tool.Tool),
	}
}

// Register adds a tool, wrapped with the runner's ambient signal.
func (r *Runner) Register(t tool.Tool) error {
	if t.Name == "" {
		return errors.New("tool has no name")
	}
	if _, ok := r.tools[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.tools[t.Name] = tool.WithCancellation(t, r.ambient)
	logger.Debug("Registered tool %s", t.Name)
	return nil
}

// Tools returns the registered tools sorted by name.
func (r *Runner) Tools() []tool.Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		result = append(result, r.tools[name])
	}
	return result
}

// Run executes one tool call. sig is the call's own cancellation signal
// and may be nil; the registered tool already carries the ambient signal,
// so firing either one cancels the call.
func (r *Runner) Run(ctx context.Context, callID, name string, params map[string]any, sig signal.Aborter, onUpdate tool.ProgressFunc) (*tool.Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if t.Execute == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotExecutable, name)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger.Debug("Executing tool %s (call %s)", name, callID)
	res, err := t.Execute(ctx, callID, params, sig, onUpdate)
	if err != nil {
		if signal.IsAborted(err) {
			logger.Debug("Tool %s (call %s) aborted", name, callID)
		} else {
			logger.Error("Tool %s (call %s) failed: %v", name, callID, err)
		}
		return nil, err
	}

	logger.Debug("Tool %s (call %s) completed", name, callID)
	return res, nil
}
