// Package tool defines the tool record consumed by agent frameworks and
// the wrapper that binds an ambient cancellation signal to a tool's
// execution.
package tool

import (
	"context"

	"github.com/mark3labs/abortr/signal"
)

// Update carries incremental output from a running tool.
type Update struct {
	Output string
}

// ProgressFunc receives incremental updates during a tool call.
type ProgressFunc func(Update)

// Result holds the outcome of a single tool execution. IsError marks a
// tool-reported failure that should go back to the model rather than
// abort the agent loop.
type Result struct {
	Content string
	IsError bool
}

// ExecuteFunc runs one tool call. sig is the cancellation signal for this
// call and may be nil; implementations should stop early once it aborts,
// typically by bridging it into their context with signal.Bind. onUpdate
// may be nil when the caller does not consume progress.
type ExecuteFunc func(ctx context.Context, callID string, params map[string]any, sig signal.Aborter, onUpdate ProgressFunc) (*Result, error)

// Tool is an executable capability exposed to an agent. Schema describes
// the parameters as a JSON schema document. Execute may be nil for
// metadata-only entries.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	Execute     ExecuteFunc
}
