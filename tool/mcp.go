package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/mark3labs/abortr/signal"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCP converts the tool into an mcp-go tool definition, using the
// record's schema verbatim. Tools without a schema advertise an open
// object so clients can still call them.
func (t Tool) MCP() (mcp.Tool, error) {
	schema := t.Schema
	if schema == nil {
		schema = map[string]any{"type": "object"}
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("failed to marshal schema for %s: %w", t.Name, err)
	}
	return mcp.NewToolWithRawSchema(t.Name, t.Description, raw), nil
}

// MCPHandler returns an mcp-go handler that executes t. The per-call
// cancellation signal is derived from the request context, so
// transport-level cancellation reaches the tool the same way an explicit
// signal would. Call IDs are assigned from a per-handler counter.
//
// Tool-reported failures map to MCP error results; a cancellation error
// propagates as a protocol-level error so the client can tell the call
// was aborted rather than answered.
func MCPHandler(t Tool) server.ToolHandlerFunc {
	var seq atomic.Int64
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if t.Execute == nil {
			return mcp.NewToolResultError(fmt.Sprintf("tool %s is not executable", t.Name)), nil
		}

		callID := fmt.Sprintf("%s-%d", t.Name, seq.Add(1))
		res, err := t.Execute(ctx, callID, request.GetArguments(), signal.FromContext(ctx), nil)
		if err != nil {
			if signal.IsAborted(err) {
				return nil, err
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		if res == nil {
			return mcp.NewToolResultText(""), nil
		}
		if res.IsError {
			return mcp.NewToolResultError(res.Content), nil
		}
		return mcp.NewToolResultText(res.Content), nil
	}
}
