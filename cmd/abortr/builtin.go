package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/abortr/signal"
	"github.com/mark3labs/abortr/tool"
)

// builtinTools returns the tools bundled with the CLI. They exist to
// exercise cancellation end to end: echo returns instantly, sleep stays
// in flight long enough to cancel.
func builtinTools() []tool.Tool {
	return []tool.Tool{echoTool(), sleepTool()}
}

// echoTool returns its input parameters verbatim as JSON.
func echoTool() tool.Tool {
	return tool.Tool{
		Name:        "echo",
		Description: "Returns its input parameters verbatim",
		Schema: map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		},
		Execute: func(ctx context.Context, callID string, params map[string]any, sig signal.Aborter, onUpdate tool.ProgressFunc) (*tool.Result, error) {
			if sig != nil && sig.Aborted() {
				return nil, signal.ErrAborted
			}
			data, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal params: %w", err)
			}
			return &tool.Result{Content: string(data)}, nil
		},
	}
}

// sleepTool waits out a duration unless its signal or context fires
// first, reporting progress once per second.
func sleepTool() tool.Tool {
	return tool.Tool{
		Name:        "sleep",
		Description: "Waits for the given duration, stopping early when cancelled",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"duration": map[string]any{
					"type":        "string",
					"description": "How long to sleep (Go duration, e.g. \"5s\")",
				},
			},
			"required": []string{"duration"},
		},
		Execute: func(ctx context.Context, callID string, params map[string]any, sig signal.Aborter, onUpdate tool.ProgressFunc) (*tool.Result, error) {
			raw, _ := params["duration"].(string)
			d, err := time.ParseDuration(raw)
			if err != nil {
				return &tool.Result{Content: fmt.Sprintf("invalid duration %q", raw), IsError: true}, nil
			}

			bctx, cancel := signal.Bind(ctx, sig)
			defer cancel()

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			deadline := time.NewTimer(d)
			defer deadline.Stop()

			start := time.Now()
			for {
				select {
				case <-deadline.C:
					return &tool.Result{Content: fmt.Sprintf("slept %s", d)}, nil
				case <-ticker.C:
					if onUpdate != nil {
						onUpdate(tool.Update{Output: fmt.Sprintf("sleeping... %s elapsed\n", time.Since(start).Round(time.Second))})
					}
				case <-bctx.Done():
					if sig != nil && sig.Aborted() {
						return nil, signal.ErrAborted
					}
					return nil, bctx.Err()
				}
			}
		},
	}
}
