package main

import (
	"context"
	"fmt"

	"github.com/vibecod3rs/vibe"
	"github.com/vibecod3rs/vibe/gemini"
)

// resolveProvider constructs the Gemini provider. An empty key yields a nil
// provider, which leaves the assistant offline.
func resolveProvider(ctx context.Context, key, model string) (vibe.ChatProvider, error) {
	if key == "" {
		return nil, nil
	}
	client, err := gemini.New(ctx, key, gemini.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return client, nil
}
