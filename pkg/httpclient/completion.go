package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CompletionService creates text completions
type CompletionService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create returns a completion for a prompt, ie.
// {"model": "text-davinci-003", "prompt": "Say this is a test"}
func (s CompletionService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "completions", in)
}
