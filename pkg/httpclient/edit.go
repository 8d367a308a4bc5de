package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type EditService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create returns an edited version of the input given an instruction
func (s EditService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "edits", in)
}
