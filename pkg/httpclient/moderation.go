package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModerationService classifies text against the content policy
type ModerationService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s ModerationService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "moderations", in)
}
