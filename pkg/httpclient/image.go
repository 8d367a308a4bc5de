package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ImageService generates and edits images
type ImageService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create generates images from a prompt
func (s ImageService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "images/generations", in)
}

// Edit creates an edited or extended image
func (s ImageService) Edit(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "images/edits", in)
}

// Variation creates a variation of an image
func (s ImageService) Variation(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "images/variations", in)
}
