package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelService lists and retrieves models
type ModelService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List returns the models available to the account
func (m ModelService) List(ctx context.Context) (schema.Json, error) {
	return m.c.Get(ctx, "models")
}

// Retrieve returns a model by id. The id is not escaped.
func (m ModelService) Retrieve(ctx context.Context, id string) (schema.Json, error) {
	return m.c.Get(ctx, "models/"+id)
}

// Delete deletes a fine-tuned model owned by the organization
func (m ModelService) Delete(ctx context.Context, id string) (schema.Json, error) {
	return m.c.Delete(ctx, "models/"+id)
}
