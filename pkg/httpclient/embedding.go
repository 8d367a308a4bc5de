package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbeddingService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create returns embedding vectors for the input, ie.
// {"model": "text-embedding-ada-002", "input": "The food was delicious"}
func (s EmbeddingService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "embeddings", in)
}
