package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileService manages files uploaded for fine-tuning
type FileService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List returns the files which belong to the organization
func (s FileService) List(ctx context.Context) (schema.Json, error) {
	return s.c.Get(ctx, "files")
}

// Upload posts the request body to the files endpoint as JSON
func (s FileService) Upload(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "files", in)
}

// Retrieve returns information about a file
func (s FileService) Retrieve(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "files/"+id)
}

// Content returns the contents of a file. Content which is not JSON is
// returned as nil.
func (s FileService) Content(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "files/"+id+"/content")
}

// Delete deletes a file
func (s FileService) Delete(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Delete(ctx, "files/"+id)
}
