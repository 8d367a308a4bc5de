package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FineTuneService manages fine-tuning jobs
type FineTuneService struct {
	c *Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create starts a fine-tuning job
func (s FineTuneService) Create(ctx context.Context, in any) (schema.Json, error) {
	return s.c.Post(ctx, "fine-tunes", in)
}

// List returns the fine-tuning jobs for the organization
func (s FineTuneService) List(ctx context.Context) (schema.Json, error) {
	return s.c.Get(ctx, "fine-tunes")
}

// Retrieve returns a fine-tuning job
func (s FineTuneService) Retrieve(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "fine-tunes/"+id)
}

func (s FineTuneService) Content(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "fine-tunes/"+id+"/content")
}

// Cancel cancels a running job. The service expects a GET.
func (s FineTuneService) Cancel(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "fine-tunes/"+id+"/cancel")
}

// Events returns status updates for a job
func (s FineTuneService) Events(ctx context.Context, id string) (schema.Json, error) {
	return s.c.Get(ctx, "fine-tunes/"+id+"/events")
}
