/*
openai provides a process-wide OpenAI client, configured once and shared by
the free functions in this package. Use the httpclient package directly to
create independent clients.
*/
package openai

import (
	"context"
	"sync"

	// Packages
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	mu          sync.Mutex
	instance    *httpclient.Client
	instanceErr error
	done        bool
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Configure creates the shared client on the first call. Later calls ignore
// their arguments and return the result of the first call.
func Configure(token, organization string, throwOnError bool, opts ...httpclient.Opt) (*httpclient.Client, error) {
	mu.Lock()
	defer mu.Unlock()
	if !done {
		opts = append([]httpclient.Opt{
			httpclient.WithOrganization(organization),
			httpclient.WithThrowOnError(throwOnError),
		}, opts...)
		instance, instanceErr = httpclient.New(token, opts...)
		done = true
	}
	return instance, instanceErr
}

// Instance returns the shared client, creating it without credentials if
// Configure has not been called. It panics if the client could not be created.
func Instance() *httpclient.Client {
	client, err := Configure("", "", true)
	if err != nil {
		panic(err)
	}
	return client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get performs a GET request on a path relative to the base URL
func Get(ctx context.Context, path string) (schema.Json, error) {
	return Instance().Get(ctx, path)
}

// Post serializes in and performs a POST request on a path relative to the
// base URL
func Post(ctx context.Context, path string, in any) (schema.Json, error) {
	return Instance().Post(ctx, path, in)
}

func PostRaw(ctx context.Context, path string, body []byte) (schema.Json, error) {
	return Instance().PostRaw(ctx, path, body)
}

func Delete(ctx context.Context, path string) (schema.Json, error) {
	return Instance().Delete(ctx, path)
}

// Escape percent-encodes text for inclusion in a path
func Escape(text string) string {
	return Instance().Escape(text)
}

///////////////////////////////////////////////////////////////////////////////
// CATEGORIES

func Model() httpclient.ModelService {
	return Instance().Model
}

func Completion() httpclient.CompletionService {
	return Instance().Completion
}

func Edit() httpclient.EditService {
	return Instance().Edit
}

func Image() httpclient.ImageService {
	return Instance().Image
}

func Embedding() httpclient.EmbeddingService {
	return Instance().Embedding
}

func File() httpclient.FileService {
	return Instance().File
}

func FineTune() httpclient.FineTuneService {
	return Instance().FineTune
}

func Moderation() httpclient.ModerationService {
	return Instance().Moderation
}
