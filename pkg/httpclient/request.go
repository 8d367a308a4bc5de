package httpclient

import (
	"context"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	"go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get performs a GET request on a path relative to the base URL
func (c *Client) Get(ctx context.Context, path string) (schema.Json, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post serializes in and performs a POST request on a path relative to the
// base URL. A string, []byte or json.RawMessage is sent as-is, so a bare JSON
// string must be passed already quoted, ie. `"text"`.
func (c *Client) Post(ctx context.Context, path string, in any) (schema.Json, error) {
	data, err := schema.Marshal(in)
	if err != nil {
		return nil, err
	}
	return c.PostRaw(ctx, path, data)
}

// PostRaw performs a POST request with a body which is already serialized
func (c *Client) PostRaw(ctx context.Context, path string, body []byte) (schema.Json, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Delete performs a DELETE request on a path relative to the base URL
func (c *Client) Delete(ctx context.Context, path string) (schema.Json, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) do(ctx context.Context, method, path string, body []byte) (result schema.Json, err error) {
	url := c.BaseURL() + path

	// Otel span
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, method+" "+path,
		attribute.String("method", method),
		attribute.String("url", url),
	)
	defer func() { endSpan(err) }()

	if c.verbose {
		c.log.InfoContext(ctx, "openai: request", "method", method, "url", url, "body", len(body))
	}

	// Transport errors are reported in the response
	response, err := c.session.Request(ctx, method, url, body)
	if err != nil {
		return nil, err
	} else if response.IsError {
		if c.ThrowOnError() {
			return nil, schema.ErrTransport.With(response.ErrorMessage)
		}
		c.log.ErrorContext(ctx, "openai: transport error", "method", method, "url", url, "error", response.ErrorMessage)
		return nil, nil
	}

	// A body which is not JSON is never an error
	value, parseErr := schema.Parse([]byte(response.Text))
	if parseErr != nil {
		if c.verbose {
			c.log.WarnContext(ctx, "openai: malformed response", "url", url, "status", response.Status, "text", response.Text)
		}
		return nil, nil
	}

	// Check for an error object
	if errValue, exists := schema.ErrorValue(value); exists {
		apiErr := schema.NewAPIError(response.Status, errValue)
		if c.ThrowOnError() {
			return nil, apiErr
		}
		c.log.ErrorContext(ctx, "openai: api error", "url", url, "status", response.Status, "error", apiErr.Body)
		return value, nil
	}

	// Return success
	return value, nil
}
