/*
httpclient implements an API client for OpenAI, which returns responses as
structured values rather than fixed types.
https://platform.openai.com/docs/api-reference
*/
package httpclient

import (
	"log/slog"
	"sync"
	"sync/atomic"

	// Packages
	session "github.com/mutablelogic/go-openai/pkg/session"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an OpenAI API client. It owns a single session, so requests made
// through one client are executed one at a time. A Client must not be copied.
type Client struct {
	mu      sync.Mutex
	session *session.Session
	baseURL string
	throw   atomic.Bool
	verbose bool
	log     *slog.Logger
	tracer  trace.Tracer
	org     string

	// Categories
	Model      ModelService
	Completion CompletionService
	Edit       EditService
	Image      ImageService
	Embedding  EmbeddingService
	File       FileService
	FineTune   FineTuneService
	Moderation ModerationService
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultBaseURL = session.DefaultEndpoint
	tracerName     = "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with a bearer token. By default, transport and API
// errors are returned as errors; use WithThrowOnError(false) to log them
// instead.
func New(token string, opts ...Opt) (*Client, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Transport errors are reported in the response, and the error policy
	// is applied by the client
	s, err := session.New(session.OptClient(o.client...), session.OptProxy(o.proxy))
	if err != nil {
		return nil, err
	}
	s.SetToken(token, o.organization)

	// Create the client
	c := &Client{
		session: s,
		baseURL: o.baseURL,
		verbose: o.verbose,
		log:     o.log,
		tracer:  o.tracer,
		org:     o.organization,
	}
	c.throw.Store(o.throw)
	c.Model = ModelService{c}
	c.Completion = CompletionService{c}
	c.Edit = EditService{c}
	c.Image = ImageService{c}
	c.Embedding = EmbeddingService{c}
	c.File = FileService{c}
	c.FineTune = FineTuneService{c}
	c.Moderation = ModerationService{c}

	// Return success
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// BaseURL returns the endpoint root which paths are appended to
func (c *Client) BaseURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL
}

// SetBaseURL overrides the endpoint root, for proxies, mocks and alternate
// deployments. Paths are appended without a separator, so the url normally
// ends with "/".
func (c *Client) SetBaseURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = url
}

// SetProxy routes requests through a proxy, or disables proxying if url is
// empty
func (c *Client) SetProxy(url string) error {
	return c.session.SetProxy(url)
}

// SetThrowOnError sets the error policy. When true, transport and API errors
// are returned as errors. When false, they are logged and the call returns
// its best-effort result.
func (c *Client) SetThrowOnError(throw bool) {
	c.throw.Store(throw)
}

// ThrowOnError returns the current error policy
func (c *Client) ThrowOnError() bool {
	return c.throw.Load()
}

// Organization returns the organization id, or empty string
func (c *Client) Organization() string {
	return c.org
}

// Escape percent-encodes text for inclusion in a path
func (c *Client) Escape(text string) string {
	return c.session.Escape(text)
}
