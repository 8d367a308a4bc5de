/*
session implements the transport for the OpenAI API. A session owns one HTTP
handle and executes one request at a time, returning the body of the response
verbatim whatever the status code.
*/
package session

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	version "github.com/mutablelogic/go-openai/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Session is a reusable, stateful request executor. The target URL and body
// are overwritten before each request.
type Session struct {
	sync.Mutex
	*client.Client

	url          string
	proxy        string
	body         []byte
	token        client.Token
	organization string
	throw        bool
	log          *slog.Logger

	// Base transport, underneath any go-client middleware
	transport *http.Transport
	proxyURL  atomic.Pointer[url.URL]
	proxySet  atomic.Bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint    = "https://api.openai.com/v1/"
	headerOrganization = "OpenAI-Organization"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a session. Without options, transport errors are reported in
// the response and not returned as errors.
func New(opts ...Opt) (*Session, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Create the session
	s := &Session{
		url:   DefaultEndpoint,
		token: client.Token{Scheme: client.Bearer},
		throw: o.throw,
		log:   o.log,
	}
	s.transport = http.DefaultTransport.(*http.Transport).Clone()
	s.transport.Proxy = s.proxyFunc

	// Create the HTTP handle. The base transport is set first, so that other
	// options wrap it.
	c, err := client.New(append([]client.ClientOpt{client.OptEndpoint(DefaultEndpoint), s.optTransport()}, o.client...)...)
	if err != nil {
		return nil, err
	}
	s.Client = c
	if o.proxy != "" {
		if err := s.SetProxy(o.proxy); err != nil {
			return nil, err
		}
	}

	// Return success
	return s, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SetURL sets the target of the next request
func (s *Session) SetURL(url string) {
	s.Lock()
	defer s.Unlock()
	s.url = url
}

// URL returns the target of the next request
func (s *Session) URL() string {
	s.Lock()
	defer s.Unlock()
	return s.url
}

// SetToken sets the bearer token and organization sent with each request.
// The organization header is omitted when organization is empty.
func (s *Session) SetToken(token, organization string) {
	s.Lock()
	defer s.Unlock()
	s.token.Value = token
	s.organization = organization
}

// SetBody sets the body of the next POST request
func (s *Session) SetBody(data []byte) {
	s.Lock()
	defer s.Unlock()
	s.body = data
}

// SetThrowOnError sets whether transport errors are returned as errors
func (s *Session) SetThrowOnError(throw bool) {
	s.Lock()
	defer s.Unlock()
	s.throw = throw
}

// SetProxy routes all requests through a proxy. An empty url disables
// proxying, including any proxy set in the environment. Until SetProxy is
// called, the environment is used.
func (s *Session) SetProxy(proxy string) error {
	var u *url.URL
	if proxy != "" {
		var err error
		if u, err = url.Parse(proxy); err != nil || u.Scheme == "" || u.Host == "" {
			return schema.ErrBadParameter.Withf("invalid proxy url %q", proxy)
		}
	}

	s.Lock()
	defer s.Unlock()
	s.proxyURL.Store(u)
	s.proxySet.Store(true)
	s.proxy = proxy

	// Connections to the previous proxy are not reused
	s.transport.CloseIdleConnections()

	// Return success
	return nil
}

// Proxy returns the proxy url, or empty string if requests are not proxied
func (s *Session) Proxy() string {
	s.Lock()
	defer s.Unlock()
	return s.proxy
}

// Get performs a GET request on the current URL. The body is not sent.
func (s *Session) Get(ctx context.Context) (Response, error) {
	s.Lock()
	defer s.Unlock()
	return s.do(ctx, http.MethodGet)
}

// Post performs a POST request on the current URL with the current body
func (s *Session) Post(ctx context.Context) (Response, error) {
	s.Lock()
	defer s.Unlock()
	return s.do(ctx, http.MethodPost)
}

// Delete performs a DELETE request on the current URL
func (s *Session) Delete(ctx context.Context) (Response, error) {
	s.Lock()
	defer s.Unlock()
	return s.do(ctx, http.MethodDelete)
}

// Request sets the URL and body and performs the request while holding the
// lock, so that concurrent callers never observe each other's state
func (s *Session) Request(ctx context.Context, method, url string, body []byte) (Response, error) {
	s.Lock()
	defer s.Unlock()
	s.url = url
	s.body = body
	return s.do(ctx, method)
}

// Escape percent-encodes text for inclusion in a URL. Only the unreserved
// characters A-Z a-z 0-9 - . _ ~ are left as-is.
func (s *Session) Escape(text string) string {
	return Escape(text)
}

// Escape percent-encodes text for inclusion in a URL. Only the unreserved
// characters A-Z a-z 0-9 - . _ ~ are left as-is.
func Escape(text string) string {
	// QueryEscape encodes a space as "+" and a literal "+" as "%2B"
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs a request with the lock held
func (s *Session) do(ctx context.Context, method string) (Response, error) {
	var body io.Reader
	if method == http.MethodPost {
		body = bytes.NewReader(s.body)
	}

	// Make the request
	req, err := http.NewRequestWithContext(ctx, method, s.url, body)
	if err != nil {
		return s.failure(ctx, 0, err)
	}
	req.Header.Set("Content-Type", client.ContentTypeJson)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Authorization", s.token.Scheme+" "+s.token.Value)
	if s.organization != "" {
		req.Header.Set(headerOrganization, s.organization)
	}

	// Use the underlying *http.Client directly, so the body is returned for
	// any status code
	resp, err := s.Client.Client.Do(req)
	if err != nil {
		return s.failure(ctx, 0, err)
	}
	defer resp.Body.Close()

	// Read the body
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.failure(ctx, resp.StatusCode, err)
	}

	// Return success
	return Response{
		Text:   string(data),
		Status: resp.StatusCode,
	}, nil
}

// optTransport sets the base transport of the HTTP handle
func (s *Session) optTransport() client.ClientOpt {
	return func(c *client.Client) error {
		c.Client.Transport = s.transport
		return nil
	}
}

// proxyFunc is called by the base transport for each request, so it must not
// take the session lock, which is held during dispatch
func (s *Session) proxyFunc(req *http.Request) (*url.URL, error) {
	if !s.proxySet.Load() {
		return http.ProxyFromEnvironment(req)
	}
	return s.proxyURL.Load(), nil
}

func (s *Session) failure(ctx context.Context, status int, err error) (Response, error) {
	response := Response{
		Status:       status,
		IsError:      true,
		ErrorMessage: "request failed: " + err.Error(),
	}
	if s.throw {
		return response, schema.ErrTransport.With(response.ErrorMessage)
	}
	if s.log != nil {
		s.log.ErrorContext(ctx, "openai: transport error", "url", s.url, "error", response.ErrorMessage)
	}
	return response, nil
}
