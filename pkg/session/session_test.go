package session_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	session "github.com/mutablelogic/go-openai/pkg/session"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type request struct {
	Method        string
	Path          string
	Body          string
	ContentType   string
	Authorization []string
	Organization  []string
}

// newEchoServer returns a server which records the last request and replies
// with status and body
func newEchoServer(t *testing.T, status int, body string) (*httptest.Server, *request) {
	t.Helper()
	last := new(request)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*last = request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Body:          string(data),
			ContentType:   r.Header.Get("Content-Type"),
			Authorization: r.Header.Values("Authorization"),
			Organization:  r.Header.Values("OpenAI-Organization"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, last
}

// closedURL returns the URL of a server which is no longer listening
func closedURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_session_001(t *testing.T) {
	assert := assert.New(t)
	s, err := session.New()
	if assert.NoError(err) {
		assert.Equal(session.DefaultEndpoint, s.URL())
		assert.Empty(s.Proxy())
	}
}

func Test_session_002(t *testing.T) {
	assert := assert.New(t)
	srv, last := newEchoServer(t, http.StatusOK, `{"object":"list"}`)

	s, err := session.New()
	require.NoError(t, err)
	s.SetToken("t", "o")
	s.SetURL(srv.URL + "/v1/models")

	response, err := s.Get(context.Background())
	assert.NoError(err)
	assert.False(response.IsError)
	assert.Equal(http.StatusOK, response.Status)
	assert.Equal(`{"object":"list"}`, response.Text)

	// Headers
	assert.Equal(http.MethodGet, last.Method)
	assert.Equal("/v1/models", last.Path)
	assert.Equal("application/json", last.ContentType)
	assert.Equal([]string{"Bearer t"}, last.Authorization)
	assert.Equal([]string{"o"}, last.Organization)
	assert.Empty(last.Body)
}

func Test_session_003(t *testing.T) {
	assert := assert.New(t)
	srv, last := newEchoServer(t, http.StatusOK, `{}`)

	s, err := session.New()
	require.NoError(t, err)

	// Organization header is omitted when empty
	s.SetToken("t", "")
	s.SetURL(srv.URL + "/v1/completions")
	s.SetBody([]byte(`{"model":"gpt-4"}`))

	_, err = s.Post(context.Background())
	assert.NoError(err)
	assert.Equal(http.MethodPost, last.Method)
	assert.Equal(`{"model":"gpt-4"}`, last.Body)
	assert.Equal([]string{"Bearer t"}, last.Authorization)
	assert.Empty(last.Organization)

	// GET after POST does not send the body
	_, err = s.Get(context.Background())
	assert.NoError(err)
	assert.Equal(http.MethodGet, last.Method)
	assert.Empty(last.Body)
}

func Test_session_004(t *testing.T) {
	assert := assert.New(t)

	// The body is returned verbatim for an error status
	srv, _ := newEchoServer(t, http.StatusBadRequest, `{"error":{"message":"bad request"}}`)
	s, err := session.New(session.OptThrowOnError(true))
	require.NoError(t, err)

	response, err := s.Request(context.Background(), http.MethodPost, srv.URL+"/v1/edits", []byte(`{}`))
	assert.NoError(err)
	assert.False(response.IsError)
	assert.Equal(http.StatusBadRequest, response.Status)
	assert.Equal(`{"error":{"message":"bad request"}}`, response.Text)
	assert.Equal(srv.URL+"/v1/edits", s.URL())
}

func Test_session_005(t *testing.T) {
	assert := assert.New(t)
	url := closedURL(t)

	// Without throw, the failure is in the response
	s, err := session.New()
	require.NoError(t, err)
	s.SetURL(url)
	response, err := s.Get(context.Background())
	assert.NoError(err)
	assert.True(response.IsError)
	assert.NotEmpty(response.ErrorMessage)
	assert.Empty(response.Text)

	// With throw, the failure is also returned
	s.SetThrowOnError(true)
	response, err = s.Get(context.Background())
	assert.ErrorIs(err, schema.ErrTransport)
	assert.True(response.IsError)
	assert.Contains(err.Error(), response.ErrorMessage)
}

func Test_session_006(t *testing.T) {
	assert := assert.New(t)

	// A cancelled context is a transport error
	srv, _ := newEchoServer(t, http.StatusOK, `{}`)
	s, err := session.New(session.OptThrowOnError(true))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Request(ctx, http.MethodGet, srv.URL, nil)
	assert.ErrorIs(err, schema.ErrTransport)
}

func Test_session_007(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"a b/c", "gpt-4", "ft:gpt-3.5-turbo:org:custom:id", "a+b&c=d?e#f", "ünïcode", "~._-"} {
		escaped := session.Escape(text)
		assert.NotContains(escaped, " ")
		assert.NotContains(escaped, "/")
		assert.NotContains(escaped, "+")
		unescaped, err := url.PathUnescape(escaped)
		assert.NoError(err)
		assert.Equal(text, unescaped)
	}

	assert.Equal("a%20b%2Fc", session.Escape("a b/c"))
	assert.Equal("~._-AZaz09", session.Escape("~._-AZaz09"))
	assert.Equal("%C3%BC", session.Escape("ü"))
}

func Test_session_008(t *testing.T) {
	assert := assert.New(t)

	// The proxy receives requests for any host
	var proxied string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.String()
		io.WriteString(w, `{"proxied":true}`)
	}))
	defer proxy.Close()

	s, err := session.New(session.OptProxy(proxy.URL))
	require.NoError(t, err)
	assert.Equal(proxy.URL, s.Proxy())

	response, err := s.Request(context.Background(), http.MethodGet, "http://api.openai.invalid/v1/models", nil)
	assert.NoError(err)
	assert.False(response.IsError)
	assert.Equal(`{"proxied":true}`, response.Text)
	assert.True(strings.HasSuffix(proxied, "/v1/models"))

	// Disable the proxy
	assert.NoError(s.SetProxy(""))
	assert.Empty(s.Proxy())
}

func Test_session_009(t *testing.T) {
	assert := assert.New(t)

	s, err := session.New()
	require.NoError(t, err)
	assert.ErrorIs(s.SetProxy("localhost"), schema.ErrBadParameter)
	assert.ErrorIs(s.SetProxy("::"), schema.ErrBadParameter)

	_, err = session.New(session.OptProxy("not a url"))
	assert.ErrorIs(err, schema.ErrBadParameter)
}

func Test_session_010(t *testing.T) {
	assert := assert.New(t)

	// Transport errors which are not returned are logged
	var buf bytes.Buffer
	s, err := session.New(session.OptLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)
	response, err := s.Request(context.Background(), http.MethodGet, closedURL(t), nil)
	assert.NoError(err)
	assert.True(response.IsError)
	assert.Contains(buf.String(), "transport error")
	assert.Contains(response.String(), "request failed")
}

func Test_session_011(t *testing.T) {
	assert := assert.New(t)

	// Proxying keeps the options of the HTTP handle, and SetProxy switches
	// between proxies
	newProxy := func(name string, headers *[]string) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*headers = append(*headers, name+"="+r.Header.Get("X-Test"))
			io.WriteString(w, `{}`)
		}))
		t.Cleanup(srv.Close)
		return srv
	}
	var headers []string
	first, second := newProxy("first", &headers), newProxy("second", &headers)

	var trace bytes.Buffer
	s, err := session.New(
		session.OptProxy(first.URL),
		session.OptClient(client.OptHeader("X-Test", "yes"), client.OptTrace(&trace, true)),
	)
	require.NoError(t, err)

	_, err = s.Request(context.Background(), http.MethodGet, "http://api.openai.invalid/v1/models", nil)
	assert.NoError(err)
	assert.NoError(s.SetProxy(second.URL))
	_, err = s.Request(context.Background(), http.MethodGet, "http://api.openai.invalid/v1/models", nil)
	assert.NoError(err)

	assert.Equal([]string{"first=yes", "second=yes"}, headers)
	assert.NotZero(trace.Len())
}
