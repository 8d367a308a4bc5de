package httpclient

import (
	"log/slog"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option applied when a client is created
type Opt func(*opts) error

type opts struct {
	organization string
	baseURL      string
	proxy        string
	throw        bool
	verbose      bool
	log          *slog.Logger
	tracer       trace.Tracer
	client       []client.ClientOpt
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	opts := &opts{
		baseURL: DefaultBaseURL,
		throw:   true,
	}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}

	// Set defaults
	if opts.log == nil {
		opts.log = slog.Default()
	}
	if opts.tracer == nil {
		opts.tracer = noop.NewTracerProvider().Tracer(tracerName)
	}

	// Return success
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithOrganization sets the OpenAI-Organization header sent with each request
func WithOrganization(value string) Opt {
	return func(o *opts) error {
		o.organization = value
		return nil
	}
}

// WithThrowOnError sets the initial error policy, which is true by default
func WithThrowOnError(value bool) Opt {
	return func(o *opts) error {
		o.throw = value
		return nil
	}
}

// WithBaseURL overrides the endpoint root
func WithBaseURL(value string) Opt {
	return func(o *opts) error {
		if value == "" {
			return schema.ErrBadParameter.With("missing base url")
		}
		o.baseURL = value
		return nil
	}
}

// WithProxy routes requests through a proxy
func WithProxy(value string) Opt {
	return func(o *opts) error {
		o.proxy = value
		return nil
	}
}

// WithLogger sets the logger which receives errors when they are not
// returned, and verbose diagnostics. The default is slog.Default().
func WithLogger(value *slog.Logger) Opt {
	return func(o *opts) error {
		if value == nil {
			return schema.ErrBadParameter.With("missing logger")
		}
		o.log = value
		return nil
	}
}

// WithVerbose logs every request at Info level, and the raw text of any
// response which is not valid JSON at Warn level
func WithVerbose(value bool) Opt {
	return func(o *opts) error {
		o.verbose = value
		return nil
	}
}

// WithTracer creates a span for every request
func WithTracer(value trace.Tracer) Opt {
	return func(o *opts) error {
		o.tracer = value
		return nil
	}
}

// WithClientOpts appends options for the underlying HTTP handle, for example
// client.OptTimeout or client.OptTrace
func WithClientOpts(value ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.client = append(o.client, value...)
		return nil
	}
}
