package session

import (
	"log/slog"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option applied when a session is created
type Opt func(*opts) error

type opts struct {
	client []client.ClientOpt
	throw  bool
	proxy  string
	log    *slog.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	opts := new(opts)
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptClient appends options for the underlying HTTP handle, for example
// client.OptTimeout or client.OptTrace
func OptClient(value ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.client = append(o.client, value...)
		return nil
	}
}

// OptThrowOnError returns transport errors as errors, rather than only
// reporting them in the response
func OptThrowOnError(value bool) Opt {
	return func(o *opts) error {
		o.throw = value
		return nil
	}
}

// OptProxy routes requests through a proxy
func OptProxy(value string) Opt {
	return func(o *opts) error {
		o.proxy = value
		return nil
	}
}

// OptLogger reports transport errors to a logger when they are not returned
func OptLogger(value *slog.Logger) Opt {
	return func(o *opts) error {
		o.log = value
		return nil
	}
}
