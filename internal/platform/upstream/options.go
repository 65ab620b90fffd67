package upstream

import (
	"net/http"
	"net/url"
)

// NotFoundPolicy controls how Find treats a 404 from the backend.
type NotFoundPolicy int

const (
	// NotFoundAsError surfaces 404 as an *Error, like any other failure.
	NotFoundAsError NotFoundPolicy = iota
	// NotFoundAsAbsent lets Find report 404 as an absent resource.
	NotFoundAsAbsent
)

func (p NotFoundPolicy) String() string {
	if p == NotFoundAsAbsent {
		return "absent"
	}
	return "error"
}

// Option adjusts a single outbound call.
type Option func(*callOptions)

type callOptions struct {
	header http.Header
	query  url.Values
}

func newCallOptions(opts []Option) callOptions {
	co := callOptions{header: http.Header{}, query: url.Values{}}
	for _, opt := range opts {
		opt(&co)
	}
	return co
}

// WithHeader sets a request header. It is applied after the client's
// credentials, so it overrides them for the same key.
func WithHeader(key, value string) Option {
	return func(co *callOptions) {
		co.header.Set(key, value)
	}
}

// WithAuthorization forwards an Authorization header value as-is.
// An empty value leaves the client's credentials untouched.
func WithAuthorization(value string) Option {
	return func(co *callOptions) {
		if value != "" {
			co.header.Set("Authorization", value)
		}
	}
}

// WithQuery adds a query parameter to the request URL.
func WithQuery(key, value string) Option {
	return func(co *callOptions) {
		co.query.Add(key, value)
	}
}
