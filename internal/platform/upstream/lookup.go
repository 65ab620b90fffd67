package upstream

import (
	"context"
	"errors"
	"net/http"
)

// Lookup is the result of an existence check.
type Lookup[T any] struct {
	Value T
	Found bool
}

// Find issues a GET and decodes the body into a T. When c was configured
// with NotFoundAsAbsent, a 404 yields a Lookup with Found false and no error;
// otherwise the 404 is returned as an *Error like any other failure.
func Find[T any](ctx context.Context, c *Client, path string, opts ...Option) (Lookup[T], error) {
	var value T
	err := c.do(ctx, http.MethodGet, path, nil, &value, true, opts)
	if errors.Is(err, errAbsent) {
		return Lookup[T]{}, nil
	}
	if err != nil {
		return Lookup[T]{}, err
	}
	return Lookup[T]{Value: value, Found: true}, nil
}
