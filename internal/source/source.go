// Package source fetches the raw text the reading parsers consume.
package source

import (
	"context"

	"codeberg.org/mutker/statusfeed/internal/errors"
	"codeberg.org/mutker/statusfeed/internal/logger"
)

// Fetcher produces one raw text sample.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context) (string, error)

func (f FetchFunc) Fetch(ctx context.Context) (string, error) {
	return f(ctx)
}

// Result is the outcome of one fetch. Text is empty when Err is set.
type Result struct {
	Text string
	Err  error
}

// Failed is a Result carrying err.
func Failed(err error) Result {
	return Result{Err: err}
}

// Fetch runs f and logs a failure at debug level. A nil fetcher is
// reported as unavailable.
func Fetch(ctx context.Context, name string, f Fetcher) Result {
	if f == nil {
		return Failed(errors.New().WithData(errors.ErrUnavailable, name))
	}

	text, err := f.Fetch(ctx)
	if err != nil {
		logger.Debug().Err(err).Str("source", name).Msg("Source unavailable")
		return Failed(err)
	}

	return Result{Text: text}
}
