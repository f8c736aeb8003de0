package imgsniff

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"imgsniff/internal/log"
)

type fetchOptions struct {
	client *http.Client
	cfg    FetchConfig
}

// FetchOption customizes Fetch.
type FetchOption func(*fetchOptions)

// WithHTTPClient sets the client used for the request. A nil client leaves
// http.DefaultClient in place.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(o *fetchOptions) {
		if c != nil {
			o.client = c
		}
	}
}

// WithFetchConfig overrides the timeout and body limit.
func WithFetchConfig(cfg FetchConfig) FetchOption {
	return func(o *fetchOptions) {
		o.cfg = cfg
	}
}

// Fetch downloads url with a GET request and sniffs the body. Transport
// failures, non-2xx responses and bodies larger than the configured limit
// all wrap ErrFetchFailed.
func Fetch(ctx context.Context, url string, opts ...FetchOption) (*Image, error) {
	o := fetchOptions{
		client: http.DefaultClient,
		cfg:    DefaultConfig().Fetch,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &sourceError{kind: ErrFetchFailed, source: url, err: err}
	}

	log.Debug("fetching image", "url", url)
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &sourceError{kind: ErrFetchFailed, source: url, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrFetchFailed, "%s: unexpected status %s", url, resp.Status)
	}

	limit := o.cfg.MaxBytes
	if limit <= 0 {
		limit = DefaultConfig().Fetch.MaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &sourceError{kind: ErrFetchFailed, source: url, err: err}
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFetchFailed, "%s: body exceeds %d bytes", url, limit)
	}

	img, err := New(data)
	if err != nil {
		return nil, errors.WithMessage(err, url)
	}
	img.Source = url
	return img, nil
}
