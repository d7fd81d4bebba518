package swproxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPFetcher resolves proxy requests against the backend's static file
// tree over plain HTTP.
type HTTPFetcher struct {
	base *url.URL
	hc   *http.Client
}

func NewHTTPFetcher(baseURL string) (*HTTPFetcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &HTTPFetcher{
		base: base,
		hc:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (*Response, error) {
	u := f.base.ResolveReference(&url.URL{Path: req.Path})

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		Source:      FromNetwork,
	}, nil
}
