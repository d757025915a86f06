package bundle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBundleSize caps how much of a response body is read, so a
// misbehaving server cannot exhaust memory through one bundle.
const maxBundleSize = 8 << 20

// HTTPLoader fetches bundles over HTTP. The URL template is expanded per
// (locale, namespace):
//
//	bundle.NewHTTP("https://cdn.example.com/locales/{{lng}}/{{ns}}.json")
type HTTPLoader struct {
	client   *http.Client
	template Template
}

// HTTPOption configures an HTTPLoader.
type HTTPOption func(*HTTPLoader)

// WithHTTPClient replaces the default client (10s timeout). Use it to
// impose custom timeouts, retries, or transport settings.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(l *HTTPLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// NewHTTP creates a loader fetching bundle documents from the expanded
// URL template.
func NewHTTP(template Template, opts ...HTTPOption) *HTTPLoader {
	l := &HTTPLoader{
		client:   &http.Client{Timeout: 10 * time.Second},
		template: template,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and decodes the bundle for (locale, namespace). A 404 or
// 410 is a plain miss and yields an empty bundle; any other non-2xx
// status, transport failure, or parse failure returns an error.
func (l *HTTPLoader) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	url := l.template.Expand(locale, namespace)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %q: %w", ErrLoadFailed, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return map[string]any{}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned %s", ErrBadStatus, url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBundleSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrLoadFailed, url, err)
	}

	return decodeTree(url, data)
}
