// Package fetch downloads the published SPDX license list with retry and
// circuit breaking, and converts it to the catalog data format, so callers
// can refresh an on-disk catalog without waiting for a library release.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"

	"github.com/git-pkgs/spdx"
)

// DefaultURL is the canonical location of the SPDX license list.
const DefaultURL = "https://spdx.org/licenses/licenses.json"

var (
	ErrNotFound     = errors.New("license list not found")
	ErrRateLimited  = errors.New("rate limited by upstream")
	ErrUpstreamDown = errors.New("upstream unavailable")
)

// LicenseList is the published SPDX license list.
type LicenseList struct {
	Version  string         `json:"licenseListVersion"`
	Licenses []LicenseEntry `json:"licenses"`
}

// LicenseEntry is one license in the published list.
type LicenseEntry struct {
	ID          string `json:"licenseId"`
	Name        string `json:"name"`
	OSIApproved bool   `json:"isOsiApproved"`
	Deprecated  bool   `json:"isDeprecatedLicenseId"`
}

// Catalog converts the list to a spdx.Catalog. Deprecated identifiers are
// kept; manifests in the wild still declare them.
func (l *LicenseList) Catalog() (*spdx.Catalog, error) {
	var buf bytes.Buffer
	if err := l.WriteCatalog(&buf); err != nil {
		return nil, err
	}
	return spdx.NewCatalog(&buf)
}

// WriteCatalog serializes the list in the catalog data format: a JSON object
// mapping each identifier to a [fullName, osiApproved] record.
func (l *LicenseList) WriteCatalog(w io.Writer) error {
	records := make(map[string][]any, len(l.Licenses))
	for _, entry := range l.Licenses {
		records[entry.ID] = []any{entry.Name, entry.OSIApproved}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return nil
}

// Fetcher downloads the SPDX license list.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		f.maxRetries = n
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.baseDelay = d
	}
}

// NewFetcher creates a new Fetcher with the given options.
func NewFetcher(opts ...Option) *Fetcher {
	// Create DNS cache with 5 minute refresh interval
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	// Create custom dialer with DNS caching
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP")
				},
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent:  "git-pkgs-spdx/1.0",
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads and decodes the license list from the given URL. An empty
// URL means DefaultURL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*LicenseList, error) {
	if url == "" {
		url = DefaultURL
	}

	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with 10% jitter to prevent thundering herd
			delay := f.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(float64(delay) * (rand.Float64() * 0.1))
			delay += jitter

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		list, err := f.doFetch(ctx, url)
		if err == nil {
			return list, nil
		}

		lastErr = err

		if errors.Is(err, ErrNotFound) {
			return nil, err
		}

		// Retry on rate limit and server errors
		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUpstreamDown) {
			continue
		}

		return nil, err
	}

	return nil, lastErr
}

func (f *Fetcher) doFetch(ctx context.Context, url string) (*LicenseList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching license list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		var list LicenseList
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			return nil, fmt.Errorf("decoding license list: %w", err)
		}
		if len(list.Licenses) == 0 {
			return nil, fmt.Errorf("license list at %s is empty", url)
		}
		return &list, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited

	case resp.StatusCode >= 500:
		return nil, ErrUpstreamDown

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}
