// Package metadata fetches page metadata (title, favicon) for bookmarked
// URLs. It is strictly best-effort: callers pre-fill defaults with whatever
// comes back and proceed regardless of failures.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	userAgent    = "LinkVault/1.0"
	fetchTimeout = 10 * time.Second

	// maxBodyBytes bounds how much HTML is read when hunting for the title
	// and favicon; both normally live in <head>.
	maxBodyBytes = 512 * 1024
)

// PageMetadata holds whatever could be extracted from the page. Empty fields
// mean "not found", never an error.
type PageMetadata struct {
	Title      string `json:"title,omitempty"`
	FaviconURL string `json:"favicon_url,omitempty"`
}

// Fetcher retrieves page metadata over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a metadata fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

var (
	titleRe = regexp.MustCompile(`(?is)<title[^>]*>([^<]*)</title>`)

	// <link rel="icon" href="..."> in either attribute order.
	iconRelHrefRe = regexp.MustCompile(`(?i)<link\s+[^>]*rel=["'](?:shortcut\s+)?icon["'][^>]*href=["']([^"']+)["'][^>]*>`)
	iconHrefRelRe = regexp.MustCompile(`(?i)<link\s+[^>]*href=["']([^"']+)["'][^>]*rel=["'](?:shortcut\s+)?icon["'][^>]*>`)
)

// Fetch downloads the page at pageURL and extracts its title and favicon.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*PageMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read page body: %w", err)
	}
	html := string(body)

	meta := &PageMetadata{
		FaviconURL: extractFaviconURL(html, pageURL),
	}
	if m := titleRe.FindStringSubmatch(html); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	}
	return meta, nil
}

// extractFaviconURL finds a <link rel=icon> href and resolves it against the
// page URL. When the page declares no icon, it falls back to /favicon.ico at
// the origin.
func extractFaviconURL(html, pageURL string) string {
	for _, re := range []*regexp.Regexp{iconRelHrefRe, iconHrefRelRe} {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		if resolved := resolveURL(m[1], pageURL); resolved != "" {
			return resolved
		}
	}

	base, err := url.Parse(pageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return ""
	}
	return base.Scheme + "://" + base.Host + "/favicon.ico"
}

func resolveURL(href, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
