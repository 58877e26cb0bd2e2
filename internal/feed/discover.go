// internal/feed/discover.go
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var feedPatterns = []string{
	"/feed",
	"/feed.xml",
	"/atom.xml",
	"/rss.xml",
	"/rss",
	"/index.xml",
	"/feed/atom",
	"/feed/rss",
}

const feedLinkSelector = `link[rel="alternate"][type="application/rss+xml"], link[rel="alternate"][type="application/atom+xml"]`

// DiscoverFeed returns the feed advertised by an HTML page, or the first
// common feed path that answers 200.
func (f *Fetcher) DiscoverFeed(ctx context.Context, siteURL string) (string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", siteURL, err)
	}

	if href, ok := f.feedLink(ctx, siteURL); ok {
		ref, err := url.Parse(href)
		if err == nil {
			return base.ResolveReference(ref).String(), nil
		}
	}

	baseURL := strings.TrimSuffix(siteURL, "/")
	for _, pattern := range feedPatterns {
		feedURL := baseURL + pattern
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, feedURL, nil)
		if err != nil {
			continue
		}
		resp, err := f.client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return feedURL, nil
		}
	}

	return "", fmt.Errorf("could not discover feed for %s", siteURL)
}

func (f *Fetcher) feedLink(ctx context.Context, siteURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
	if err != nil {
		return "", false
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", false
	}
	href, ok := doc.Find(feedLinkSelector).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", false
	}
	return strings.TrimSpace(href), true
}
