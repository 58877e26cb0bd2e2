package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/julienpequegnot/tfclass/internal/extract"
	"github.com/mmcdole/gofeed"
)

type Item struct {
	URL         string
	Title       string
	PublishedAt time.Time
	Categories  []string
	Content     string
}

// Text is what gets classified: the title followed by the item content.
func (i Item) Text() string {
	return strings.TrimSpace(i.Title + " " + i.Content)
}

type Fetcher struct {
	parser  *gofeed.Parser
	client  *http.Client
	timeout time.Duration
}

// NewFetcher returns a fetcher whose requests give up after timeout. A
// non-positive timeout means no deadline.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout < 0 {
		timeout = 0
	}
	client := &http.Client{Timeout: timeout}
	parser := gofeed.NewParser()
	parser.Client = client
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &Fetcher{
		parser:  parser,
		client:  client,
		timeout: timeout,
	}
}

func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]Item, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := Item{
			URL:        entry.Link,
			Title:      strings.TrimSpace(entry.Title),
			Categories: entry.Categories,
		}

		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.PublishedAt = *entry.UpdatedParsed
		}

		if entry.Content != "" {
			item.Content = extract.HTMLString(entry.Content)
		} else {
			item.Content = extract.HTMLString(entry.Description)
		}

		items = append(items, item)
	}

	return items, nil
}
