// ABOUTME: Feed processor replaces entry bodies with full article content
// ABOUTME: Handles at most MaxEntries linked entries per feed and isolates per-entry failures

package feed

import (
	"context"

	"fullfeed-api/core/domain"
	"fullfeed-api/core/interfaces"
)

// MaxEntries bounds how many linked entries are fetched per feed
const MaxEntries = 10

// Processor implements interfaces.FeedProcessor
type Processor struct {
	fetcher    interfaces.ContentFetcher
	logger     interfaces.Logger
	maxEntries int
}

// NewProcessor creates a processor that fetches article content through fetcher
func NewProcessor(fetcher interfaces.ContentFetcher, logger interfaces.Logger) *Processor {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Processor{
		fetcher:    fetcher,
		logger:     logger,
		maxEntries: MaxEntries,
	}
}

// Process walks the entries in order, one at a time. Entries without a link
// are skipped and do not count toward the bound; an entry counts as soon as
// its link has been extracted, whether or not the fetch succeeds. A failed
// fetch leaves the entry exactly as it was.
//
// The feed is modified in place and returned.
func (p *Processor) Process(ctx context.Context, feed *domain.Feed) *domain.Feed {
	if feed == nil {
		return nil
	}

	attempted, replaced := 0, 0
	for i := range feed.Entries {
		if attempted >= p.maxEntries {
			break
		}
		if err := ctx.Err(); err != nil {
			p.logger.Warn("Feed processing cancelled", map[string]interface{}{
				"feed":  feed.URL,
				"error": err.Error(),
			})
			break
		}

		entry := &feed.Entries[i]
		link, ok := entry.PrimaryLink()
		if !ok {
			p.logger.Debug("Skipping entry without link", map[string]interface{}{
				"feed":  feed.URL,
				"index": i,
				"title": entry.Title,
			})
			continue
		}
		attempted++

		body, err := p.fetcher.FetchContent(ctx, link)
		if err != nil {
			p.logger.Warn("Article fetch failed, keeping original entry", map[string]interface{}{
				"feed":  feed.URL,
				"url":   link,
				"error": err.Error(),
			})
			continue
		}

		entry.Content = &domain.Content{Body: body, Type: "html"}
		replaced++
	}

	p.logger.Info("Processed feed entries", map[string]interface{}{
		"feed":      feed.URL,
		"entries":   len(feed.Entries),
		"attempted": attempted,
		"replaced":  replaced,
	})

	return feed
}
