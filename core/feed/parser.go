package feed

import (
	"bytes"
	"errors"
	"time"

	"fullfeed-api/core/domain"

	"github.com/mmcdole/gofeed"
)

// ParseFeed converts raw RSS/Atom/JSON feed bytes into the domain model.
// feedURL is recorded as the feed's source URL.
func ParseFeed(content []byte, feedURL string) (*domain.Feed, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	feed := &domain.Feed{
		ID:          parsed.FeedLink,
		Title:       parsed.Title,
		Description: parsed.Description,
		URL:         feedURL,
		Link:        parsed.Link,
		Author:      convertPerson(parsed.Author),
		Entries:     make([]domain.Entry, 0, len(parsed.Items)),
	}
	if feed.ID == "" {
		feed.ID = feedURL
	}

	switch {
	case parsed.UpdatedParsed != nil:
		feed.Updated = *parsed.UpdatedParsed
	case parsed.PublishedParsed != nil:
		feed.Updated = *parsed.PublishedParsed
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		feed.Entries = append(feed.Entries, convertItem(item))
	}

	return feed, nil
}

// convertItem converts a gofeed item to a domain entry
func convertItem(item *gofeed.Item) domain.Entry {
	entry := domain.Entry{
		ID:          item.GUID,
		Title:       item.Title,
		Description: item.Description,
		Author:      convertPerson(item.Author),
		Published:   copyTime(item.PublishedParsed),
		Updated:     copyTime(item.UpdatedParsed),
	}

	entry.Links = append(entry.Links, item.Links...)
	if len(entry.Links) == 0 && item.Link != "" {
		entry.Links = []string{item.Link}
	}

	if entry.ID == "" && len(entry.Links) > 0 {
		entry.ID = entry.Links[0]
	}

	if item.Content != "" {
		entry.Content = &domain.Content{Body: item.Content, Type: "html"}
	}

	return entry
}

func convertPerson(p *gofeed.Person) *domain.Author {
	if p == nil || (p.Name == "" && p.Email == "") {
		return nil
	}
	return &domain.Author{Name: p.Name, Email: p.Email}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
