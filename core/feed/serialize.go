package feed

import (
	"fmt"

	"fullfeed-api/core/domain"

	"github.com/gorilla/feeds"
)

const (
	contentTypeRSS  = "application/rss+xml; charset=utf-8"
	contentTypeAtom = "application/atom+xml; charset=utf-8"
)

// Serialize renders feed as RSS 2.0 or Atom and returns the document with its content type.
func Serialize(feed *domain.Feed, format domain.FeedFormat) ([]byte, string, error) {
	if feed == nil {
		return nil, "", fmt.Errorf("serialize: nil feed")
	}

	out := toGorillaFeed(feed)

	switch format {
	case domain.FormatAtom:
		doc, err := out.ToAtom()
		if err != nil {
			return nil, "", fmt.Errorf("serialize atom: %w", err)
		}
		return []byte(doc), contentTypeAtom, nil
	case domain.FormatRSS, "":
		doc, err := out.ToRss()
		if err != nil {
			return nil, "", fmt.Errorf("serialize rss: %w", err)
		}
		return []byte(doc), contentTypeRSS, nil
	default:
		return nil, "", fmt.Errorf("unsupported feed format %q", format)
	}
}

func toGorillaFeed(feed *domain.Feed) *feeds.Feed {
	out := &feeds.Feed{
		Id:          feed.ID,
		Title:       feed.Title,
		Description: feed.Description,
		Link:        &feeds.Link{Href: feed.Link},
		Author:      toGorillaAuthor(feed.Author),
		Updated:     feed.Updated,
		Items:       make([]*feeds.Item, 0, len(feed.Entries)),
	}

	for i := range feed.Entries {
		entry := &feed.Entries[i]
		item := &feeds.Item{
			Id:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Link:        &feeds.Link{},
			Author:      toGorillaAuthor(entry.Author),
		}
		if link, ok := entry.PrimaryLink(); ok {
			item.Link.Href = link
		}
		if entry.Published != nil {
			item.Created = *entry.Published
		}
		if entry.Updated != nil {
			item.Updated = *entry.Updated
		}
		if entry.Content != nil {
			item.Content = entry.Content.Body
		}
		out.Items = append(out.Items, item)
	}

	return out
}

func toGorillaAuthor(a *domain.Author) *feeds.Author {
	if a == nil {
		return nil
	}
	return &feeds.Author{Name: a.Name, Email: a.Email}
}
