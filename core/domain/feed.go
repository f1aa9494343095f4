// ABOUTME: Feed domain model represents an RSS/Atom feed with its metadata
// ABOUTME: Only entry content bodies are rewritten by the pipeline; everything else passes through

package domain

import (
	"errors"
	"net/url"
	"time"
)

// FeedFormat selects the serialization of an outgoing feed
type FeedFormat string

const (
	FormatRSS  FeedFormat = "rss"
	FormatAtom FeedFormat = "atom"
)

// Feed represents an RSS or Atom feed
type Feed struct {
	// ID is the unique identifier for the feed
	ID string

	// Title is the human-readable title of the feed
	Title string

	// Description provides a brief description of the feed's content
	Description string

	// URL is the feed's source URL (the actual RSS/Atom URL)
	URL string

	// Link is the website URL associated with the feed
	Link string

	// Author is optional feed-level author information
	Author *Author

	// Updated is the feed's last update time, zero if unknown
	Updated time.Time

	// Entries contains the feed entries in document order
	Entries []Entry
}

// Author represents author information
type Author struct {
	Name  string
	Email string
}

// Validate checks if the feed has valid required fields
func (f *Feed) Validate() error {
	if f.Title == "" {
		return errors.New("feed title cannot be empty")
	}

	if f.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	if _, err := url.Parse(f.URL); err != nil {
		return errors.New("feed URL is not valid format")
	}

	return nil
}
