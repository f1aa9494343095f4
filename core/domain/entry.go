// ABOUTME: Entry domain model represents an individual article reference within a feed
// ABOUTME: Content is the only field the feed processor replaces

package domain

import "time"

// Content is an entry body together with its media type ("html" or "text")
type Content struct {
	Body string
	Type string
}

// Entry represents an individual item/entry in a feed
type Entry struct {
	ID          string
	Title       string
	Description string

	// Links are the entry's link addresses in document order; the first is
	// the canonical article URL.
	Links []string

	Author    *Author
	Published *time.Time
	Updated   *time.Time

	// Content is nil when the source feed carried no body
	Content *Content
}

// PrimaryLink returns the first link address, if any
func (e *Entry) PrimaryLink() (string, bool) {
	for _, link := range e.Links {
		if link != "" {
			return link, true
		}
	}
	return "", false
}
