package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_PrimaryLink(t *testing.T) {
	tests := []struct {
		name   string
		links  []string
		want   string
		wantOK bool
	}{
		{"no links", nil, "", false},
		{"single link", []string{"https://a.test/1"}, "https://a.test/1", true},
		{"first of many", []string{"https://a.test/1", "https://a.test/2"}, "https://a.test/1", true},
		{"skips empty", []string{"", "https://a.test/2"}, "https://a.test/2", true},
		{"only empty", []string{""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Links: tt.links}
			got, ok := e.PrimaryLink()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeed_Validate(t *testing.T) {
	assert.Error(t, (&Feed{URL: "https://a.test/feed"}).Validate())
	assert.Error(t, (&Feed{Title: "A"}).Validate())
	assert.NoError(t, (&Feed{Title: "A", URL: "https://a.test/feed"}).Validate())
}
