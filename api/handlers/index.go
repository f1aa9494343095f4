// ABOUTME: Landing page handler
// ABOUTME: Serves a minimal HTML form that submits a feed URL to /feed

package handlers

import (
	"net/http"
)

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Full Feed</title>
</head>
<body>
<h1>Full Feed</h1>
<p>Enter a feed URL to get it back with full article content.</p>
<form action="/feed" method="get">
<input type="url" name="url" placeholder="https://example.com/feed.xml" size="60" required>
<select name="format">
<option value="rss">RSS</option>
<option value="atom">Atom</option>
</select>
<button type="submit">Get full feed</button>
</form>
</body>
</html>
`

// Index serves the landing page
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage))
}
