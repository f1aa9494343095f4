// ABOUTME: Content transform that turns a raw article page into Markdown
// ABOUTME: Strips page chrome with goquery, extracts the article with go-readability

package reader

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// noiseSelectors are removed from the page before article extraction
const noiseSelectors = "script, style, noscript, nav, aside, iframe, form, template, svg, footer, header nav"

var (
	multiNewlines   = regexp.MustCompile(`\n{3,}`)
	trailingSpace   = regexp.MustCompile(`[ \t]+\n`)
	headerBefore    = regexp.MustCompile(`\n(#{1,6} )`)
	headerAfter     = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n])`)
	errEmptyArticle = errors.New("no readable content found")
)

// Transformer implements interfaces.ContentTransformer
type Transformer struct {
	converter *md.Converter
}

// NewTransformer creates a transformer with a CommonMark converter
func NewTransformer() *Transformer {
	return &Transformer{
		converter: md.NewConverter("", true, nil),
	}
}

// Transform extracts the readable article from raw and renders it as
// Markdown: a title heading, an optional metadata line, then the body.
func (t *Transformer) Transform(raw []byte, pageURL string) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", errEmptyArticle
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page URL: %w", err)
	}

	cleaned, err := stripNoise(raw)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), parsedURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", errEmptyArticle
	}

	body, err := t.converter.ConvertString(article.Content)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}

	return buildMarkdownWithMetadata(article.Title, article.Byline, article.SiteName, body), nil
}

// stripNoise removes navigation, scripts, styles and link wrappers around media
func stripNoise(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find(noiseSelectors).Remove()

	// Anchors that only wrap an image or figure are replaced by their content
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		if strings.TrimSpace(a.Text()) != "" {
			return
		}
		if a.Find("img, picture, figure").Length() == 0 {
			return
		}
		a.ReplaceWithSelection(a.Children())
	})

	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render cleaned html: %w", err)
	}
	return html, nil
}

// buildMarkdownWithMetadata creates a well-formatted markdown document with metadata
func buildMarkdownWithMetadata(title, author, siteName, content string) string {
	var markdown strings.Builder

	if title != "" {
		markdown.WriteString("# ")
		markdown.WriteString(title)
		markdown.WriteString("\n\n")
	}

	var metadataItems []string

	if author != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Author:** %s", author))
	}

	if siteName != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Source:** %s", siteName))
	}

	if len(metadataItems) > 0 {
		markdown.WriteString(strings.Join(metadataItems, " | "))
		markdown.WriteString("\n\n---\n\n")
	}

	markdown.WriteString(cleanMarkdown(content))

	return markdown.String()
}

// cleanMarkdown removes excessive newlines and cleans up markdown formatting
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = multiNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpace.ReplaceAllString(markdown, "\n")

	// Blank line around headers
	markdown = headerBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headerAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = multiNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
