package services

import (
	"bytes"
	stdhtml "html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ExcerptLength is the number of characters kept when an excerpt is derived
// from post content.
const ExcerptLength = 160

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentPolicy = bluemonday.UGCPolicy()
	textPolicy    = newTextPolicy()

	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// ContentFormat says how submitted post content is written
type ContentFormat string

const (
	ContentFormatHTML     ContentFormat = "html"
	ContentFormatMarkdown ContentFormat = "markdown"
)

func newTextPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}

// Slugify turns a title into its URL form: lowercase, only letters, digits
// and single hyphens, no leading or trailing hyphen.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// RenderContent converts submitted content to sanitized HTML
func RenderContent(content string, format ContentFormat) (string, error) {
	if format == ContentFormatMarkdown {
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
			return "", err
		}
		return string(contentPolicy.SanitizeBytes(buf.Bytes())), nil
	}
	return contentPolicy.Sanitize(content), nil
}

// DeriveExcerpt returns the first ExcerptLength characters of the plain text
// of content, with an ellipsis when it was cut.
func DeriveExcerpt(content string) string {
	text := strings.Join(strings.Fields(stdhtml.UnescapeString(textPolicy.Sanitize(content))), " ")
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:ExcerptLength])) + "…"
}
