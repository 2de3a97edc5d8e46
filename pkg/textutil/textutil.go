// Package textutil derives post and tag fields from markdown text.
package textutil

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var (
	titleRegex   = regexp.MustCompile(`^#\s+(.*)$`)
	hashtagRegex = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_]+)`)
	imageRegex   = regexp.MustCompile(`!\[(.*?)\]\((.*?)(?: "(.*?)")?\)`)
	nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercase, URL-safe, hyphenated token. Idempotent.
func Slugify(s string) string {
	out := nonSlugRegex.ReplaceAllString(slug.Make(s), "-")
	return strings.Trim(out, "-")
}

// ExtractTitle returns the text of a leading "# Title" line, or "" when the
// first line is not a level-1 heading.
func ExtractTitle(content string) string {
	firstLine, _, _ := strings.Cut(content, "\n")
	m := titleRegex.FindStringSubmatch(strings.TrimRight(firstLine, "\r"))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ResolveTitle explicit title when non-blank, otherwise the content heading
func ResolveTitle(explicit *string, content string) string {
	if explicit != nil {
		if t := strings.TrimSpace(*explicit); t != "" {
			return t
		}
	}
	return ExtractTitle(content)
}

// ExtractHashtags distinct #word tokens in order of first appearance.
// Tokens are returned verbatim; "#Go" and "#go" are two tokens.
func ExtractHashtags(content string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := m[1]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Image first markdown image of a document
type Image struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
	Alt   *string `json:"alt,omitempty"`
}

// FirstImage returns the first ![alt](url "title") in content, or nil
func FirstImage(content string) *Image {
	m := imageRegex.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	img := &Image{URL: m[2]}
	if m[1] != "" {
		alt := m[1]
		img.Alt = &alt
	}
	if m[3] != "" {
		title := m[3]
		img.Title = &title
	}
	return img
}
