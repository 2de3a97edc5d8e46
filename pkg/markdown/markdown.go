// Package markdown renders post markdown to HTML and plain text.
//
// A Renderer is built once at startup and shared read-only by every request.
package markdown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/atareao/bloc/pkg/textutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
)

// HeadingIDPrefix prefix of generated heading anchors
const HeadingIDPrefix = "content-"

// Renderer immutable markdown configuration
type Renderer struct {
	md       goldmark.Markdown
	idPrefix string
}

// Option configures a Renderer
type Option func(*Renderer)

// WithHeadingIDPrefix overrides the heading anchor prefix
func WithHeadingIDPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.idPrefix = prefix
	}
}

// New builds the renderer with GFM tables, strikethrough, autolinks, task
// lists, footnotes, definition lists and typographic punctuation.
// Raw HTML in the source is not rendered.
func New(opts ...Option) *Renderer {
	r := &Renderer{idPrefix: HeadingIDPrefix}
	for _, opt := range opts {
		opt(r)
	}
	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return r
}

// ToHTML renders markdown to HTML
func (r *Renderer) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newHeadingIDs(r.idPrefix)))
	if err := r.md.Convert([]byte(source), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToText renders markdown and strips it down to whitespace-collapsed plain text
func (r *Renderer) ToText(source string) (string, error) {
	rendered, err := r.ToHTML(source)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(rendered))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " "), nil
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, ok := blockTags[string(name)]; ok {
				sb.WriteByte(' ')
			}
		}
	}
}

var blockTags = map[string]struct{}{
	"p": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "blockquote": {}, "pre": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"table": {}, "tr": {}, "td": {}, "th": {}, "dt": {}, "dd": {}, "div": {}, "hr": {},
}

// headingIDs per-document anchor generator: prefix + slug, de-duplicated
type headingIDs struct {
	prefix string
	used   map[string]int
}

func newHeadingIDs(prefix string) *headingIDs {
	return &headingIDs{prefix: prefix, used: make(map[string]int)}
}

func (h *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := textutil.Slugify(string(value))
	if base == "" {
		base = "heading"
	}
	id := h.prefix + base
	if n, ok := h.used[id]; ok {
		h.used[id] = n + 1
		id = id + "-" + strconv.Itoa(n)
	} else {
		h.used[id] = 1
	}
	return []byte(id)
}

func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = 1
}
