package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_Basics(t *testing.T) {
	r := New()

	out, err := r.ToHTML("# Hello World\n\nSome *text* and ~~gone~~.")
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="content-hello-world">Hello World</h1>`)
	assert.Contains(t, out, "<em>text</em>")
	assert.Contains(t, out, "<del>gone</del>")
}

func TestToHTML_Tables(t *testing.T) {
	r := New()

	out, err := r.ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestToHTML_DuplicateHeadings(t *testing.T) {
	r := New()

	out, err := r.ToHTML("## Intro\n\n## Intro\n")
	require.NoError(t, err)

	assert.Contains(t, out, `id="content-intro"`)
	assert.Contains(t, out, `id="content-intro-1"`)
}

func TestToHTML_RawHTMLNotRendered(t *testing.T) {
	r := New()

	out, err := r.ToHTML("<script>alert(1)</script>\n\ntext")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
}

func TestToHTML_Deterministic(t *testing.T) {
	r := New(WithHeadingIDPrefix("h-"))
	src := "# A\n\ntext[^1]\n\n[^1]: note"

	first, err := r.ToHTML(src)
	require.NoError(t, err)
	second, err := r.ToHTML(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `id="h-a"`)
}

func TestToText(t *testing.T) {
	r := New()

	out, err := r.ToText("**Bold** intro with a [link](http://example.com).\n\n- one\n- two")
	require.NoError(t, err)

	assert.Equal(t, "Bold intro with a link. one two", out)
}
