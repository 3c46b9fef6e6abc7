package sitemap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Layout(t *testing.T) {
	b := NewBuilder("https://ex.com", []string{"en"}, runTime)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Document(b.Entries(nil))))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">
  <url>
    <loc>https://ex.com</loc>
    <changefreq>daily</changefreq>
    <priority>0.7</priority>
    <lastmod>2024-03-09T14:30:05.123Z</lastmod>
    <xhtml:link rel="alternate" hreflang="en" href="https://ex.com"/>
  </url>
</urlset>
`
	assert.Equal(t, want, buf.String())
}

func TestEncode_EscapesText(t *testing.T) {
	root := NewElement("urlset")
	root.Append(TextElement("loc", "https://ex.com/?a=1&b=<2>"))
	root.Append(NewElement("xhtml:link", Attr{Name: "href", Value: `"q"&`}))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, root))

	out := buf.String()
	assert.Contains(t, out, "<loc>https://ex.com/?a=1&amp;b=&lt;2&gt;</loc>")
	assert.Contains(t, out, `href="&#34;q&#34;&amp;"`)
}

func TestRoundTrip(t *testing.T) {
	b := NewBuilder("https://ex.com", []string{"en", "fr", "de"}, runTime)
	entries := b.Entries([]string{"about", "pricing"})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Document(entries)))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, parsed.URLs, len(entries))

	for i, got := range parsed.URLs {
		assert.Equal(t, entries[i].Loc, got.Loc)
		assert.Equal(t, entries[i].LastMod, got.LastMod)
		assert.Equal(t, entries[i].Links, got.Links)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale", 1000)), 0o644))

	b := NewBuilder("https://ex.com", []string{"en"}, runTime)
	require.NoError(t, WriteFile(path, Document(b.Entries(nil))))

	parsed, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, parsed.URLs, 1)
	assert.Equal(t, "https://ex.com", parsed.URLs[0].Loc)
}

func TestWriteFile_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")
	err := WriteFile(path, NewElement("urlset"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_SelfClosesEmptyElements(t *testing.T) {
	root := NewElement("urlset")
	url := NewElement("url")
	url.Append(NewElement("xhtml:link", Attr{Name: "rel", Value: "alternate"}))
	root.Append(url, NewElement("url"))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, root))

	assert.Contains(t, buf.String(), "    <xhtml:link rel=\"alternate\"/>\n")
	assert.Contains(t, buf.String(), "  <url/>\n")
	assert.NotContains(t, buf.String(), "</xhtml:link>")
}

var errDiskFull = errors.New("disk full")

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errDiskFull
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestEncode_WriterErrors(t *testing.T) {
	b := NewBuilder("https://ex.com", []string{"en", "fr"}, runTime)
	doc := Document(b.Entries([]string{"about"}))

	for _, limit := range []int{0, len(xml.Header) + 10, 400} {
		w := &failingWriter{limit: limit}
		err := Encode(w, doc)
		assert.ErrorIs(t, err, errDiskFull, "limit %d", limit)
	}
}
