package sitemap

import (
	"strings"
	"time"

	"github.com/romangod6/sitemap-gen/internal/models"
)

const (
	DefaultChangeFreq = "daily"
	DefaultPriority   = "0.7"

	// LastModLayout matches an ISO-8601 UTC timestamp with milliseconds.
	LastModLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Builder turns page slugs into sitemap entries for every locale.
// Locales[0] is the default locale.
type Builder struct {
	BaseURL    string
	Locales    []string
	ChangeFreq string
	Priority   string
	LastMod    time.Time
}

// alternate pairs the hreflang label with the path segment used in the href.
type alternate struct {
	lang    string
	segment string
}

func NewBuilder(baseURL string, locales []string, lastMod time.Time) *Builder {
	return &Builder{
		BaseURL:    baseURL,
		Locales:    locales,
		ChangeFreq: DefaultChangeFreq,
		Priority:   DefaultPriority,
		LastMod:    lastMod,
	}
}

// Href joins base, locale and slug with single slashes, skipping empty
// segments.
func Href(base, locale, slug string) string {
	parts := make([]string, 0, 3)
	if b := strings.TrimRight(base, "/"); b != "" {
		parts = append(parts, b)
	}
	for _, seg := range []string{locale, slug} {
		if s := strings.Trim(seg, "/"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

func (b *Builder) defaultLocale() string {
	if len(b.Locales) == 0 {
		return ""
	}
	return b.Locales[0]
}

// Entries returns the root entries (one per locale) followed by the entries
// of each slug, grouped by slug and then locale.
func (b *Builder) Entries(slugs []string) []models.URL {
	entries := make([]models.URL, 0, len(b.Locales)*(len(slugs)+1))

	rootAlternates := b.rootAlternates()
	for _, lang := range b.Locales {
		loc := Href(b.BaseURL, lang, "")
		if lang == b.defaultLocale() {
			loc = b.BaseURL
		}
		entries = append(entries, b.entry(loc, "", rootAlternates))
	}

	pageAlternates := make([]alternate, 0, len(b.Locales))
	for _, lang := range b.Locales {
		pageAlternates = append(pageAlternates, alternate{lang: lang, segment: lang})
	}
	for _, slug := range slugs {
		for _, lang := range b.Locales {
			entries = append(entries, b.entry(Href(b.BaseURL, lang, slug), slug, pageAlternates))
		}
	}

	return entries
}

// rootAlternates points the default locale at the unprefixed root and every
// other locale at its own prefix.
func (b *Builder) rootAlternates() []alternate {
	def := b.defaultLocale()
	alts := []alternate{{lang: def, segment: ""}}
	for _, lang := range b.Locales {
		if lang == def {
			continue
		}
		alts = append(alts, alternate{lang: lang, segment: lang})
	}
	return alts
}

func (b *Builder) entry(loc, slug string, alts []alternate) models.URL {
	links := make([]models.Link, 0, len(alts))
	for _, alt := range alts {
		href := Href(b.BaseURL, alt.segment, slug)
		if alt.segment == "" && slug == "" {
			// Same value as the default root loc.
			href = b.BaseURL
		}
		links = append(links, models.Link{
			Rel:      "alternate",
			Hreflang: alt.lang,
			Href:     href,
		})
	}

	return models.URL{
		Loc:        loc,
		ChangeFreq: b.ChangeFreq,
		Priority:   b.Priority,
		LastMod:    b.LastMod.UTC().Format(LastModLayout),
		Links:      links,
	}
}

// Document wraps entries in a urlset element carrying the sitemap and xhtml
// namespaces.
func Document(entries []models.URL) *Element {
	root := NewElement("urlset",
		Attr{Name: "xmlns", Value: models.SitemapNamespace},
		Attr{Name: "xmlns:xhtml", Value: models.XHTMLNamespace},
	)

	for _, u := range entries {
		node := NewElement("url")
		node.Append(
			TextElement("loc", u.Loc),
			TextElement("changefreq", u.ChangeFreq),
			TextElement("priority", u.Priority),
			TextElement("lastmod", u.LastMod),
		)
		for _, l := range u.Links {
			node.Append(NewElement("xhtml:link",
				Attr{Name: "rel", Value: l.Rel},
				Attr{Name: "hreflang", Value: l.Hreflang},
				Attr{Name: "href", Value: l.Href},
			))
		}
		root.Append(node)
	}

	return root
}
