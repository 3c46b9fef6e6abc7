// internal/models/sitemap.go
package models

import "encoding/xml"

const (
	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNamespace   = "http://www.w3.org/1999/xhtml"
)

// Sitemap represents the structure of an XML sitemap.
type Sitemap struct {
	XMLName xml.Name `xml:"urlset" json:"-"`
	URLs    []URL    `xml:"url" json:"urls"`
}

// URL represents a single URL entry in the sitemap.
type URL struct {
	Loc        string `xml:"loc" json:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty" json:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty" json:"priority,omitempty"`
	LastMod    string `xml:"lastmod,omitempty" json:"lastmod,omitempty"`
	Links      []Link `xml:"http://www.w3.org/1999/xhtml link" json:"alternates,omitempty"`
}

// Link is an xhtml:link alternate-language annotation.
type Link struct {
	Rel      string `xml:"rel,attr" json:"rel"`
	Hreflang string `xml:"hreflang,attr" json:"hreflang"`
	Href     string `xml:"href,attr" json:"href"`
}
