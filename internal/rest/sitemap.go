package rest

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// brasilia is the fixed offset the publication dates are expressed in.
var brasilia = time.FixedZone("BRT", -3*60*60)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// publishedAt places a publication date at noon Brasília time.
func publishedAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, brasilia)
}

// Sitemap handles GET /sitemap.xml
func (h *NewsHandler) Sitemap(c echo.Context) error {
	base := strings.TrimSuffix(h.app.BaseURL, "/")
	now := time.Now().UTC().Format(time.RFC3339)

	set := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs: []sitemapURL{
			{Loc: base, LastMod: now, ChangeFreq: "daily", Priority: 1.0},
			{Loc: base + "/franqueado", LastMod: now, ChangeFreq: "weekly", Priority: 0.9},
		},
	}

	for _, e := range h.svc.SitemapEntries(c.Request().Context()) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + articlePathPrefix + e.Slug,
			LastMod:    publishedAt(e.PublishedOn).Format(time.RFC3339),
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}

	return c.XML(http.StatusOK, set)
}
