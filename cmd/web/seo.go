package main

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"fabricpro.io/fabric-web/internal/seo"
)

func (a *app) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", a.cfg.AppURL)
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapHandler lists the home page plus every slug the SEO collection knows
// about. A failed SEO fetch degrades to a home-only sitemap.
func (a *app) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	records, err := a.landing.SeoRecords(r.Context())
	if err != nil {
		records = nil
	}

	today := time.Now().UTC().Format("2006-01-02")
	set := sitemapSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: a.cfg.AppURL + "/", LastMod: today, ChangeFreq: "daily", Priority: 1.0},
		},
	}
	seen := map[string]struct{}{}
	for _, rec := range records {
		slug := seo.TrimSlug(rec.Slug)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        a.cfg.AppURL + "/" + slug,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	_ = enc.Encode(set)
}
