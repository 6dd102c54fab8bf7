package site

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/axiom/internal/schema"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders a sitemaps.org document: the catalog root followed by one
// page per rule, in rule order. now stamps every entry.
func Sitemap(baseURL string, rules []schema.Rule, now time.Time) ([]byte, error) {
	lastMod := now.UTC().Format(time.RFC3339)
	set := urlSet{NS: sitemapNS}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:        strings.TrimRight(baseURL, "/"),
		LastMod:    lastMod,
		ChangeFreq: "weekly",
		Priority:   "1.0",
	})
	for _, r := range rules {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        RuleURL(baseURL, r.ID),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	return append(out, '\n'), nil
}
