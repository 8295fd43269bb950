package seo

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"fabricpro.io/fabric-web/internal/landing"
)

// Fixed marketing copy used whenever the record leaves a field empty.
const (
	fallbackTitle       = "Premium B2B Fabric Supplier | FabricPro"
	fallbackDescription = "Leading B2B fabric supplier for global garment manufacturers and retailers."

	recordTitleDefault       = "Premium Fabric"
	recordDescriptionDefault = "High-quality fabric for garment manufacturing."

	defaultSiteName    = "FabricPro"
	defaultLocale      = "en_US"
	defaultTwitterSite = "@fabricpro"
	defaultCanonical   = "https://fabricpro.com"
	defaultThemeColor  = "#ffffff"
)

var defaultKeywords = []string{"fabric", "textile", "garment", "wholesale", "manufacturer"}

// validOGTypes is the fixed Open Graph type allow-list. Anything else coerces
// to "website" rather than propagating.
var validOGTypes = map[string]struct{}{
	"website": {}, "article": {}, "book": {}, "profile": {},
	"music.song": {}, "music.album": {}, "music.playlist": {}, "music.radio_station": {},
	"video.movie": {}, "video.episode": {}, "video.tv_show": {}, "video.other": {},
}

// validTwitterCards is the fixed Twitter card allow-list.
var validTwitterCards = map[string]struct{}{
	"summary": {}, "summary_large_image": {}, "player": {}, "app": {},
}

// OGTypeSafe coerces an Open Graph type to an allow-listed value,
// lower-casing valid input and replacing anything else with "website".
func OGTypeSafe(v string) string {
	t := strings.ToLower(strings.TrimSpace(v))
	if _, ok := validOGTypes[t]; ok {
		return t
	}
	return "website"
}

// TwitterCardSafe coerces a Twitter card type to an allow-listed value,
// replacing anything else with "summary_large_image".
func TwitterCardSafe(v string) string {
	t := strings.ToLower(strings.TrimSpace(v))
	if _, ok := validTwitterCards[t]; ok {
		return t
	}
	return "summary_large_image"
}

// OGImage is an Open Graph image entry.
type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OGVideo is an Open Graph video entry.
type OGVideo struct {
	URL       string
	SecureURL string
	Type      string
	Width     int
	Height    int
}

// OpenGraph carries the og:* metadata block.
type OpenGraph struct {
	Title       string
	Description string
	SiteName    string
	Locale      string
	Type        string
	URL         string
	Image       *OGImage
	Video       *OGVideo
}

// Twitter carries the twitter:* metadata block.
type Twitter struct {
	Card         string
	Site         string
	Title        string
	Description  string
	Image        string
	Player       string
	PlayerWidth  int
	PlayerHeight int
}

// Verification holds search-engine ownership tokens.
type Verification struct {
	Google     string
	MSValidate string
}

// Entry is a single name/content pair in the "other" meta bag.
type Entry struct {
	Name    string
	Content string
}

// OtherMeta is an ordered bag of miscellaneous named meta entries.
type OtherMeta []Entry

// Get returns the content for name, or "".
func (m OtherMeta) Get(name string) string {
	for _, e := range m {
		if e.Name == name {
			return e.Content
		}
	}
	return ""
}

// Meta is the complete view model for a page's head metadata.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	Author      string
	Publisher   string

	Hreflang string
	XDefault string

	ThemeColor          string
	AppleWebAppCapable  bool
	AppleStatusBarStyle string
	TelephoneDetection  bool

	Verification Verification
	OG           OpenGraph
	Twitter      Twitter
	Other        OtherMeta
}

// FallbackMeta is the static metadata served when no SEO record is selected.
func FallbackMeta() Meta {
	return Meta{
		Title:       fallbackTitle,
		Description: fallbackDescription,
		Keywords:    append([]string(nil), defaultKeywords...),
		Canonical:   defaultCanonical,
		ThemeColor:  defaultThemeColor,
		OG: OpenGraph{
			Title:       fallbackTitle,
			Description: fallbackDescription,
			SiteName:    defaultSiteName,
			Locale:      defaultLocale,
			Type:        "website",
			URL:         defaultCanonical,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        defaultTwitterSite,
			Title:       fallbackTitle,
			Description: fallbackDescription,
		},
		XDefault: defaultCanonical,
	}
}

// NotFoundMeta is the metadata for slug pages with no matching record.
func NotFoundMeta() Meta {
	m := FallbackMeta()
	m.Title = "Page Not Found"
	m.Description = "The requested page could not be found."
	m.OG.Title = m.Title
	m.OG.Description = m.Description
	m.Twitter.Title = m.Title
	m.Twitter.Description = m.Description
	return m
}

// BuildMeta maps a selected SEO record into head metadata. A nil record yields
// the static fallback; the function never fails.
func BuildMeta(rec *landing.SeoRecord) Meta {
	if rec == nil {
		return FallbackMeta()
	}

	title := nonEmpty(rec.Title, recordTitleDefault)
	description := nonEmpty(rec.Description, recordDescriptionDefault)
	canonical := canonicalURL(rec.CanonicalURL)

	m := Meta{
		Title:       title,
		Description: description,
		Keywords:    splitKeywords(rec.Keywords),
		Canonical:   canonical,
		Robots:      strings.TrimSpace(rec.Robots),
		Author:      strings.TrimSpace(rec.AuthorName),
		Publisher:   strings.TrimSpace(rec.OGSiteName),

		Hreflang: strings.TrimSpace(rec.Hreflang),
		XDefault: nonEmpty(rec.XDefault, defaultCanonical),

		ThemeColor:          nonEmpty(rec.ThemeColor, defaultThemeColor),
		AppleWebAppCapable:  strings.EqualFold(strings.TrimSpace(rec.MobileWebAppCapable), "yes"),
		AppleStatusBarStyle: nonEmpty(rec.AppleStatusBarStyle, "default"),
		TelephoneDetection:  strings.TrimSpace(rec.FormatDetection) != "telephone=no",

		Verification: Verification{
			Google:     strings.TrimSpace(rec.GoogleSiteVerification),
			MSValidate: strings.TrimSpace(rec.MSValidate),
		},
	}

	m.OG = OpenGraph{
		Title:       nonEmpty(rec.OGTitle, title),
		Description: nonEmpty(rec.OGDescription, description),
		SiteName:    nonEmpty(rec.OGSiteName, defaultSiteName),
		Locale:      nonEmpty(rec.OGLocale, defaultLocale),
		Type:        OGTypeSafe(rec.OGType),
		URL:         nonEmpty(rec.OGURL, canonical),
	}
	if img := strings.TrimSpace(rec.OGImage); img != "" {
		m.OG.Image = &OGImage{URL: img, Width: 1200, Height: 630, Alt: m.OG.Title}
	}
	if v := strings.TrimSpace(rec.OGVideoURL); v != "" {
		m.OG.Video = &OGVideo{
			URL:       v,
			SecureURL: strings.TrimSpace(rec.OGVideoSecureURL),
			Type:      strings.TrimSpace(rec.OGVideoType),
			Width:     rec.OGVideoWidth,
			Height:    rec.OGVideoHeight,
		}
	}

	m.Twitter = Twitter{
		Card:         TwitterCardSafe(rec.TwitterCard),
		Site:         nonEmpty(rec.TwitterSite, defaultTwitterSite),
		Title:        nonEmpty(rec.TwitterTitle, title),
		Description:  nonEmpty(rec.TwitterDescription, description),
		Image:        strings.TrimSpace(rec.TwitterImage),
		Player:       strings.TrimSpace(rec.TwitterPlayer),
		PlayerWidth:  rec.TwitterPlayerWidth,
		PlayerHeight: rec.TwitterPlayerHeight,
	}

	m.Other = buildOtherMeta(rec)
	return m
}

// canonicalURL validates that the record's canonical parses as an absolute
// URL; malformed values fall back to the default rather than failing the render.
func canonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultCanonical
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return defaultCanonical
	}
	return u.String()
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultKeywords...)
	}
	return out
}

// buildOtherMeta flattens the record's miscellaneous named fields into string
// entries, omitting anything empty after coercion.
func buildOtherMeta(rec *landing.SeoRecord) OtherMeta {
	var out OtherMeta
	set := func(name, value string) {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, Entry{Name: name, Content: value})
		}
	}
	setInt := func(name string, value int) {
		if value != 0 {
			out = append(out, Entry{Name: name, Content: strconv.Itoa(value)})
		}
	}
	setFloat := func(name string, value float64) {
		if value != 0 {
			out = append(out, Entry{Name: name, Content: trimFloat(value)})
		}
	}
	setBool := func(name string, value bool) {
		if value {
			out = append(out, Entry{Name: name, Content: "true"})
		}
	}

	// Core page meta
	set("charset", rec.Charset)
	set("viewport", rec.Viewport)
	set("x-ua-compatible", rec.XUACompatible)
	set("content-language", rec.ContentLanguage)
	set("canonical", rec.CanonicalURL)
	set("keywords", rec.Keywords)
	set("robots", rec.Robots)

	// IDs and flags
	set("seo:product", rec.Product.ID())
	set("seo:location", rec.Location.ID())
	set("seo:locationCode", rec.LocationCode)
	set("seo:productIdentifier", rec.ProductIdentifier)
	set("seo:sku", rec.SKU)
	set("seo:slug", rec.Slug)
	set("seo:excerpt", rec.Excerpt)
	set("seo:productdescription", rec.ProductDescription)
	setBool("seo:popularproduct", rec.PopularProduct)
	setBool("seo:topratedproduct", rec.TopRatedProduct)
	setBool("seo:landingPageProduct", rec.LandingPageProduct)
	setBool("seo:shopyProduct", rec.ShopyProduct)
	setFloat("seo:rating_value", rec.RatingValue)
	setInt("seo:rating_count", rec.RatingCount)
	setFloat("seo:salesPrice", rec.SalesPrice)
	setFloat("seo:purchasePrice", rec.PurchasePrice)

	// Verification / platform
	set("google-site-verification", rec.GoogleSiteVerification)
	set("msvalidate.01", rec.MSValidate)

	// PWA / device
	set("theme-color", rec.ThemeColor)
	set("apple-mobile-web-app-capable", rec.MobileWebAppCapable)
	set("apple-mobile-web-app-status-bar-style", rec.AppleStatusBarStyle)
	set("format-detection", rec.FormatDetection)

	// Open Graph mirror
	set("og:url", rec.OGURL)
	set("og:image", rec.OGImage)
	set("og:site_name", rec.OGSiteName)
	set("og:locale", rec.OGLocale)
	set("og:title", rec.OGTitle)
	set("og:description", rec.OGDescription)
	set("og:video", rec.OGVideoURL)
	set("og:video:secure_url", rec.OGVideoSecureURL)
	set("og:video:type", rec.OGVideoType)
	setInt("og:video:width", rec.OGVideoWidth)
	setInt("og:video:height", rec.OGVideoHeight)

	// Twitter mirror
	set("twitter:card", rec.TwitterCard)
	set("twitter:site", rec.TwitterSite)
	set("twitter:title", rec.TwitterTitle)
	set("twitter:description", rec.TwitterDescription)
	set("twitter:image", rec.TwitterImage)
	set("twitter:player", rec.TwitterPlayer)
	setInt("twitter:player:width", rec.TwitterPlayerWidth)
	setInt("twitter:player:height", rec.TwitterPlayerHeight)

	// Hreflang helpers
	set("hreflang", rec.Hreflang)
	set("x-default", rec.XDefault)
	set("author_name", rec.AuthorName)

	return out
}

var htmlPolicy = bluemonday.UGCPolicy()

// SafeDescriptionHTML sanitizes the record's rich description for direct
// template injection.
func SafeDescriptionHTML(rec *landing.SeoRecord) template.HTML {
	if rec == nil || strings.TrimSpace(rec.DescriptionHTML) == "" {
		return ""
	}
	return template.HTML(htmlPolicy.Sanitize(rec.DescriptionHTML))
}

func nonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
