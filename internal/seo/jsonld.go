package seo

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"fabricpro.io/fabric-web/internal/landing"
)

// Organizational constants baked into synthesized structured data.
const (
	orgName        = "Amrita Fashions"
	orgURL         = "https://amritafashions.com"
	orgLogoURL     = "https://amritafashions.com/wp-content/uploads/amrita-fashions-small-logo-india.webp"
	orgTelephone   = "+919925155141"
	orgEmail       = "rajesh.goyal@amritafashions.com"
	orgStreet      = "404, Safal Prelude, Corporate Rd, Prahlad Nagar"
	orgLocality    = "Ahmedabad"
	orgRegion      = "Gujarat"
	orgPostalCode  = "380015"
	orgCountry     = "IN"
	orgLatitude    = 23.0225
	orgLongitude   = 72.5714
	orgDescription = "Leading B2B Fabric Supplier Worldwide - ISO 9001 Certified • 500+ Global Partners • Ships to 50+ Countries"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseRaw parses a pre-authored JSON-LD override string. Anything that is not
// a JSON object yields nil, which callers treat as "absent".
func ParseRaw(input string) map[string]any {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return nil
	}
	if doc == nil {
		return nil
	}
	return doc
}

// VideoLD returns the record's Video document. There is no part synthesis for
// videos; only the raw override is honored.
func VideoLD(rec *landing.SeoRecord) map[string]any {
	if rec == nil {
		return nil
	}
	return ParseRaw(rec.VideoJSONLD)
}

// LogoLD prefers the raw override, then synthesizes an ImageObject from the
// discrete logo fields when any are present.
func LogoLD(rec *landing.SeoRecord) map[string]any {
	if rec == nil {
		return nil
	}
	if doc := ParseRaw(rec.LogoJSONLD); doc != nil {
		return doc
	}
	if rec.LogoContext == "" && rec.LogoType == "" && rec.LogoURL == "" {
		return nil
	}
	doc := map[string]any{
		"@context": nonEmpty(rec.LogoContext, schemaContext),
		"@type":    nonEmpty(rec.LogoType, "ImageObject"),
	}
	if u := strings.TrimSpace(rec.LogoURL); u != "" {
		doc["url"] = u
	}
	if w := strings.TrimSpace(rec.LogoWidth); w != "" {
		doc["width"] = w
	}
	if h := strings.TrimSpace(rec.LogoHeight); h != "" {
		doc["height"] = h
	}
	return doc
}

// BreadcrumbLD prefers the raw override, then synthesizes a two-level
// BreadcrumbList (Home, then the current page) when breadcrumb parts exist.
func BreadcrumbLD(rec *landing.SeoRecord) map[string]any {
	if rec == nil {
		return nil
	}
	if doc := ParseRaw(rec.BreadcrumbJSONLD); doc != nil {
		return doc
	}
	if rec.BreadcrumbContext == "" && rec.BreadcrumbType == "" && rec.BreadcrumbName == "" {
		return nil
	}
	pageName := nonEmpty(rec.BreadcrumbName, "Products")
	pageURL := nonEmpty(rec.CanonicalURL, orgURL)
	return map[string]any{
		"@context": schemaContext,
		"@type":    "BreadcrumbList",
		"name":     nonEmpty(rec.BreadcrumbName, "Breadcrumb"),
		"itemListElement": []map[string]any{
			{"@type": "ListItem", "position": 1, "name": "Home", "item": orgURL},
			{"@type": "ListItem", "position": 2, "name": pageName, "item": pageURL},
		},
	}
}

// LocalBusinessLD prefers the raw override, then synthesizes a LocalBusiness
// document with default-filled address, geo, opening hours, and payment data.
func LocalBusinessLD(rec *landing.SeoRecord) map[string]any {
	if rec == nil {
		return nil
	}
	if doc := ParseRaw(rec.LocalBusinessJSONLD); doc != nil {
		return doc
	}
	if rec.LocalBusinessContext == "" && rec.LocalBusinessName == "" {
		return nil
	}

	doc := map[string]any{
		"@context":  schemaContext,
		"@type":     "LocalBusiness",
		"name":      nonEmpty(rec.LocalBusinessName, orgName),
		"url":       nonEmpty(rec.CanonicalURL, orgURL),
		"telephone": nonEmpty(rec.LocalBusinessTelephone, orgTelephone),
		"email":     orgEmail,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   nonEmpty(rec.LocalBusinessStreetAddress, orgStreet),
			"addressLocality": nonEmpty(rec.LocalBusinessLocality, orgLocality),
			"addressRegion":   nonEmpty(rec.LocalBusinessRegion, orgRegion),
			"postalCode":      nonEmpty(rec.LocalBusinessPostalCode, orgPostalCode),
			"addressCountry":  nonEmpty(rec.LocalBusinessCountry, orgCountry),
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  floatOr(rec.LocalBusinessLatitude, orgLatitude),
			"longitude": floatOr(rec.LocalBusinessLongitude, orgLongitude),
		},
		"image":       imageList(rec),
		"logo":        orgLogoURL,
		"description": nonEmpty(rec.Description, orgDescription),
		"areaServed":  nonEmpty(rec.LocalBusinessAreaServed, "Worldwide"),
		"openingHoursSpecification": []map[string]any{
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				"opens":     "09:30",
				"closes":    "19:00",
			},
		},
		"priceRange":         "$$",
		"paymentAccepted":    []string{"Cash", "Credit Card", "Bank Transfer"},
		"currenciesAccepted": []string{"INR", "USD", "EUR"},
		"hasOfferCatalog": map[string]any{
			"@type": "OfferCatalog",
			"name":  "Fabric Catalog",
			"itemListElement": []map[string]any{
				{
					"@type":       "Offer",
					"itemOffered": map[string]any{"@type": "Product", "name": "Premium Fabrics"},
				},
			},
		},
	}
	if rec.RatingValue != 0 && rec.RatingCount != 0 {
		doc["review"] = map[string]any{
			"@type": "Review",
			"reviewRating": map[string]any{
				"@type":       "Rating",
				"ratingValue": rec.RatingValue,
				"bestRating":  5,
				"worstRating": 1,
			},
			"author":     map[string]any{"@type": "Person", "name": "Customer"},
			"reviewBody": "Excellent quality fabrics and professional service",
		}
	}
	return doc
}

// ProductLD is always emitted. The name prefers the resolved catalog product
// name, then the record title, then a fixed default. Offers appear only with a
// sales price; aggregateRating only with both rating fields.
func ProductLD(rec *landing.SeoRecord, productName string) map[string]any {
	if rec == nil {
		rec = &landing.SeoRecord{}
	}
	doc := map[string]any{
		"@context":    schemaContext,
		"@type":       "Product",
		"name":        nonEmpty(productName, rec.Title, "Premium Fabric"),
		"description": nonEmpty(rec.Description, recordDescriptionDefault),
		"brand":       map[string]any{"@type": "Brand", "name": orgName},
		"image":       imageList(rec),
		"url":         nonEmpty(rec.CanonicalURL, orgURL),
		"category":    "Textile & Fabric",
		"manufacturer": map[string]any{
			"@type": "Organization",
			"name":  orgName,
			"url":   orgURL,
		},
	}
	if sku := strings.TrimSpace(rec.SKU); sku != "" {
		doc["sku"] = sku
	}
	if rec.SalesPrice != 0 {
		doc["offers"] = map[string]any{
			"@type":           "Offer",
			"price":           rec.SalesPrice,
			"priceCurrency":   "INR",
			"availability":    "https://schema.org/InStock",
			"seller":          map[string]any{"@type": "Organization", "name": orgName},
			"priceValidUntil": time.Now().AddDate(0, 0, 365).Format("2006-01-02"),
		}
	}
	if rec.RatingValue != 0 && rec.RatingCount != 0 {
		doc["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": rec.RatingValue,
			"reviewCount": rec.RatingCount,
			"bestRating":  5,
			"worstRating": 1,
		}
	}
	return doc
}

// OrganizationLD is always emitted and is fixed content except for the image
// list and description, which come from the record when present.
func OrganizationLD(rec *landing.SeoRecord) map[string]any {
	if rec == nil {
		rec = &landing.SeoRecord{}
	}
	return map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     orgName,
		"url":      orgURL,
		"logo": map[string]any{
			"@type":  "ImageObject",
			"url":    orgLogoURL,
			"width":  131,
			"height": 61,
		},
		"image":       imageList(rec),
		"description": nonEmpty(rec.Description, orgDescription),
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   orgStreet,
			"addressLocality": orgLocality,
			"addressRegion":   orgRegion,
			"postalCode":      orgPostalCode,
			"addressCountry":  orgCountry,
		},
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"telephone":         orgTelephone,
			"contactType":       "customer service",
			"email":             orgEmail,
			"availableLanguage": []string{"English", "Hindi", "Gujarati"},
		},
		"sameAs":            []string{orgURL},
		"foundingDate":      "2018",
		"numberOfEmployees": "50-100",
		"award":             []string{"ISO 9001 Certified", "Leading Fabric Manufacturer"},
	}
}

// Documents builds the up-to-six JSON-LD blocks for a page in render order,
// trying each builder in sequence and keeping the non-nil results.
func Documents(rec *landing.SeoRecord, productName string) []string {
	builders := []func() map[string]any{
		func() map[string]any { return VideoLD(rec) },
		func() map[string]any { return LogoLD(rec) },
		func() map[string]any { return BreadcrumbLD(rec) },
		func() map[string]any { return LocalBusinessLD(rec) },
		func() map[string]any { return ProductLD(rec, productName) },
		func() map[string]any { return OrganizationLD(rec) },
	}
	out := make([]string, 0, len(builders))
	for _, build := range builders {
		doc := build()
		if doc == nil {
			continue
		}
		if s := JSON(doc); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// imageList prefers the record's OG and Twitter images, falling back to the
// fixed logo so the list is never empty.
func imageList(rec *landing.SeoRecord) []string {
	var images []string
	for _, img := range []string{rec.OGImage, rec.TwitterImage} {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		images = append(images, orgLogoURL)
	}
	return images
}

func floatOr(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}
