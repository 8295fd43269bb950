package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabricpro.io/fabric-web/internal/landing"
)

func TestParseRaw(t *testing.T) {
	assert.Nil(t, ParseRaw(""))
	assert.Nil(t, ParseRaw("not json"))
	assert.Nil(t, ParseRaw(`"just a string"`))
	assert.Nil(t, ParseRaw(`[1,2,3]`))
	assert.Nil(t, ParseRaw("null"))

	doc := ParseRaw(`{"@type":"VideoObject","name":"Loom"}`)
	require.NotNil(t, doc)
	assert.Equal(t, "VideoObject", doc["@type"])
}

func TestVideoLDRawOnly(t *testing.T) {
	rec := &landing.SeoRecord{VideoJSONLD: `{"@type":"VideoObject"}`}
	require.NotNil(t, VideoLD(rec))

	// No part synthesis exists for video blocks.
	assert.Nil(t, VideoLD(&landing.SeoRecord{}))
	assert.Nil(t, VideoLD(nil))
}

func TestLogoLDPrecedence(t *testing.T) {
	rec := &landing.SeoRecord{
		LogoJSONLD: `{"@type":"ImageObject","url":"https://raw.example/logo.png"}`,
		LogoURL:    "https://parts.example/logo.png",
	}
	doc := LogoLD(rec)
	require.NotNil(t, doc)
	assert.Equal(t, "https://raw.example/logo.png", doc["url"])

	rec = &landing.SeoRecord{LogoURL: "https://parts.example/logo.png", LogoWidth: "131"}
	doc = LogoLD(rec)
	require.NotNil(t, doc)
	assert.Equal(t, "ImageObject", doc["@type"])
	assert.Equal(t, "https://parts.example/logo.png", doc["url"])
	assert.Equal(t, "131", doc["width"])
	_, ok := doc["height"]
	assert.False(t, ok, "empty height must be omitted")

	assert.Nil(t, LogoLD(&landing.SeoRecord{}))
}

func TestBreadcrumbLDSynthesis(t *testing.T) {
	rec := &landing.SeoRecord{
		BreadcrumbName: "Premium Cotton",
		CanonicalURL:   "https://amritafashions.com/premium-cotton",
	}
	doc := BreadcrumbLD(rec)
	require.NotNil(t, doc)
	assert.Equal(t, "BreadcrumbList", doc["@type"])
	items, ok := doc["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "Home", items[0]["name"])
	assert.Equal(t, "Premium Cotton", items[1]["name"])
	assert.Equal(t, rec.CanonicalURL, items[1]["item"])

	assert.Nil(t, BreadcrumbLD(&landing.SeoRecord{}))
}

func TestLocalBusinessLDRawRoundTrip(t *testing.T) {
	raw := `{"@context":"https://schema.org","@type":"LocalBusiness","name":"Custom Mill","telephone":"+10000000000"}`
	rec := &landing.SeoRecord{LocalBusinessJSONLD: raw}

	doc := LocalBusinessLD(rec)
	require.NotNil(t, doc)

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	assert.Equal(t, want, doc, "raw override must pass through untouched")
}

func TestLocalBusinessLDSynthesis(t *testing.T) {
	rec := &landing.SeoRecord{
		LocalBusinessName:     "Amrita Fashions Surat",
		LocalBusinessLatitude: "21.1702",
		RatingValue:           4.8,
		RatingCount:           127,
	}
	doc := LocalBusinessLD(rec)
	require.NotNil(t, doc)
	assert.Equal(t, "Amrita Fashions Surat", doc["name"])

	geo := doc["geo"].(map[string]any)
	assert.Equal(t, 21.1702, geo["latitude"])
	assert.Equal(t, orgLongitude, geo["longitude"], "missing longitude falls back")

	addr := doc["address"].(map[string]any)
	assert.Equal(t, orgLocality, addr["addressLocality"])

	require.NotNil(t, doc["review"])

	// Without both rating fields the review block is absent.
	doc = LocalBusinessLD(&landing.SeoRecord{LocalBusinessName: "x", RatingValue: 4.8})
	_, ok := doc["review"]
	assert.False(t, ok)
}

func TestProductLDOfferAndRatingGates(t *testing.T) {
	doc := ProductLD(&landing.SeoRecord{Title: "Linen Blend"}, "")
	assert.Equal(t, "Linen Blend", doc["name"])
	_, hasOffers := doc["offers"]
	assert.False(t, hasOffers, "no sales price, no offers")
	_, hasRating := doc["aggregateRating"]
	assert.False(t, hasRating, "no rating fields, no aggregateRating")
	_, hasSKU := doc["sku"]
	assert.False(t, hasSKU)

	rec := &landing.SeoRecord{
		SKU:         "PC-100",
		SalesPrice:  185.50,
		RatingValue: 4.8,
		RatingCount: 127,
	}
	doc = ProductLD(rec, "Premium Cotton")
	assert.Equal(t, "Premium Cotton", doc["name"], "catalog name wins over record title")
	assert.Equal(t, "PC-100", doc["sku"])

	offers := doc["offers"].(map[string]any)
	assert.Equal(t, 185.50, offers["price"])
	assert.Equal(t, "INR", offers["priceCurrency"])
	assert.NotEmpty(t, offers["priceValidUntil"])

	rating := doc["aggregateRating"].(map[string]any)
	assert.Equal(t, 4.8, rating["ratingValue"])
	assert.Equal(t, 127, rating["reviewCount"])

	// One rating field alone is not enough.
	doc = ProductLD(&landing.SeoRecord{RatingCount: 127}, "")
	_, hasRating = doc["aggregateRating"]
	assert.False(t, hasRating)
}

func TestProductLDNameFallbackChain(t *testing.T) {
	doc := ProductLD(&landing.SeoRecord{}, "")
	assert.Equal(t, "Premium Fabric", doc["name"])

	doc = ProductLD(nil, "")
	assert.Equal(t, "Premium Fabric", doc["name"])
}

func TestOrganizationLDFixedContent(t *testing.T) {
	doc := OrganizationLD(nil)
	assert.Equal(t, orgName, doc["name"])
	assert.Equal(t, "2018", doc["foundingDate"])

	logo := doc["logo"].(map[string]any)
	assert.Equal(t, 131, logo["width"])
	assert.Equal(t, 61, logo["height"])

	images := doc["image"].([]string)
	require.Len(t, images, 1)
	assert.Equal(t, orgLogoURL, images[0])
}

func TestDocumentsPremiumCotton(t *testing.T) {
	rec := &landing.SeoRecord{
		Title:             "Premium Cotton Fabric Wholesale",
		Description:       "Bulk premium cotton for garment manufacturers.",
		CanonicalURL:      "https://amritafashions.com/premium-cotton",
		OGImage:           "https://cdn.example.com/cotton.webp",
		SKU:               "PC-100",
		SalesPrice:        185.50,
		RatingValue:       4.8,
		RatingCount:       127,
		BreadcrumbName:    "Premium Cotton",
		LocalBusinessName: "Amrita Fashions",
	}
	docs := Documents(rec, "Premium Cotton Fabric")

	// No video or logo sources, so four of the six blocks emit.
	require.Len(t, docs, 4)

	types := make([]string, 0, len(docs))
	for _, raw := range docs {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		typ, _ := doc["@type"].(string)
		types = append(types, typ)
	}
	assert.Equal(t, []string{"BreadcrumbList", "LocalBusiness", "Product", "Organization"}, types)
}

func TestDocumentsNilRecord(t *testing.T) {
	docs := Documents(nil, "")
	// Product and Organization always emit.
	require.Len(t, docs, 2)

	var product map[string]any
	require.NoError(t, json.Unmarshal([]byte(docs[0]), &product))
	assert.Equal(t, "Product", product["@type"])

	var org map[string]any
	require.NoError(t, json.Unmarshal([]byte(docs[1]), &org))
	assert.Equal(t, "Organization", org["@type"])
}
