// Package catalog cross-references SEO records against the product collection
// to build the view models behind the homepage carousel, product pages, and
// the footer link list.
package catalog

import (
	"strings"

	"fabricpro.io/fabric-web/internal/landing"
	"fabricpro.io/fabric-web/internal/seo"
)

// PlaceholderImage is served when a product carries no usable image reference.
const PlaceholderImage = "/assets/img/fabric-placeholder.svg"

// FooterLimit caps the footer product list.
const FooterLimit = 6

// Card is a single product tile in the carousel or on a product page.
type Card struct {
	ID          string
	Name        string
	Slug        string
	Href        string
	Hero        string
	Overview    string
	Description string
	Video       string
}

// Link is a footer navigation entry.
type Link struct {
	Name string
	Href string
}

func validImage(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

// PickImage returns the first usable image reference, or the placeholder.
func PickImage(candidates ...string) string {
	for _, c := range candidates {
		if validImage(c) {
			return strings.TrimSpace(c)
		}
	}
	return PlaceholderImage
}

// PickImageAvoiding returns the first usable image reference that differs from
// avoid. When every usable candidate equals avoid, the duplicate is accepted
// rather than dropping to the placeholder.
func PickImageAvoiding(avoid string, candidates ...string) string {
	var fallback string
	for _, c := range candidates {
		if !validImage(c) {
			continue
		}
		c = strings.TrimSpace(c)
		if c != avoid {
			return c
		}
		if fallback == "" {
			fallback = c
		}
	}
	if fallback != "" {
		return fallback
	}
	return PlaceholderImage
}

// HeroImage selects a product's primary image. image2 is reserved for the
// overview slot and never promoted here.
func HeroImage(p landing.Product) string {
	return PickImage(p.Img, p.Image1)
}

// OverviewImage selects a product's secondary image, preferring one the hero
// did not already use.
func OverviewImage(p landing.Product) string {
	return PickImageAvoiding(HeroImage(p), p.Image2, p.Image1, p.Img)
}

// SlugMap maps product identifiers to page slugs. The first SEO record that
// binds a product to a non-empty slug wins; later mappings are ignored.
func SlugMap(records []landing.SeoRecord) map[string]string {
	m := make(map[string]string, len(records))
	for _, rec := range records {
		id := rec.Product.ID()
		if id == "" {
			continue
		}
		slug := seo.TrimSlug(rec.Slug)
		if slug == "" {
			continue
		}
		if _, seen := m[id]; !seen {
			m[id] = slug
		}
	}
	return m
}

// inLocationIDs collects product identifiers bound to the resolved location.
// When the location yields nothing, every product referenced by any SEO record
// qualifies instead.
func inLocationIDs(records []landing.SeoRecord, locationID string) map[string]struct{} {
	ids := make(map[string]struct{})
	if locationID != "" {
		for _, rec := range records {
			if rec.Location.ID() == locationID {
				if id := rec.Product.ID(); id != "" {
					ids[id] = struct{}{}
				}
			}
		}
	}
	if len(ids) > 0 {
		return ids
	}
	for _, rec := range records {
		if id := rec.Product.ID(); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// Cards builds the catalog card list for the resolved location, preserving
// product-collection order and de-duplicating by product identifier. Products
// without a resolvable slug are not linkable and are skipped, as is the
// current page's own product.
func Cards(products []landing.Product, records []landing.SeoRecord, locationID, currentProductID string) []Card {
	ids := inLocationIDs(records, locationID)
	slugs := SlugMap(records)

	out := make([]Card, 0, len(products))
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := ids[p.ID]; !ok {
			continue
		}
		if p.ID != "" && p.ID == currentProductID {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		slug, ok := slugs[p.ID]
		if !ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, Card{
			ID:          p.ID,
			Name:        p.Name,
			Slug:        slug,
			Href:        "/" + slug,
			Hero:        HeroImage(p),
			Overview:    OverviewImage(p),
			Description: p.Description,
			Video:       strings.TrimSpace(p.Video),
		})
	}
	return out
}

// CardBySlug returns the card for one product page, or nil when the slug maps
// to no product.
func CardBySlug(slug string, products []landing.Product, records []landing.SeoRecord) *Card {
	if slug == "" {
		return nil
	}
	slugs := SlugMap(records)
	for _, p := range products {
		if s, ok := slugs[p.ID]; ok && s == slug {
			card := Card{
				ID:          p.ID,
				Name:        p.Name,
				Slug:        s,
				Href:        "/" + s,
				Hero:        HeroImage(p),
				Overview:    OverviewImage(p),
				Description: p.Description,
				Video:       strings.TrimSpace(p.Video),
			}
			return &card
		}
	}
	return nil
}

// FooterLinks builds the footer product list for the resolved location:
// product-collection order, de-duplicated, the current page's product
// excluded, capped at FooterLimit.
func FooterLinks(products []landing.Product, records []landing.SeoRecord, locationID, currentProductID string) []Link {
	ids := inLocationIDs(records, locationID)
	slugs := SlugMap(records)

	out := make([]Link, 0, FooterLimit)
	seen := make(map[string]struct{}, FooterLimit)
	for _, p := range products {
		if len(out) == FooterLimit {
			break
		}
		if p.ID == "" || p.ID == currentProductID {
			continue
		}
		if _, ok := ids[p.ID]; !ok {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		slug, ok := slugs[p.ID]
		if !ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, Link{Name: p.Name, Href: "/" + slug})
	}
	return out
}
