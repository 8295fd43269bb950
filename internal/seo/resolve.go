package seo

import (
	"strings"

	"fabricpro.io/fabric-web/internal/landing"
)

// PageSlug extracts the slug governing a request path. "/" yields "", which
// denotes the home page; deeper paths resolve to their last segment with
// surrounding separators and any query suffix stripped.
func PageSlug(path string) string {
	clean := strings.ToLower(strings.TrimSpace(path))
	if i := strings.IndexByte(clean, '?'); i >= 0 {
		clean = clean[:i]
	}
	clean = strings.Trim(clean, "/")
	if clean == "" {
		return ""
	}
	parts := strings.Split(clean, "/")
	return parts[len(parts)-1]
}

// TrimSlug normalizes a record slug for comparison: path separators and query
// suffixes go, case stays (record slugs are matched exactly).
func TrimSlug(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, "/")
}

// DefaultLocationName is the location applied to the home page when present.
const DefaultLocationName = "ahmedabad"

// RecordBySlug returns the SEO record whose slug matches the page slug, or nil.
func RecordBySlug(slug string, records []landing.SeoRecord) *landing.SeoRecord {
	if slug == "" {
		return nil
	}
	for i := range records {
		if TrimSlug(records[i].Slug) == slug {
			return &records[i]
		}
	}
	return nil
}

// ResolveLocation determines which location identifier governs a page.
//
// Slug pages take the location of their matching SEO record. The home page
// prefers the location named "ahmedabad", then the first non-empty location
// referenced by any SEO record. An empty result means nothing
// location-specific should be shown.
func ResolveLocation(slug string, records []landing.SeoRecord, locations []landing.Location) string {
	if rec := RecordBySlug(slug, records); rec != nil {
		return rec.Location.ID()
	}
	for _, loc := range locations {
		if strings.ToLower(strings.TrimSpace(loc.Name)) == DefaultLocationName && loc.ID != "" {
			return loc.ID
		}
	}
	for _, rec := range records {
		if id := rec.Location.ID(); id != "" {
			return id
		}
	}
	return ""
}

// SelectRecord picks the single SEO record governing a page render.
//
// Slug pages select the record matching the slug (nil when none matches; the
// page falls back to static copy). The home page selects the first record in
// the resolved location, then the first record overall, then nil.
func SelectRecord(slug, locationID string, records []landing.SeoRecord) *landing.SeoRecord {
	if slug != "" {
		return RecordBySlug(slug, records)
	}
	for i := range records {
		if records[i].Location.ID() == locationID && locationID != "" {
			return &records[i]
		}
	}
	if len(records) > 0 {
		return &records[0]
	}
	return nil
}
