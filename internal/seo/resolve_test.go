package seo

import (
	"encoding/json"
	"testing"

	"fabricpro.io/fabric-web/internal/landing"
)

func seoRecord(t *testing.T, slug, locationID string) landing.SeoRecord {
	t.Helper()
	var rec landing.SeoRecord
	raw := `{"slug":` + jsonString(slug) + `,"location":` + jsonString(locationID) + `}`
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("building record: %v", err)
	}
	return rec
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestPageSlug(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/", ""},
		{"", ""},
		{"/premium-cotton", "premium-cotton"},
		{"/Premium-Cotton/", "premium-cotton"},
		{"/fabrics/linen?utm=x", "linen"},
		{"//denim//", "denim"},
	}
	for _, tc := range cases {
		if got := PageSlug(tc.path); got != tc.want {
			t.Errorf("PageSlug(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestTrimSlugPreservesCase(t *testing.T) {
	if got := TrimSlug("/Premium-Cotton/?v=2"); got != "Premium-Cotton" {
		t.Errorf("TrimSlug = %q, want Premium-Cotton", got)
	}
}

func TestRecordBySlug(t *testing.T) {
	records := []landing.SeoRecord{
		seoRecord(t, "/premium-cotton/", "loc1"),
		seoRecord(t, "linen", "loc2"),
	}

	if rec := RecordBySlug("premium-cotton", records); rec == nil || rec.Location.ID() != "loc1" {
		t.Errorf("expected premium-cotton record, got %+v", rec)
	}
	if rec := RecordBySlug("denim", records); rec != nil {
		t.Errorf("expected nil for unknown slug, got %+v", rec)
	}
	if rec := RecordBySlug("", records); rec != nil {
		t.Error("empty slug must not match")
	}
	// Record slugs match case-sensitively.
	upper := []landing.SeoRecord{seoRecord(t, "Premium-Cotton", "loc1")}
	if rec := RecordBySlug("premium-cotton", upper); rec != nil {
		t.Error("slug comparison should be case-sensitive")
	}
}

func TestResolveLocationHomePrefersAhmedabad(t *testing.T) {
	locations := []landing.Location{
		{ID: "loc-mumbai", Name: "Mumbai"},
		{ID: "loc-ahd", Name: "Ahmedabad"},
	}
	records := []landing.SeoRecord{seoRecord(t, "linen", "loc-mumbai")}

	if got := ResolveLocation("", records, locations); got != "loc-ahd" {
		t.Errorf("home location = %q, want loc-ahd", got)
	}
}

func TestResolveLocationHomeFallsBackToFirstRecord(t *testing.T) {
	locations := []landing.Location{{ID: "loc-mumbai", Name: "Mumbai"}}
	records := []landing.SeoRecord{
		seoRecord(t, "a", ""),
		seoRecord(t, "b", "loc-surat"),
	}
	if got := ResolveLocation("", records, locations); got != "loc-surat" {
		t.Errorf("home location = %q, want loc-surat", got)
	}
	if got := ResolveLocation("", nil, nil); got != "" {
		t.Errorf("empty inputs should resolve to no location, got %q", got)
	}
}

func TestResolveLocationSlugPage(t *testing.T) {
	locations := []landing.Location{{ID: "loc-ahd", Name: "Ahmedabad"}}
	records := []landing.SeoRecord{seoRecord(t, "linen", "loc-mumbai")}

	if got := ResolveLocation("linen", records, locations); got != "loc-mumbai" {
		t.Errorf("slug location = %q, want loc-mumbai", got)
	}
	// Unknown slugs fall through to the home rules.
	if got := ResolveLocation("denim", records, locations); got != "loc-ahd" {
		t.Errorf("unknown slug location = %q, want loc-ahd", got)
	}
}

func TestSelectRecord(t *testing.T) {
	records := []landing.SeoRecord{
		seoRecord(t, "a", "loc-mumbai"),
		seoRecord(t, "b", "loc-ahd"),
	}

	if rec := SelectRecord("b", "", records); rec == nil || rec.Location.ID() != "loc-ahd" {
		t.Errorf("slug select = %+v", rec)
	}
	if rec := SelectRecord("missing", "loc-ahd", records); rec != nil {
		t.Error("unknown slug must select nothing")
	}
	if rec := SelectRecord("", "loc-ahd", records); rec == nil || rec.Location.ID() != "loc-ahd" {
		t.Errorf("home in-location select = %+v", rec)
	}
	if rec := SelectRecord("", "loc-unknown", records); rec == nil || rec.Location.ID() != "loc-mumbai" {
		t.Errorf("home fallback select = %+v", rec)
	}
	if rec := SelectRecord("", "", nil); rec != nil {
		t.Error("no records should select nil")
	}
}
