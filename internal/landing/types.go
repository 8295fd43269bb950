package landing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IDRef is a relation to another document. The content API serves relations
// either as a bare identifier string or as an embedded object carrying `_id`;
// both shapes normalize to a plain identifier here so nothing downstream ever
// sees the raw duck-typed value.
type IDRef struct {
	id string
}

// Ref builds an IDRef from a known identifier. Mostly useful in tests.
func Ref(id string) IDRef {
	return IDRef{id: strings.TrimSpace(id)}
}

// ID returns the normalized identifier, or "" when the relation is absent.
func (r IDRef) ID() string { return r.id }

// IsZero reports whether the relation is absent.
func (r IDRef) IsZero() bool { return r.id == "" }

// UnmarshalJSON accepts a string, an object with `_id`, or null. It never
// fails: any unrecognized shape decodes as an absent relation.
func (r *IDRef) UnmarshalJSON(data []byte) error {
	r.id = ""
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.id = strings.TrimSpace(s)
		return nil
	}
	var obj struct {
		ID any `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.ID != nil {
		r.id = strings.TrimSpace(fmt.Sprint(obj.ID))
	}
	return nil
}

// MarshalJSON writes the normalized identifier string.
func (r IDRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

// Product is a catalog entry owned by the remote API; read-only here.
type Product struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Img            string `json:"img"`
	Image1         string `json:"image1"`
	Image2         string `json:"image2"`
	Video          string `json:"video"`
	VideoThumbnail string `json:"videoThumbnail"`
	Description    string `json:"productdescription"`
	Slug           string `json:"slug"`
}

// Location is a served city/region; read-only here.
type Location struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SeoRecord binds one Product and one Location to a page slug together with
// every metadata and structured-data field for that page.
type SeoRecord struct {
	ID       string `json:"_id"`
	Product  IDRef  `json:"product"`
	Location IDRef  `json:"location"`
	Slug     string `json:"slug"`

	// Core SEO
	Title                  string `json:"title"`
	Description            string `json:"description"`
	Keywords               string `json:"keywords"`
	Robots                 string `json:"robots"`
	CanonicalURL           string `json:"canonical_url"`
	Hreflang               string `json:"hreflang"`
	XDefault               string `json:"x_default"`
	AuthorName             string `json:"author_name"`
	Charset                string `json:"charset"`
	Viewport               string `json:"viewport"`
	XUACompatible          string `json:"xUaCompatible"`
	ContentLanguage        string `json:"contentLanguage"`
	GoogleSiteVerification string `json:"googleSiteVerification"`
	MSValidate             string `json:"msValidate"`
	ThemeColor             string `json:"themeColor"`
	MobileWebAppCapable    string `json:"mobileWebAppCapable"`
	AppleStatusBarStyle    string `json:"appleStatusBarStyle"`
	FormatDetection        string `json:"formatDetection"`

	// Product-ish fields carried on the record
	Excerpt            string  `json:"excerpt"`
	DescriptionHTML    string  `json:"description_html"`
	ProductDescription string  `json:"productdescription"`
	LocationCode       string  `json:"locationCode"`
	ProductIdentifier  string  `json:"productIdentifier"`
	SKU                string  `json:"sku"`
	PurchasePrice      float64 `json:"purchasePrice"`
	SalesPrice         float64 `json:"salesPrice"`
	RatingValue        float64 `json:"rating_value"`
	RatingCount        int     `json:"rating_count"`
	PopularProduct     bool    `json:"popularproduct"`
	TopRatedProduct    bool    `json:"topratedproduct"`
	LandingPageProduct bool    `json:"landingPageProduct"`
	ShopyProduct       bool    `json:"shopyProduct"`

	// Open Graph
	OGLocale         string `json:"ogLocale"`
	OGTitle          string `json:"ogTitle"`
	OGDescription    string `json:"ogDescription"`
	OGType           string `json:"ogType"`
	OGSiteName       string `json:"ogSiteName"`
	OGURL            string `json:"ogUrl"`
	OGImage          string `json:"ogImage"`
	OGVideoURL       string `json:"ogVideoUrl"`
	OGVideoSecureURL string `json:"ogVideoSecureUrl"`
	OGVideoType      string `json:"ogVideoType"`
	OGVideoWidth     int    `json:"ogVideoWidth"`
	OGVideoHeight    int    `json:"ogVideoHeight"`

	// Twitter card
	TwitterCard         string `json:"twitterCard"`
	TwitterSite         string `json:"twitterSite"`
	TwitterTitle        string `json:"twitterTitle"`
	TwitterDescription  string `json:"twitterDescription"`
	TwitterImage        string `json:"twitterImage"`
	TwitterPlayer       string `json:"twitterPlayer"`
	TwitterPlayerWidth  int    `json:"twitterPlayerWidth"`
	TwitterPlayerHeight int    `json:"twitterPlayerHeight"`

	// Raw JSON-LD overrides (strings holding complete documents)
	VideoJSONLD         string `json:"VideoJsonLd"`
	LogoJSONLD          string `json:"LogoJsonLd"`
	BreadcrumbJSONLD    string `json:"BreadcrumbJsonLd"`
	LocalBusinessJSONLD string `json:"LocalBusinessJsonLd"`

	// Logo JSON-LD parts
	LogoContext string `json:"LogoJsonLdcontext"`
	LogoType    string `json:"LogoJsonLdtype"`
	LogoURL     string `json:"logoJsonLdurl"`
	LogoWidth   string `json:"logoJsonLdwidth"`
	LogoHeight  string `json:"logoJsonLdheight"`

	// Breadcrumb JSON-LD parts
	BreadcrumbContext string `json:"BreadcrumbJsonLdcontext"`
	BreadcrumbType    string `json:"BreadcrumbJsonLdtype"`
	BreadcrumbName    string `json:"BreadcrumbJsonLdname"`

	// LocalBusiness JSON-LD parts
	LocalBusinessContext       string `json:"LocalBusinessJsonLdcontext"`
	LocalBusinessType          string `json:"LocalBusinessJsonLdtype"`
	LocalBusinessName          string `json:"LocalBusinessJsonLdname"`
	LocalBusinessURL           string `json:"LocalBusinessJsonLdurl"`
	LocalBusinessTelephone     string `json:"LocalBusinessJsonLdtelephone"`
	LocalBusinessStreetAddress string `json:"LocalBusinessJsonLdaddressstreetAddress"`
	LocalBusinessLocality      string `json:"LocalBusinessJsonLdaddressaddressLocality"`
	LocalBusinessRegion        string `json:"LocalBusinessJsonLdaddressaddressRegion"`
	LocalBusinessPostalCode    string `json:"LocalBusinessJsonLdaddresspostalCode"`
	LocalBusinessCountry       string `json:"LocalBusinessJsonLdaddressaddressCountry"`
	LocalBusinessLatitude      string `json:"LocalBusinessJsonLdgeoLatitude"`
	LocalBusinessLongitude     string `json:"LocalBusinessJsonLdgeoLongitude"`
	LocalBusinessAreaServed    string `json:"LocalBusinessJsonLdareaserved"`

	// Landing-page hero copy
	LocationTitle        string `json:"productlocationtitle"`
	LocationTagline      string `json:"productlocationtagline"`
	LocationDescription1 string `json:"productlocationdescription1"`
	LocationDescription2 string `json:"productlocationdescription2"`
}
