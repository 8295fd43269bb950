package main

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fabricpro.io/fabric-web/internal/catalog"
	"fabricpro.io/fabric-web/internal/content"
	"fabricpro.io/fabric-web/internal/landing"
	"fabricpro.io/fabric-web/internal/nav"
	"fabricpro.io/fabric-web/internal/seo"
)

// pageView is the view model every page template receives.
type pageView struct {
	Page string // "home", "landing", "notfound"
	Meta seo.Meta
	// JSONLD holds pre-marshaled structured-data documents, one per script tag.
	JSONLD []template.JS

	Nav    []nav.Item
	Crumbs []nav.Crumb

	Cards           []catalog.Card
	Current         *catalog.Card
	Footer          []catalog.Link
	FAQs            []content.FAQ
	DescriptionHTML template.HTML

	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	WhatsAppNumber string
	AppURL         string
}

func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	bundle := a.landing.FetchAll(r.Context())

	locationID := seo.ResolveLocation("", bundle.Seo, bundle.Locations)
	rec := seo.SelectRecord("", locationID, bundle.Seo)
	cards := catalog.Cards(bundle.Products, bundle.Seo, locationID, "")

	view := a.newPageView("home", rec, "")
	view.Cards = cards
	view.Footer = catalog.FooterLinks(bundle.Products, bundle.Seo, locationID, "")
	view.Nav = nav.Build(r.URL.Path, navLinks(cards))

	a.render(w, http.StatusOK, view)
}

func (a *app) landingHandler(w http.ResponseWriter, r *http.Request) {
	slug := seo.PageSlug(chi.URLParam(r, "slug"))
	bundle := a.landing.FetchAll(r.Context())

	locationID := seo.ResolveLocation(slug, bundle.Seo, bundle.Locations)
	rec := seo.SelectRecord(slug, locationID, bundle.Seo)
	current := catalog.CardBySlug(slug, bundle.Products, bundle.Seo)

	if rec == nil && current == nil {
		view := a.newPageView("notfound", nil, "")
		view.Meta = seo.NotFoundMeta()
		view.Nav = nav.Build(r.URL.Path, nil)
		a.render(w, http.StatusNotFound, view)
		return
	}

	productName := ""
	currentID := ""
	if current != nil {
		productName = current.Name
		currentID = current.ID
	}

	view := a.newPageView("landing", rec, productName)
	view.Current = current
	view.Cards = catalog.Cards(bundle.Products, bundle.Seo, locationID, currentID)
	view.Footer = catalog.FooterLinks(bundle.Products, bundle.Seo, locationID, currentID)
	view.Nav = nav.Build(r.URL.Path, navLinks(view.Cards))
	view.Crumbs = nav.Breadcrumbs(r.URL.Path, productName)
	view.DescriptionHTML = seo.SafeDescriptionHTML(rec)

	a.render(w, http.StatusOK, view)
}

// newPageView assembles the parts shared by every page: metadata, structured
// data, FAQ entries, and company identity.
func (a *app) newPageView(page string, rec *landing.SeoRecord, productName string) pageView {
	docs := seo.Documents(rec, productName)
	jsonld := make([]template.JS, 0, len(docs))
	for _, d := range docs {
		jsonld = append(jsonld, template.JS(d))
	}

	faqs, err := a.faqs.FAQs()
	if err != nil {
		a.log.Warn("faq load failed")
		faqs = nil
	}

	return pageView{
		Page:   page,
		Meta:   seo.BuildMeta(rec),
		JSONLD: jsonld,
		FAQs:   faqs,

		CompanyName:    a.cfg.CompanyName,
		CompanyEmail:   a.cfg.CompanyEmail,
		CompanyPhone:   a.cfg.CompanyPhone,
		CompanyAddress: a.cfg.CompanyAddress,
		WhatsAppNumber: a.cfg.WhatsAppNumber,
		AppURL:         a.cfg.AppURL,
	}
}

func navLinks(cards []catalog.Card) []nav.Item {
	links := make([]nav.Item, 0, len(cards))
	for _, c := range cards {
		links = append(links, nav.Item{Href: c.Href, Label: c.Name})
	}
	return links
}
