package nav

import (
	"path"
	"strings"
)

// Item is a navigation entry with active state for the current path.
type Item struct {
	Href   string
	Label  string
	Active bool
}

// Crumb is a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Build renders the header navigation: Home first, then the supplied product
// links, each marked active against the current path.
func Build(currentPath string, links []Item) []Item {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]Item, 0, len(links)+1)
	items = append(items, Item{Href: "/", Label: "Home", Active: currentPath == "/"})
	for _, l := range links {
		items = append(items, Item{
			Href:   l.Href,
			Label:  l.Label,
			Active: isActive(l.Href, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds the trail for the current path: Home, then one crumb per
// path segment. The final segment's label may be overridden with the page
// title when the caller knows it.
func Breadcrumbs(currentPath, title string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		label := titleFromSegment(part)
		if i == len(parts)-1 && strings.TrimSpace(title) != "" {
			label = title
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII is sufficient for slugs
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
