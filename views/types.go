package views

import (
	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/content"
	"github.com/kleancode/portfolio/nav"
)

// SiteConfig holds site-wide settings the templates need.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
}

// HomeData is everything the home page renders.
type HomeData struct {
	Site    SiteConfig
	Content content.Content
	Nav     nav.State
	Contact contact.Section
	CSRF    string
}
