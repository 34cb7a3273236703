package views

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/kleancode/portfolio/nav"
)

// Layout wraps body in the document shell.
func Layout(cfg SiteConfig, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *markup) error {
		title := meta.Title
		if title == "" {
			title = cfg.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!DOCTYPE html><html lang="en" class="dark"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		if desc != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", desc)
			h.raw(`>`)
		}
		if cfg.Author != "" {
			h.raw(`<meta name="author"`)
			h.attr("content", cfg.Author)
			h.raw(`>`)
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.href(meta.URL)
			h.raw(`><meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", title)
		h.raw(`><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(`>`)
		if desc != "" {
			h.raw(`<meta property="og:description"`)
			h.attr("content", desc)
			h.raw(`>`)
		}
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`,
			`<link rel="stylesheet" href="/public/site.css">`,
			`<script src="/public/site.js" defer></script>`)
		if jsonLD != "" {
			h.raw(`<script type="application/ld+json">`, jsonLDScript(jsonLD), `</script>`)
		}
		h.raw(`</head><body class="bg-background text-foreground antialiased">`)
		if err := h.render(ctx, body); err != nil {
			return err
		}
		h.raw(`</body></html>`)
		return nil
	})
}

// Home renders the single-page site.
func Home(d HomeData) templ.Component {
	meta := PageMeta{
		Title:       d.Site.Name,
		Description: d.Site.Description,
		URL:         BuildURL(d.Site.URL),
		OGType:      "profile",
	}
	email := ""
	for _, ci := range d.Content.Contact {
		if ci.Icon == "mail" {
			email = ci.Value
			break
		}
	}
	body := component(func(ctx context.Context, h *markup) error {
		if err := h.render(ctx, Navbar(d.Content.Brand, d.Content.Nav, d.Nav)); err != nil {
			return err
		}
		h.raw(`<main class="pt-24">`)
		for _, s := range d.Content.Sections {
			h.raw(`<section`)
			h.attr("id", s.ID)
			h.raw(` class="py-24"><div class="container mx-auto px-6"><h2 class="text-3xl font-bold mb-6">`)
			h.text(s.Title)
			h.raw(`</h2>`)
			if s.Body != "" {
				h.raw(`<p class="text-muted-foreground max-w-3xl">`)
				h.text(s.Body)
				h.raw(`</p>`)
			}
			h.raw(`</div></section>`)
		}
		if err := h.render(ctx, ContactSection(d.Content, d.Contact, d.CSRF)); err != nil {
			return err
		}
		h.raw(`</main>`)
		footer(h, d.Content.Brand)
		return nil
	})
	return Layout(d.Site, meta, PersonJsonLD(d.Site, email), body)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return statusPage(cfg, http.StatusNotFound, "This page doesn't exist.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return statusPage(cfg, http.StatusInternalServerError, "Something went wrong on our end. Please try again shortly.")
}

func statusPage(cfg SiteConfig, code int, message string) templ.Component {
	body := component(func(ctx context.Context, h *markup) error {
		if err := h.render(ctx, Navbar(cfg.Name, nil, nav.State{Scrolled: true})); err != nil {
			return err
		}
		h.raw(`<main class="min-h-screen flex flex-col items-center justify-center text-center px-6"><p class="text-primary text-sm font-semibold tracking-wider uppercase">`)
		h.text(strconv.Itoa(code))
		h.raw(`</p><h1 class="text-4xl font-bold mt-4 mb-6">`)
		h.text(http.StatusText(code))
		h.raw(`</h1><p class="text-muted-foreground mb-8">`)
		h.text(message)
		h.raw(`</p><a href="/" class="btn">Back home</a></main>`)
		return nil
	})
	return Layout(cfg, PageMeta{Title: http.StatusText(code) + " | " + cfg.Name}, "", body)
}

func footer(h *markup, brand string) {
	h.raw(`<footer class="py-12 border-t border-white/5 text-center text-sm text-muted-foreground">&copy; `)
	h.text(strconv.Itoa(time.Now().Year()))
	h.raw(` `)
	h.text(brand)
	h.raw(`</footer>`)
}
