package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/kleancode/portfolio/nav"
)

// Navbar renders the fixed site header. The mobile drawer is only present
// while the menu is open. Both header variants and the scroll threshold are
// exposed as data attributes for site.js.
func Navbar(brand string, links []nav.Link, state nav.State) templ.Component {
	return component(func(ctx context.Context, h *markup) error {
		h.raw(`<header id="site-header"`)
		h.attr("class", HeaderClass(state.Scrolled))
		h.attr("data-threshold", strconv.Itoa(nav.Threshold))
		h.attr("data-class-scrolled", headerVariant(true))
		h.attr("data-class-top", headerVariant(false))
		h.attr("data-menu", menuValue(state.MenuOpen))
		h.raw(`>`)

		h.raw(`<nav class="container mx-auto px-6 flex items-center justify-between">`)
		h.raw(`<a href="#" class="text-xl font-bold tracking-tight hover:text-primary transition-colors">`)
		h.text(brand)
		h.raw(`<span class="text-primary">.</span></a>`)

		h.raw(`<div class="hidden md:flex items-center gap-1"><div class="glass rounded-full px-2 py-1 flex items-center gap-1 border border-white/5">`)
		for _, l := range links {
			h.raw(`<a`)
			h.href(l.Href)
			h.raw(` data-nav-link="desktop" class="px-4 py-2 text-sm text-muted-foreground hover:text-foreground rounded-full hover:bg-surface transition-all duration-300">`)
			h.text(l.Label)
			h.raw(`</a>`)
		}
		h.raw(`</div></div>`)

		h.raw(`<div class="hidden md:block">`)
		contactButton(h, state, "btn btn-sm hover:scale-105 transition-transform")
		h.raw(`</div>`)

		// Without JavaScript the toggle is a plain link to the other state.
		next := state
		next.Toggle()
		h.raw(`<a`)
		h.href("/?" + next.Query().Encode())
		h.attr("data-nav-action", string(nav.ActionToggle))
		h.attr("data-partial", NavbarPartialURL(state, nav.ActionToggle))
		h.attr("aria-expanded", strconv.FormatBool(state.MenuOpen))
		h.raw(` aria-controls="mobile-menu" class="md:hidden p-2 text-foreground cursor-pointer hover:bg-surface rounded-lg transition-colors">`)
		if state.MenuOpen {
			h.icon("x", "w-6 h-6")
			h.raw(`<span class="sr-only">Close menu</span>`)
		} else {
			h.icon("menu", "w-6 h-6")
			h.raw(`<span class="sr-only">Open menu</span>`)
		}
		h.raw(`</a></nav>`)

		if state.MenuOpen {
			h.raw(`<div id="mobile-menu" class="md:hidden glass-strong animate-fade-in border-b border-white/10"><div class="container mx-auto px-6 py-8 flex flex-col gap-5">`)
			for _, l := range links {
				h.raw(`<a`)
				h.href(l.Href)
				h.attr("data-nav-action", string(nav.ActionClose))
				h.attr("data-partial", NavbarPartialURL(state, nav.ActionClose))
				h.raw(` data-nav-link="mobile" class="text-lg text-muted-foreground hover:text-primary py-2 transition-colors border-b border-white/5">`)
				h.text(l.Label)
				h.raw(`</a>`)
			}
			contactButton(h, state, "btn w-full mt-4 py-6 text-lg")
			h.raw(`</div></div>`)
		}
		h.raw(`</header>`)
		return nil
	})
}

func contactButton(h *markup, state nav.State, class string) {
	h.raw(`<a href="#`, nav.ContactAnchor, `"`)
	h.attr("data-nav-action", string(nav.ActionContact))
	h.attr("data-partial", NavbarPartialURL(state, nav.ActionContact))
	h.attr("class", class)
	h.raw(`>Contact Me</a>`)
}

func menuValue(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
