package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/kleancode/portfolio/nav"
)

// markup is a small write buffer for hand-built components.
type markup struct {
	strings.Builder
}

// raw writes trusted markup.
func (h *markup) raw(parts ...string) {
	for _, p := range parts {
		h.WriteString(p)
	}
}

// text writes escaped character data.
func (h *markup) text(s string) {
	h.WriteString(templ.EscapeString(s))
}

// attr writes name="value" with the value escaped, preceded by a space.
func (h *markup) attr(name, value string) {
	h.WriteString(" ")
	h.WriteString(name)
	h.WriteString(`="`)
	h.WriteString(templ.EscapeString(value))
	h.WriteString(`"`)
}

// href writes an href attribute after URL sanitization.
func (h *markup) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

// component turns a build function into a templ.Component.
func component(build func(ctx context.Context, h *markup) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var h markup
		if err := build(ctx, &h); err != nil {
			return err
		}
		_, err := io.WriteString(w, h.String())
		return err
	})
}

// render writes a child component into h.
func (h *markup) render(ctx context.Context, c templ.Component) error {
	return c.Render(ctx, &h.Builder)
}

// BuildURL joins path segments onto a base URL. The result always ends in
// a slash, so a bare host becomes "https://host/". Canonical links and the
// sitemap both use it.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// HeaderClass returns the header's CSS classes for the given scroll state.
func HeaderClass(scrolled bool) string {
	return "fixed top-0 left-0 right-0 transition-all duration-500 z-50 " + headerVariant(scrolled)
}

func headerVariant(scrolled bool) string {
	if scrolled {
		return "glass-strong py-3 shadow-lg"
	}
	return "bg-transparent py-5"
}

// NavbarPartialURL is where the navbar fragment for s after a is served.
func NavbarPartialURL(s nav.State, a nav.Action) string {
	q := s.Query()
	if a != nav.ActionNone {
		q.Set("action", string(a))
	}
	return "/partials/navbar/?" + q.Encode()
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the site owner.
func PersonJsonLD(cfg SiteConfig, email string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Author != "" {
		data["name"] = cfg.Author
	} else {
		data["name"] = cfg.Name
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if email != "" {
		data["email"] = "mailto:" + email
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// jsonLDScript escapes "</" so JSON-LD can sit inside a <script> element.
func jsonLDScript(js string) string {
	return strings.ReplaceAll(js, "</", `<\/`)
}
