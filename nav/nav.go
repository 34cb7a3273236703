// Package nav holds the navigation bar's links and its per-request state.
package nav

import (
	"net/url"
	"strconv"
)

// Threshold is the vertical scroll offset, in pixels, past which the
// navigation bar switches to its scrolled style.
const Threshold = 50

// ContactAnchor is the element id the "Contact Me" button scrolls to.
const ContactAnchor = "contact"

// Link is a single in-page navigation entry.
type Link struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// DefaultLinks returns the stock link set. A fresh slice is returned on every
// call so callers cannot mutate the shared definition.
func DefaultLinks() []Link {
	return []Link{
		{Href: "#about", Label: "About"},
		{Href: "#projects", Label: "Projects"},
		{Href: "#experience", Label: "Experience"},
		{Href: "#testimonials", Label: "Testimonials"},
		{Href: "#contact", Label: "Contact"},
	}
}

// Action names an operation that can be applied to a State over HTTP.
type Action string

const (
	ActionNone    Action = ""
	ActionToggle  Action = "toggle"
	ActionClose   Action = "close"
	ActionContact Action = "contact"
)

// State is the navigation bar's visual state for a single render.
type State struct {
	MenuOpen bool
	Scrolled bool
}

// Toggle flips the mobile drawer.
func (s *State) Toggle() {
	s.MenuOpen = !s.MenuOpen
}

// Scroll records the current vertical offset.
func (s *State) Scroll(offset float64) {
	s.Scrolled = offset > Threshold
}

// FollowLink closes the drawer after one of its links was clicked.
func (s *State) FollowLink() {
	s.MenuOpen = false
}

// ScrollToContact closes the drawer once the contact section has been
// brought into view. It reports whether anything happened.
func (s *State) ScrollToContact(found bool) bool {
	if !found {
		return false
	}
	s.MenuOpen = false
	return true
}

// Apply dispatches a named action. Unknown actions leave the state alone.
func (s *State) Apply(a Action) {
	switch a {
	case ActionToggle:
		s.Toggle()
	case ActionClose:
		s.FollowLink()
	case ActionContact:
		// The home page always renders the contact section.
		s.ScrollToContact(true)
	}
}

// ParseState reads a State from query parameters:
// menu=open|closed, scrolled=1|true or offset=<px>.
func ParseState(q url.Values) State {
	var s State
	s.MenuOpen = q.Get("menu") == "open"
	if off := q.Get("offset"); off != "" {
		if v, err := strconv.ParseFloat(off, 64); err == nil {
			s.Scroll(v)
		}
	} else {
		v, _ := strconv.ParseBool(q.Get("scrolled"))
		s.Scrolled = v
	}
	return s
}

// Query encodes s back into query parameters understood by ParseState.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.MenuOpen {
		q.Set("menu", "open")
	} else {
		q.Set("menu", "closed")
	}
	if s.Scrolled {
		q.Set("scrolled", "1")
	}
	return q
}
