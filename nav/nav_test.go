package nav

import (
	"net/url"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestToggleFlipsOncePerCall(t *testing.T) {
	var s State
	s.Toggle()
	assert.True(t, s.MenuOpen)
	s.Toggle()
	assert.False(t, s.MenuOpen)
}

func TestFollowLinkClosesOpenMenu(t *testing.T) {
	s := State{MenuOpen: true}
	s.FollowLink()
	assert.False(t, s.MenuOpen)

	s.FollowLink()
	assert.False(t, s.MenuOpen, "closing a closed menu keeps it closed")
}

func TestScrollThreshold(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{49, false},
		{50, false},
		{50.5, true},
		{51, true},
		{2000, true},
	}
	for _, tt := range tests {
		var s State
		s.Scroll(tt.offset)
		if s.Scrolled != tt.want {
			t.Errorf("Scroll(%v): Scrolled = %v, want %v", tt.offset, s.Scrolled, tt.want)
		}
	}
}

func TestScrollClearsWhenBackAtTop(t *testing.T) {
	var s State
	s.Scroll(300)
	assert.True(t, s.Scrolled)
	s.Scroll(10)
	assert.False(t, s.Scrolled)
}

func TestScrollToContact(t *testing.T) {
	s := State{MenuOpen: true}
	assert.False(t, s.ScrollToContact(false))
	assert.True(t, s.MenuOpen, "menu stays open when the section is missing")

	assert.True(t, s.ScrollToContact(true))
	assert.False(t, s.MenuOpen)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		start  State
		action Action
		want   State
	}{
		{"toggle open", State{}, ActionToggle, State{MenuOpen: true}},
		{"toggle closed", State{MenuOpen: true}, ActionToggle, State{}},
		{"close", State{MenuOpen: true, Scrolled: true}, ActionClose, State{Scrolled: true}},
		{"contact", State{MenuOpen: true}, ActionContact, State{}},
		{"unknown", State{MenuOpen: true}, Action("bogus"), State{MenuOpen: true}},
		{"none", State{Scrolled: true}, ActionNone, State{Scrolled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Apply(tt.action)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	for _, s := range []State{{}, {MenuOpen: true}, {Scrolled: true}, {MenuOpen: true, Scrolled: true}} {
		assert.Equal(t, s, ParseState(s.Query()))
	}
}

func TestParseStateOffset(t *testing.T) {
	s := ParseState(url.Values{"offset": {"120"}})
	assert.True(t, s.Scrolled)
	s = ParseState(url.Values{"offset": {"50"}, "scrolled": {"1"}})
	assert.False(t, s.Scrolled, "offset takes precedence over scrolled")
	s = ParseState(url.Values{"offset": {"nope"}})
	assert.False(t, s.Scrolled)
}

func TestDefaultLinksAreIndependentCopies(t *testing.T) {
	a := DefaultLinks()
	a[0].Label = "changed"
	assert.Equal(t, "About", DefaultLinks()[0].Label)
	assert.Len(t, DefaultLinks(), 5)
}

func TestStateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("scrolled iff offset exceeds threshold", prop.ForAll(
		func(offset float64) bool {
			var s State
			s.Scroll(offset)
			return s.Scrolled == (offset > Threshold)
		},
		gen.Float64Range(-1000, 5000),
	))

	properties.Property("even number of toggles restores the menu", prop.ForAll(
		func(open bool, n int) bool {
			s := State{MenuOpen: open}
			for i := 0; i < 2*n; i++ {
				s.Toggle()
			}
			return s.MenuOpen == open
		},
		gen.Bool(),
		gen.IntRange(0, 50),
	))

	properties.Property("toggle never touches scroll state", prop.ForAll(
		func(open, scrolled bool) bool {
			s := State{MenuOpen: open, Scrolled: scrolled}
			s.Toggle()
			return s.Scrolled == scrolled && s.MenuOpen != open
		},
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
