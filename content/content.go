// Package content loads the site's editable copy: brand, navigation links,
// contact cards and section placeholders.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kleancode/portfolio/nav"
)

//go:embed default.yaml
var defaultYAML []byte

// ContactInfo is one card in the contact information panel.
type ContactInfo struct {
	Icon  string `yaml:"icon"` // mail, phone or map-pin
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

// Availability is the "currently available" card.
type Availability struct {
	Headline string `yaml:"headline"`
	Text     string `yaml:"text"`
}

// Section is a page section the navigation links point at.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Content is everything on the page that is not markup.
type Content struct {
	Brand        string        `yaml:"brand"`
	Nav          []nav.Link    `yaml:"nav"`
	Contact      []ContactInfo `yaml:"contact"`
	ReplyFrom    string        `yaml:"reply_from"`
	Availability Availability  `yaml:"availability"`
	Sections     []Section     `yaml:"sections"`
}

// Default returns the embedded content.
func Default() Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates YAML content. Missing navigation links fall
// back to nav.DefaultLinks.
func Parse(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("content: decode: %w", err)
	}
	if len(c.Nav) == 0 {
		c.Nav = nav.DefaultLinks()
	}
	if err := c.validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Load reads content from path.
func Load(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

func (c Content) validate() error {
	if strings.TrimSpace(c.Brand) == "" {
		return errors.New("content: brand is required")
	}
	for i, l := range c.Nav {
		if l.Href == "" || l.Label == "" {
			return fmt.Errorf("content: nav[%d] needs href and label", i)
		}
	}
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("content: sections[%d] needs an id", i)
		}
		if s.ID == nav.ContactAnchor {
			return fmt.Errorf("content: sections[%d]: %q is reserved for the contact section", i, s.ID)
		}
	}
	return nil
}
