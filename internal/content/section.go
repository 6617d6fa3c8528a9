// Package content defines the site's section catalog, the typed payload each
// section stores, and the static fallback tables the resolver consults when
// the database has nothing to offer.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// Section identifies one configurable block of the public site.
type Section string

const (
	SectionHero         Section = "hero"
	SectionAbout        Section = "about"
	SectionServices     Section = "services"
	SectionWhyChina     Section = "why-china"
	SectionTestimonials Section = "testimonials"
	SectionTeam         Section = "team"
	SectionPartners     Section = "partners"
	SectionContact      Section = "contact"
	SectionFooter       Section = "footer"
)

// Sections is the closed set of valid sections, in page order.
var Sections = []Section{
	SectionHero,
	SectionAbout,
	SectionServices,
	SectionWhyChina,
	SectionTestimonials,
	SectionTeam,
	SectionPartners,
	SectionContact,
	SectionFooter,
}

// ErrUnknownSection is returned for section names outside the catalog.
var ErrUnknownSection = errors.New("unknown content section")

// ParseSection validates a raw section name from a request.
func ParseSection(raw string) (Section, error) {
	trimmed := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, section := range Sections {
		if trimmed == section {
			return section, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}
