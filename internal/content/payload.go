package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Payload is the tagged union of section content shapes. Each section decodes
// into exactly one concrete type below; the store never sees anything that
// did not pass Decode.
type Payload interface {
	PayloadSection() Section
}

// ErrEmptyPayload is returned when a decoded payload carries no usable data.
var ErrEmptyPayload = errors.New("content payload is empty")

// Stat is a headline number such as "250+ students placed".
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Feature is a titled bullet used by the about and why-china sections.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Link is a labeled URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PartnerLogo is one logo entry in the partners strip.
type PartnerLogo struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
}

// HeroContent configures the landing banner.
type HeroContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	CTALabel    string `json:"ctaLabel,omitempty"`
	CTAURL      string `json:"ctaUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Stats       []Stat `json:"stats,omitempty"`
}

func (HeroContent) PayloadSection() Section { return SectionHero }

// AboutContent configures the agency introduction.
type AboutContent struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Body     string    `json:"body,omitempty"`
	Features []Feature `json:"features,omitempty"`
	Stats    []Stat    `json:"stats,omitempty"`
}

func (AboutContent) PayloadSection() Section { return SectionAbout }

// ServicesContent holds the heading and highlight cards of the services
// section. The full catalog lives in its own collection; these are the
// editable headings around it.
type ServicesContent struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Items    []Feature `json:"items,omitempty"`
}

func (ServicesContent) PayloadSection() Section { return SectionServices }

// WhyChinaContent configures the "why study in China" section.
type WhyChinaContent struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Reasons  []Feature `json:"reasons,omitempty"`
	Stats    []Stat    `json:"stats,omitempty"`
}

func (WhyChinaContent) PayloadSection() Section { return SectionWhyChina }

// TestimonialsContent holds the headings over the testimonial cards.
type TestimonialsContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

func (TestimonialsContent) PayloadSection() Section { return SectionTestimonials }

// TeamContent holds the headings over the team grid.
type TeamContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

func (TeamContent) PayloadSection() Section { return SectionTeam }

// PartnersContent holds the partner strip headings plus optional inline
// logos for deployments that do not manage partners as records.
type PartnersContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Logos    []PartnerLogo `json:"logos,omitempty"`
}

func (PartnersContent) PayloadSection() Section { return SectionPartners }

// ContactContent configures the contact / call-to-action block.
type ContactContent struct {
	Title        string `json:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	WorkingHours string `json:"workingHours,omitempty"`
	MapEmbedURL  string `json:"mapEmbedUrl,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	WeChat       string `json:"wechat,omitempty"`
}

func (ContactContent) PayloadSection() Section { return SectionContact }

// FooterContent configures the site footer.
type FooterContent struct {
	Tagline   string `json:"tagline,omitempty"`
	Copyright string `json:"copyright,omitempty"`
	Links     []Link `json:"links,omitempty"`
}

func (FooterContent) PayloadSection() Section { return SectionFooter }

// Empty returns the neutral shape for a section: blank strings, no entries.
// This is the resolver's last tier and is never nil for a valid section.
func Empty(section Section) Payload {
	switch section {
	case SectionHero:
		return HeroContent{}
	case SectionAbout:
		return AboutContent{}
	case SectionServices:
		return ServicesContent{}
	case SectionWhyChina:
		return WhyChinaContent{}
	case SectionTestimonials:
		return TestimonialsContent{}
	case SectionTeam:
		return TeamContent{}
	case SectionPartners:
		return PartnersContent{}
	case SectionContact:
		return ContactContent{}
	case SectionFooter:
		return FooterContent{}
	}
	return nil
}

// Decode parses raw JSON into the section's payload type. It fails on
// malformed JSON, on unknown sections, and on payloads that decode to the
// neutral shape (nothing usable was sent).
func Decode(section Section, raw []byte) (Payload, error) {
	decoded, err := decodeShape(section, raw)
	if err != nil {
		return nil, err
	}
	if reflect.DeepEqual(decoded, Empty(section)) {
		return nil, ErrEmptyPayload
	}
	return decoded, nil
}

func decodeShape(section Section, raw []byte) (Payload, error) {
	switch section {
	case SectionHero:
		var p HeroContent
		return p, unmarshal(section, raw, &p)
	case SectionAbout:
		var p AboutContent
		return p, unmarshal(section, raw, &p)
	case SectionServices:
		var p ServicesContent
		return p, unmarshal(section, raw, &p)
	case SectionWhyChina:
		var p WhyChinaContent
		return p, unmarshal(section, raw, &p)
	case SectionTestimonials:
		var p TestimonialsContent
		return p, unmarshal(section, raw, &p)
	case SectionTeam:
		var p TeamContent
		return p, unmarshal(section, raw, &p)
	case SectionPartners:
		var p PartnersContent
		return p, unmarshal(section, raw, &p)
	case SectionContact:
		var p ContactContent
		return p, unmarshal(section, raw, &p)
	case SectionFooter:
		var p FooterContent
		return p, unmarshal(section, raw, &p)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

func unmarshal(section Section, raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s payload: %w", section, err)
	}
	return nil
}

// Meta lifts the denormalized title/subtitle/description columns out of a
// payload for admin list screens.
func Meta(payload Payload) (title, subtitle, description string) {
	switch p := payload.(type) {
	case HeroContent:
		return p.Title, p.Subtitle, p.Description
	case AboutContent:
		return p.Title, p.Subtitle, ""
	case ServicesContent:
		return p.Title, p.Subtitle, ""
	case WhyChinaContent:
		return p.Title, p.Subtitle, ""
	case TestimonialsContent:
		return p.Title, p.Subtitle, ""
	case TeamContent:
		return p.Title, p.Subtitle, ""
	case PartnersContent:
		return p.Title, p.Subtitle, ""
	case ContactContent:
		return p.Title, p.Subtitle, ""
	case FooterContent:
		return p.Tagline, "", ""
	}
	return "", "", ""
}
