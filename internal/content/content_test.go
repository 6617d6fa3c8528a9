package content

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/locale"
)

func TestParseSection(t *testing.T) {
	cases := []struct {
		input   string
		want    Section
		wantErr bool
	}{
		{input: "hero", want: SectionHero},
		{input: " Contact ", want: SectionContact},
		{input: "WHY-CHINA", want: SectionWhyChina},
		{input: "sidebar", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseSection(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownSection) {
				t.Fatalf("ParseSection(%q) error = %v, want ErrUnknownSection", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSection(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSection(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEmptyCoversEverySection(t *testing.T) {
	for _, section := range Sections {
		payload := Empty(section)
		if payload == nil {
			t.Fatalf("Empty(%q) returned nil", section)
		}
		if payload.PayloadSection() != section {
			t.Fatalf("Empty(%q) reports section %q", section, payload.PayloadSection())
		}
	}
}

func TestMongolianDefaultsCoverEverySection(t *testing.T) {
	for _, section := range Sections {
		payload, ok := Default(section, locale.LanguageMongolian)
		if !ok {
			t.Fatalf("no Mongolian default for section %q", section)
		}
		if payload.PayloadSection() != section {
			t.Fatalf("default for %q reports section %q", section, payload.PayloadSection())
		}
	}
}

func TestDefaultIsExactKeyLookup(t *testing.T) {
	if _, ok := Default(SectionHero, "fr"); ok {
		t.Fatal("expected no default for (hero, fr)")
	}
	if _, ok := Default(SectionWhyChina, locale.LanguageEnglish); ok {
		t.Fatal("expected no English default for why-china")
	}
}

func TestDecodeContact(t *testing.T) {
	raw := []byte(`{"phone":"+976 99119911","email":"x@y.mn"}`)
	payload, err := Decode(SectionContact, raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	contact, ok := payload.(ContactContent)
	if !ok {
		t.Fatalf("expected ContactContent, got %T", payload)
	}
	if contact.Phone != "+976 99119911" || contact.Email != "x@y.mn" {
		t.Fatalf("unexpected decode result: %+v", contact)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	original := HeroContent{
		Title:    "Тавтай морил",
		Subtitle: "Han Education",
		Stats:    []Stat{{Label: "Элсэлт", Value: "250+"}},
	}
	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	payload, err := Decode(SectionHero, raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	decoded, ok := payload.(HeroContent)
	if !ok {
		t.Fatalf("expected HeroContent, got %T", payload)
	}
	if decoded.Title != original.Title || decoded.Subtitle != original.Subtitle {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if len(decoded.Stats) != 1 || decoded.Stats[0] != original.Stats[0] {
		t.Fatalf("stats did not survive round trip: %+v", decoded.Stats)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	if _, err := Decode(SectionHero, []byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestDecodeRejectsEmptyPayload(t *testing.T) {
	if _, err := Decode(SectionHero, []byte(`{}`)); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := Decode(SectionContact, []byte(`{"unknown":"field"}`)); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload for unrecognized fields, got %v", err)
	}
}

func TestMeta(t *testing.T) {
	title, subtitle, description := Meta(HeroContent{Title: "T", Subtitle: "S", Description: "D"})
	if title != "T" || subtitle != "S" || description != "D" {
		t.Fatalf("unexpected hero meta: %q %q %q", title, subtitle, description)
	}

	title, _, _ = Meta(FooterContent{Tagline: "tag"})
	if title != "tag" {
		t.Fatalf("expected footer tagline as title, got %q", title)
	}
}
