package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "mn", want: LanguageMongolian},
		{input: "MN-mn", want: LanguageMongolian},
		{input: "en", want: LanguageEnglish},
		{input: "en-US", want: LanguageEnglish},
		{input: "zh", want: LanguageChinese},
		{input: "zh-CN", want: LanguageChinese},
		{input: "fr", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeLanguage(tc.input); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, language := range Supported {
		if !IsSupported(language) {
			t.Fatalf("expected %q to be supported", language)
		}
	}
	if IsSupported("fr") {
		t.Fatal("expected fr to be unsupported")
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "mn-MN,mn;q=0.9", want: LanguageMongolian},
		{input: "en-US,en;q=0.9", want: LanguageEnglish},
		{input: "zh-CN,zh;q=0.9", want: LanguageChinese},
		{input: "fr-FR,fr;q=0.9", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := LanguageFromAcceptLanguage(tc.input); got != tc.want {
			t.Fatalf("LanguageFromAcceptLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPreferenceForLanguage(t *testing.T) {
	pref := PreferenceForLanguage("en")
	if pref.Language != LanguageEnglish {
		t.Fatalf("expected language %q, got %q", LanguageEnglish, pref.Language)
	}
	if pref.Locale != "en_US" {
		t.Fatalf("expected locale en_US, got %q", pref.Locale)
	}

	fallback := PreferenceForLanguage("")
	if fallback.Language != LanguageMongolian {
		t.Fatalf("expected fallback language %q, got %q", LanguageMongolian, fallback.Language)
	}
	if fallback.HTMLLang != "mn-MN" {
		t.Fatalf("expected html lang mn-MN, got %q", fallback.HTMLLang)
	}
}
