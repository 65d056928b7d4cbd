package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"id":    LanguageIndonesian,
		"ID-id": LanguageIndonesian,
		"in":    LanguageIndonesian,
		"en":    LanguageEnglish,
		"en-US": LanguageEnglish,
		"fr":    "",
		"":      "",
	}
	for raw, want := range cases {
		if got := NormalizeLanguage(raw); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestLanguageFromCountryCode(t *testing.T) {
	if got := LanguageFromCountryCode("ID"); got != LanguageIndonesian {
		t.Fatalf("expected Indonesian for ID, got %q", got)
	}
	if got := LanguageFromCountryCode("sg"); got != LanguageEnglish {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := LanguageFromCountryCode(" "); got != "" {
		t.Fatalf("expected empty result for blank code, got %q", got)
	}
}

func TestPickPrefersRequestedLanguage(t *testing.T) {
	if got := Pick("id", "Home", "Beranda"); got != "Beranda" {
		t.Fatalf("expected Indonesian text, got %q", got)
	}
	if got := Pick("en", "Home", "Beranda"); got != "Home" {
		t.Fatalf("expected English text, got %q", got)
	}
	// Missing translation falls back to the other language.
	if got := Pick("id", "Home", ""); got != "Home" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestContentResolves(t *testing.T) {
	if Content.HeroHeadline.In("en") != "Designing Dreams, Building Reality" {
		t.Fatal("unexpected English headline")
	}
	if Content.HeroHeadline.In("id") != "Mendesain Impian, Membangun Kenyataan" {
		t.Fatal("unexpected Indonesian headline")
	}
	if len(Content.ServiceItems) != 6 {
		t.Fatalf("expected 6 service items, got %d", len(Content.ServiceItems))
	}
}
