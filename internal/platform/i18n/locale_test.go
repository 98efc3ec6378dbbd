package i18n

import "testing"

func TestParseLocaleDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	loc, err := ParseLocale("  ")
	if err != nil {
		t.Fatalf("ParseLocale() error = %v", err)
	}
	if loc.Tag() != "en-US" {
		t.Fatalf("Tag() = %q, want %q", loc.Tag(), "en-US")
	}
	if loc.Lang() != "en" {
		t.Fatalf("Lang() = %q, want %q", loc.Lang(), "en")
	}
}

func TestParseLocaleRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFormatIntGroupsDigits(t *testing.T) {
	t.Parallel()

	loc := MustParseLocale("en-US")
	cases := map[int64]string{
		0:              "0",
		758:            "758",
		1234:           "1,234",
		67676767676767: "67,676,767,676,767",
	}
	for input, want := range cases {
		if got := loc.FormatInt(input); got != want {
			t.Fatalf("FormatInt(%d) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatIntZeroValueLocale(t *testing.T) {
	t.Parallel()

	if got := (Locale{}).FormatInt(425); got != "425" {
		t.Fatalf("FormatInt() = %q, want %q", got, "425")
	}
}
