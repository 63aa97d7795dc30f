package language

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "eng"},
		{"eng", "eng"},
		{"ja", "jpn"},
		{"en-US", "eng"},
		{"", ""},
		{"und", "und"},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, err := Normalize("not a language!"); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}

func TestKnown(t *testing.T) {
	if Known("") || Known("und") || Known("UND") {
		t.Fatalf("empty and undetermined codes must not be known")
	}
	if !Known("eng") {
		t.Fatalf("expected eng to be known")
	}
}
