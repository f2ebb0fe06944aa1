package domain

import "testing"

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"123.456.789-01", "12345678901"},
		{"12345678901", "12345678901"},
		{"123 456 789 01", "12345678901"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatCPF(tc.in); got != tc.want {
			t.Fatalf("FormatCPF(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidCPF(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"123.456.789-01", true},
		{"12345678901", true},
		{"1234567890", false},
		{"123456789012", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidCPF(tc.in); got != tc.want {
			t.Fatalf("ValidCPF(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"rider@travessias.ma.gov.br", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"@b.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.in); got != tc.want {
			t.Fatalf("ValidEmail(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
