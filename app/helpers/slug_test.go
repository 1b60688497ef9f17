package helpers

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Red Shoe", "red-shoe"},
		{"  Red   Shoe  ", "red-shoe"},
		{"Café & Bar!", "caf-bar"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER_case 123", "upper-case-123"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Red Shoe", "Café & Bar!", "Summer 2024 Collection"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify(Slugify(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalizeSKU(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc-123", "ABC-123"},
		{"  abc 123  ", "ABC-123"},
		{"a  b\tc", "A-B-C"},
		{"SKU001", "SKU001"},
	}
	for _, c := range cases {
		if got := NormalizeSKU(c.in); got != c.want {
			t.Errorf("NormalizeSKU(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSKUPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"shoes", "SH"},
		{"t-shirts", "TS"},
		{"e", "EX"},
		{"", "PR"},
		{"123", "PR"},
	}
	for _, c := range cases {
		if got := SKUPrefix(c.in); got != c.want {
			t.Errorf("SKUPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRandomDigits(t *testing.T) {
	s := RandomDigits(7)
	if len(s) != 7 {
		t.Fatalf("RandomDigits(7) returned %q with length %d", s, len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("RandomDigits(7) returned non-digit %q", s)
		}
	}
}
