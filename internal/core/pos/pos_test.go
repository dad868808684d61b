package pos

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"noun", Noun, true},
		{"  Verb ", Verb, true},
		{"AUXILIARY", Auxiliary, true},
		{"gerund", Tag("gerund"), false},
		{"", Tag(""), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tc.in)
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	if got := Particle.Key(); got != "pos.particle" {
		t.Fatalf("Key() = %q, want %q", got, "pos.particle")
	}
}

func TestAllValid(t *testing.T) {
	t.Parallel()

	for _, tag := range All() {
		if !tag.Valid() {
			t.Fatalf("tag %q reported invalid", tag)
		}
	}
}
