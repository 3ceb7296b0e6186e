package repository

import "testing"

func TestNewSlugShape(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		slug := NewSlug()
		if !ValidSlug(slug) {
			t.Fatalf("unexpected slug %q", slug)
		}
		seen[slug] = struct{}{}
	}
	if len(seen) < 990 {
		t.Fatalf("expected nearly unique slugs, got %d distinct of 1000", len(seen))
	}
}

func TestValidSlug(t *testing.T) {
	for _, s := range []string{"", "short", "toolong123", "abc-1234", "abcd123é"} {
		if ValidSlug(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
	if !ValidSlug("aB3dE6gH") {
		t.Fatal("expected aB3dE6gH to be accepted")
	}
}
