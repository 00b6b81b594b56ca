package utils

import (
	"reflect"
	"testing"
)

func TestUniqDropsEmptyAndKeepsOrder(t *testing.T) {
	got := Uniq([]string{"b", "", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Uniq = %v, want %v", got, want)
	}
}

func TestSortedUniq(t *testing.T) {
	got := SortedUniq([]string{"Technique", "Administratif", "", "Direction", "Technique"})
	want := []string{"Administratif", "Direction", "Technique"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortedUniq = %v, want %v", got, want)
	}
	if len(SortedUniq(nil)) != 0 {
		t.Fatal("SortedUniq(nil) should be empty")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Télétravail", 20); got != "Télétravail" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateString("Télétravail", 7); got != "Télé..." {
		t.Fatalf("TruncateString = %q, want %q", got, "Télé...")
	}
}

func TestIsRemoteSource(t *testing.T) {
	cases := map[string]bool{
		"https://example.org/offers.yaml": true,
		"http://localhost:8080/o.json":    true,
		"offers.yaml":                     false,
		"/etc/offers.yaml":                false,
		"ftp://example.org/offers.yaml":   false,
	}
	for in, want := range cases {
		if got := IsRemoteSource(in); got != want {
			t.Errorf("IsRemoteSource(%q) = %v, want %v", in, got, want)
		}
	}
}
