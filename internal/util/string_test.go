package util

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := map[string][]string{
		"":                       {},
		"   ":                    {},
		"Action":                 {"Action"},
		"Action, Drama ,,Sci-Fi": {"Action", "Drama", "Sci-Fi"},
	}
	for in, want := range cases {
		got := SplitList(in)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitList(%q) = %#v, want %#v", in, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  ActIon "); got != "action" {
		t.Fatalf("expected action, got %q", got)
	}
}

func TestChoiceSeededIsDeterministic(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	first := Choice(SeededRand(7), values)
	for i := 0; i < 5; i++ {
		if got := Choice(SeededRand(7), values); got != first {
			t.Fatalf("expected %q with the same seed, got %q", first, got)
		}
	}
	if got := Choice(nil, nil); got != "" {
		t.Fatalf("expected empty choice for empty list, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Parasite", 10, "Parasite"},
		{"Parasite", 8, "Parasite"},
		{"The Lord of the Rings", 10, "The Lor..."},
		{"기생충 (2019) 디렉터스 컷", 8, "기생충 (..."},
		{"Heat", 3, "Heat"},
	}
	for _, tc := range cases {
		got := TruncateString(tc.in, tc.max)
		if got != tc.want {
			t.Fatalf("TruncateString(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
		if tc.max > 3 && len([]rune(got)) > tc.max {
			t.Fatalf("TruncateString(%q, %d) exceeds the limit: %q", tc.in, tc.max, got)
		}
	}
}
