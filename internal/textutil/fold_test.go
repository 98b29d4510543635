package textutil

import "testing"

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"The Matrix", "matrix", true},
		{"The Matrix", "MATRIX", true},
		{"Straße", "STRASSE", true},
		{"Sci-Fi", "fi", true},
		{"Drama", "comedy", false},
		{"anything", "", true},
	}
	for _, tc := range tests {
		if got := ContainsFold(tc.s, tc.substr); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v; want %v", tc.s, tc.substr, got, tc.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("Drama", "dRAMA") {
		t.Fatal("expected case-insensitive equality")
	}
	if EqualFold("Drama", "Dramas") {
		t.Fatal("expected different strings to differ")
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := map[string]string{
		"sci-fi":        "Sci-Fi",
		"  drama ":      "Drama",
		"":              "",
		"crime DRAMA":   "Crime DRAMA",
		"kids & family": "Kids & Family",
	}
	for in, want := range tests {
		if got := DisplayLabel(in); got != want {
			t.Errorf("DisplayLabel(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestIsRecordSafe(t *testing.T) {
	if !IsRecordSafe("Breaking Bad") {
		t.Fatal("expected plain title to be safe")
	}
	for _, bad := range []string{"A|B", "line\nbreak", "carriage\rreturn"} {
		if IsRecordSafe(bad) {
			t.Errorf("expected %q to be unsafe", bad)
		}
	}
}
