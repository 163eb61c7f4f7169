package main

import "testing"

func TestParseGoldenName(t *testing.T) {
	year, width, ok := parseGoldenName(goldenName(2024, 80))
	if !ok || year != 2024 || width != 80 {
		t.Fatalf("round trip failed: %d %d %v", year, width, ok)
	}
	for _, name := range []string{"2024.golden", "1899.w80.golden", "2024.w0.golden", "notes.txt", "abc.w20.golden"} {
		if _, _, ok := parseGoldenName(name); ok {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}
